package assets

import (
	"errors"
	"slices"
)

// AssetResolver looks a style up in an optional override directory first
// and falls back to the embedded sheets when the override has no such name.
// Any other override failure (bad name, traversal, I/O) is returned as is.
type AssetResolver struct {
	custom   *FilesystemLoader // nil without an override directory
	embedded *EmbeddedLoader
}

// NewAssetResolver returns a resolver over the embedded sheets, layered
// under customBasePath when it is non-empty. An unusable customBasePath is
// an error wrapping ErrInvalidBasePath.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}
	custom, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom != nil {
		content, err := r.custom.LoadStyle(name)
		if !errors.Is(err, ErrStyleNotFound) {
			return content, err
		}
	}
	return r.embedded.LoadStyle(name)
}

// HasCustomLoader reports whether an override directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Styles lists every loadable name, overrides and built-ins merged, sorted.
func (r *AssetResolver) Styles() []string {
	names := r.embedded.Styles()
	if r.custom != nil {
		names = append(names, r.custom.Styles()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
