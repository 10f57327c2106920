package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed styles/*.xml
var styles embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a style sheet from embedded assets by name.
// The name should not include the .xml extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + styleExt)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// Styles returns the embedded style names in lexical order.
func (e *EmbeddedLoader) Styles() []string {
	// fs.Glob on an embed.FS only fails on a malformed pattern.
	matches, _ := fs.Glob(styles, "styles/*"+styleExt)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(strings.TrimPrefix(m, "styles/"), styleExt))
	}
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
