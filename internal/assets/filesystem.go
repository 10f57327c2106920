package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// stylesDir is the subdirectory of a base path holding style sheets.
const stylesDir = "styles"

// FilesystemLoader reads style sheets from {basePath}/styles/{name}.xml.
type FilesystemLoader struct {
	basePath string // absolute, symlinks resolved
}

// NewFilesystemLoader returns a loader rooted at basePath, which must be a
// readable directory. Errors wrap ErrInvalidBasePath.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	root, err := canonicalDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBasePath, err)
	}
	return &FilesystemLoader{basePath: root}, nil
}

// canonicalDir returns the absolute, symlink-free form of dir after checking
// it can be listed.
func canonicalDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("directory does not exist: %s", abs)
	case err != nil:
		return "", err
	case !info.IsDir():
		return "", fmt.Errorf("not a directory: %s", abs)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return "", fmt.Errorf("cannot read directory: %w", err)
	}
	return abs, nil
}

// LoadStyle reads the named sheet. A missing file is ErrStyleNotFound so the
// resolver can fall back to the embedded sheets; a sheet resolving outside
// the base path is ErrPathTraversal.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path, err := f.contained(filepath.Join(f.basePath, stylesDir, name+styleExt))
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- contained under basePath
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(data), nil
}

// Styles lists the sheet names found under the styles directory, sorted.
// A missing directory yields none.
func (f *FilesystemLoader) Styles() []string {
	entries, err := os.ReadDir(filepath.Join(f.basePath, stylesDir))
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), styleExt)
		if !ok || e.IsDir() || ValidateAssetName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// contained resolves symlinks in path and checks the result stays below
// basePath. A path that does not exist yet is checked as written.
func (f *FilesystemLoader) contained(path string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	rel, err := filepath.Rel(f.basePath, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}
	return path, nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
