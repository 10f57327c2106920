// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForInputNotFound returns hints for a missing Markdown input.
// When the default input was used, suggests passing the file explicitly.
func ForInputNotFound(path string, usedDefault bool) string {
	if usedDefault {
		return format("pass the Markdown file as an argument: md2docx convert <file.md>")
	}
	if filepath.Ext(path) == "" {
		return format("check the path; Markdown files usually end in .md")
	}
	return format("check the path and read permissions")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2docx/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-md2docx) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/go-md2docx") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidStyleSheet returns hints for custom style sheets that lack
// required styles.
func ForInvalidStyleSheet() string {
	return format("define Normal, Heading1-Heading4, ListBullet, ListNumber and LightGridAccent1; omit --style to use the built-in sheet")
}

// ForPageSize returns hints for unknown page sizes.
func ForPageSize() string {
	return format("valid sizes: letter, a4, legal")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
