// Package config loads the YAML configuration file for md2docx.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-md2docx"

// Field length limits for multi-tenant safety.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxStyleLength       = 100  // Style name or path
	MaxTitleLength       = 200  // Document title
	MaxAuthorLength      = 100  // Full name (generous)
	MaxSubjectLength     = 200  // Document subject
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
)

// Margin bounds in inches. Zero means "use the default".
const (
	MinMargin = 0.25
	MaxMargin = 3.0
)

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Style    string         `yaml:"style"` // Style sheet name or path (empty = default)
	Assets   AssetsConfig   `yaml:"assets"`
	Page     PageConfig     `yaml:"page"`
	Document DocumentConfig `yaml:"document"`
	HTML     HTMLConfig     `yaml:"html"`
}

// InputConfig defines the Markdown source.
type InputConfig struct {
	Path string `yaml:"path"` // Empty = implemented_features_analysis.md
}

// OutputConfig defines the DOCX destination.
type OutputConfig struct {
	Path string `yaml:"path"` // Empty = Implemented_Features_Analysis.docx
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PageConfig defines the document section layout.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 1.0)
}

// DocumentConfig defines the package core properties.
type DocumentConfig struct {
	Title   string `yaml:"title"`
	Author  string `yaml:"author"`
	Subject string `yaml:"subject"`
}

// HTMLConfig defines the optional HTML preview.
type HTMLConfig struct {
	Enabled bool `yaml:"enabled"` // Write <output>.html next to the document
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.path", c.Input.Path, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"style", c.Style, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"document.subject", c.Document.Subject, MaxSubjectLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Page.Size != "" {
		switch strings.ToLower(c.Page.Size) {
		case "letter", "a4", "legal":
			// valid
		default:
			return fmt.Errorf("%w: page.size %q (must be letter, a4, or legal)", ErrInvalidValue, c.Page.Size)
		}
	}
	if c.Page.Orientation != "" {
		switch strings.ToLower(c.Page.Orientation) {
		case "portrait", "landscape":
			// valid
		default:
			return fmt.Errorf("%w: page.orientation %q (must be portrait or landscape)", ErrInvalidValue, c.Page.Orientation)
		}
	}
	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin must be between %.2f and %.1f inches, got %.2f",
			ErrInvalidValue, MinMargin, MaxMargin, c.Page.Margin)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: every field empty so that
// the converter defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// Marshal renders the configuration as YAML, in the layout LoadConfig reads.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = ResolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ResolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2docx/
func ResolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// SearchPaths returns the candidate files for a config name, in search order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}
