package md2docx

// Notes:
// - Tests the public AssetLoader built on the internal resolver
// - Custom style sheets are written to t.TempDir() under styles/{name}.xml
// - Error mapping keeps the internal message and unwraps to public sentinels

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// minimalStyles returns a style sheet defining the given style IDs.
func minimalStyles(ids ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)
	for _, id := range ids {
		b.WriteString(`<w:style w:type="paragraph" w:styleId="` + id + `"><w:name w:val="` + id + `"/></w:style>`)
	}
	b.WriteString(`</w:styles>`)
	return b.String()
}

// completeStyles defines every style the writer references.
func completeStyles() string {
	return minimalStyles("Normal", "Heading1", "Heading2", "Heading3", "Heading4",
		"ListBullet", "ListNumber", "LightGridAccent1")
}

// writeCustomStyle writes styles/{name}.xml under dir.
func writeCustomStyle(t *testing.T, dir, name, content string) {
	t.Helper()
	stylesDir := filepath.Join(dir, "styles")
	if err := os.MkdirAll(stylesDir, 0o755); err != nil {
		t.Fatalf("failed to create styles dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(stylesDir, name+".xml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write style: %v", err)
	}
}

func TestNewAssetLoader_EmptyPath(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader(\"\") error = %v", err)
	}

	styles, err := loader.LoadStyle(DefaultStyle)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error = %v", DefaultStyle, err)
	}
	if !strings.Contains(styles, `w:styleId="Heading1"`) {
		t.Error("default style sheet should define Heading1")
	}
}

func TestNewAssetLoader_InvalidPath(t *testing.T) {
	t.Parallel()

	_, err := NewAssetLoader("/nonexistent/path/to/assets")
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewAssetLoader() error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestNewAssetLoader_ValidPath(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetLoader error = %v", err)
	}

	// Empty directory falls back to embedded assets
	styles, err := loader.LoadStyle("classic")
	if err != nil {
		t.Fatalf("LoadStyle with fallback error = %v", err)
	}
	if styles == "" {
		t.Error("fallback to embedded style failed")
	}
}

func TestNewAssetLoader_CustomStyleOverride(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	custom := completeStyles()
	writeCustomStyle(t, tmpDir, DefaultStyle, custom)

	loader, err := NewAssetLoader(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetLoader error = %v", err)
	}

	got, err := loader.LoadStyle(DefaultStyle)
	if err != nil {
		t.Fatalf("LoadStyle error = %v", err)
	}
	if got != custom {
		t.Error("LoadStyle should return the custom sheet")
	}
}

func TestAssetLoader_StyleNotFound(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader error = %v", err)
	}

	_, err = loader.LoadStyle("nonexistent-style")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
	}
	if err != nil && !strings.Contains(err.Error(), "nonexistent-style") {
		t.Errorf("error message %q should contain style name", err.Error())
	}
}

func TestAssetLoader_InvalidName(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader error = %v", err)
	}

	_, err = loader.LoadStyle("../etc/passwd")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
	}
}

func TestBuiltinStyles(t *testing.T) {
	t.Parallel()

	got := BuiltinStyles()
	for _, want := range []string{"classic", "default"} {
		if !slices.Contains(got, want) {
			t.Errorf("BuiltinStyles() = %v, missing %q", got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// wrappedAssetError
// ---------------------------------------------------------------------------

func TestWrappedAssetError(t *testing.T) {
	t.Parallel()

	original := errors.New("internal detail")
	err := wrapError(ErrStyleNotFound, original)

	if err.Error() != "internal detail" {
		t.Errorf("Error() = %q, want original message", err.Error())
	}
	if !errors.Is(err, ErrStyleNotFound) {
		t.Error("should unwrap to the public sentinel")
	}
	if errors.Is(err, original) {
		t.Error("internal error should not be exposed through Unwrap")
	}
}

func TestConvertAssetError(t *testing.T) {
	t.Parallel()

	if convertAssetError(nil) != nil {
		t.Error("convertAssetError(nil) should return nil")
	}

	other := errors.New("other")
	if got := convertAssetError(other); got != other {
		t.Errorf("unknown errors should pass through, got %v", got)
	}
}
