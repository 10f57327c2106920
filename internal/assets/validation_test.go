package assets

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	valid := []string{"classic", "my-style", "my_style", "corporate2024", "MyStyle"}
	for _, name := range valid {
		t.Run("valid "+name, func(t *testing.T) {
			t.Parallel()

			if err := ValidateAssetName(name); err != nil {
				t.Errorf("ValidateAssetName(%q) error = %v", name, err)
			}
		})
	}

	invalid := map[string]string{
		"empty":            "",
		"slash":            "styles/classic",
		"backslash":        `styles\classic`,
		"parent":           "../secret",
		"windows parent":   `..\secret`,
		"extension":        "classic.xml",
		"hidden":           ".classic",
		"double extension": "classic.xml.bak",
		"unix absolute":    "/etc/passwd",
		"windows absolute": `C:\Windows\System32`,
		"dot":              ".",
		"dot dot":          "..",
	}
	for label, name := range invalid {
		t.Run("invalid "+label, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(name)
			if !errors.Is(err, ErrInvalidAssetName) {
				t.Fatalf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", name, err)
			}
			if name != "" && !strings.Contains(err.Error(), strconv.Quote(name)) {
				t.Errorf("error %q should quote the rejected name", err)
			}
		})
	}
}

func TestValidateStyleSheet(t *testing.T) {
	t.Parallel()

	t.Run("embedded styles are complete", func(t *testing.T) {
		t.Parallel()

		for _, name := range EmbeddedStyles() {
			content, err := defaultLoader.LoadStyle(name)
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", name, err)
			}
			if err := ValidateStyleSheet(content); err != nil {
				t.Errorf("ValidateStyleSheet(%q) error = %v", name, err)
			}
		}
	})

	tests := []struct {
		name        string
		content     string
		wantMissing []string
	}{
		{
			name:        "empty content",
			content:     "",
			wantMissing: []string{"Normal", "Heading1", "LightGridAccent1"},
		},
		{
			name: "partial sheet",
			content: `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
				`<w:style w:type="paragraph" w:styleId="Normal"/>` +
				`<w:style w:type="paragraph" w:styleId="Heading1"/>` +
				`</w:styles>`,
			wantMissing: []string{"Heading2", "ListBullet", "ListNumber"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStyleSheet(tt.content)
			if !errors.Is(err, ErrInvalidStyleSheet) {
				t.Fatalf("ValidateStyleSheet() error = %v, want ErrInvalidStyleSheet", err)
			}
			for _, id := range tt.wantMissing {
				if !strings.Contains(err.Error(), id) {
					t.Errorf("error %q should name missing style %s", err, id)
				}
			}
		})
	}

	t.Run("malformed XML", func(t *testing.T) {
		t.Parallel()

		err := ValidateStyleSheet("<w:styles><w:style>")
		if !errors.Is(err, ErrInvalidStyleSheet) {
			t.Errorf("ValidateStyleSheet() error = %v, want ErrInvalidStyleSheet", err)
		}
	})
}
