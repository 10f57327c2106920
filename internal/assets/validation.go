package assets

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RequiredStyleIDs are the style IDs the document writer references.
var RequiredStyleIDs = []string{
	"Normal",
	"Heading1", "Heading2", "Heading3", "Heading4",
	"ListBullet", "ListNumber",
	"LightGridAccent1",
}

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateStyleSheet checks that content is well-formed XML defining every
// style in RequiredStyleIDs. Returns ErrInvalidStyleSheet listing what is missing.
func ValidateStyleSheet(content string) error {
	defined := make(map[string]bool)
	dec := xml.NewDecoder(strings.NewReader(content))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStyleSheet, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "style" {
			continue
		}
		for _, a := range se.Attr {
			if a.Name.Local == "styleId" {
				defined[a.Value] = true
			}
		}
	}

	var missing []string
	for _, id := range RequiredStyleIDs {
		if !defined[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing styles %s", ErrInvalidStyleSheet, strings.Join(missing, ", "))
	}
	return nil
}
