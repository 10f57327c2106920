package pipeline

import (
	"errors"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// linkAttrs lists the attribute holding a resource reference, per element.
var linkAttrs = map[atom.Atom]string{
	atom.Img:    "src",
	atom.A:      "href",
	atom.Video:  "src",
	atom.Audio:  "src",
	atom.Source: "src",
}

// AnchorPreviewLinks turns relative resource references in an HTML preview
// into file:// URLs rooted at sourceDir, so the preview keeps working when
// it is written away from the Markdown it came from.
//
// Only the path of a reference is anchored; its query and fragment are kept.
// References with a scheme or host, absolute paths, bare fragments or
// queries, and paths leaving sourceDir are left as written. Markup outside
// the rewritten tags is copied byte for byte. An empty sourceDir returns
// doc unchanged.
func AnchorPreviewLinks(doc, sourceDir string) (string, error) {
	if sourceDir == "" {
		return doc, nil
	}
	root, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	a := previewAnchor{root: root}

	var sb strings.Builder
	sb.Grow(len(doc))
	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return sb.String(), nil
		case html.StartTagToken, html.SelfClosingTagToken:
			raw := string(z.Raw())
			tok := z.Token()
			if a.rewriteTag(&tok) {
				sb.WriteString(tok.String())
			} else {
				sb.WriteString(raw)
			}
		default:
			sb.Write(z.Raw())
		}
	}
}

// previewAnchor resolves references against an absolute source directory.
type previewAnchor struct {
	root string
}

// rewriteTag anchors the link attribute of tok in place.
// Reports whether anything changed.
func (a previewAnchor) rewriteTag(tok *html.Token) bool {
	key, ok := linkAttrs[tok.DataAtom]
	if !ok {
		return false
	}
	changed := false
	for i, attr := range tok.Attr {
		if attr.Namespace != "" || attr.Key != key {
			continue
		}
		if v, ok := a.resolve(attr.Val); ok {
			tok.Attr[i].Val = v
			changed = true
		}
	}
	return changed
}

// resolve returns the file:// form of ref and true when ref is a relative
// path inside the root.
func (a previewAnchor) resolve(ref string) (string, bool) {
	if ref == "" || filepath.IsAbs(ref) {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	if u.Scheme != "" || u.Host != "" || u.User != nil || u.Opaque != "" {
		return "", false
	}
	if u.Path == "" || strings.HasPrefix(u.Path, "/") {
		return "", false
	}

	target := filepath.Join(a.root, filepath.FromSlash(u.Path))
	if !a.contains(target) {
		return "", false
	}

	p := filepath.ToSlash(target)
	// Drive-letter paths need a leading slash to form file:///C:/...
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	anchored := *u
	anchored.Scheme = "file"
	anchored.Path = p
	anchored.RawPath = ""
	return anchored.String(), true
}

// contains reports whether path is the root or below it.
func (a previewAnchor) contains(path string) bool {
	rel, err := filepath.Rel(a.root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
