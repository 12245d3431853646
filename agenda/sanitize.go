package agenda

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// inline emphasis that carries no structure
var emphasisTags = map[atom.Atom]bool{
	atom.B:      true,
	atom.Strong: true,
	atom.I:      true,
	atom.Em:     true,
	atom.U:      true,
}

var droppedTags = map[atom.Atom]bool{
	atom.Script: true,
	atom.Style:  true,
}

// isTabPlaceholder matches the spans document converters emit to simulate
// tab stops
func isTabPlaceholder(n *html.Node) bool {
	if n.DataAtom != atom.Span {
		return false
	}
	class := attrValue(n, "class")
	if strings.Contains(class, "pydocx-tab") || strings.Contains(class, "Apple-tab-span") {
		return true
	}
	return strings.Contains(attrValue(n, "style"), "mso-tab-count")
}

// Sanitize parses normalized markup into a tree with emphasis wrappers
// unwrapped and tab placeholders removed. The returned error wraps
// ErrDocumentLoad.
func Sanitize(id, text string) (*html.Node, error) {
	if !utf8.ValidString(text) {
		return nil, &LoadError{DocumentID: id, Err: errors.New("source is not valid UTF-8")}
	}

	root, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, &LoadError{DocumentID: id, Err: err}
	}
	if _, err := findNodeByTag(root, atom.Body); err != nil {
		return nil, &LoadError{DocumentID: id, Err: err}
	}

	sanitizeNode(root)
	return root, nil
}

func sanitizeNode(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling

		switch {
		case c.Type == html.CommentNode:
			n.RemoveChild(c)
		case c.Type == html.TextNode:
			// character references are only decoded by the parser
			c.Data = Normalize(c.Data)
		case c.Type != html.ElementNode:
		case droppedTags[c.DataAtom], isTabPlaceholder(c):
			n.RemoveChild(c)
		case emphasisTags[c.DataAtom]:
			sanitizeNode(c)
			for gc := c.FirstChild; gc != nil; {
				gnext := gc.NextSibling
				c.RemoveChild(gc)
				n.InsertBefore(gc, c)
				gc = gnext
			}
			n.RemoveChild(c)
		default:
			sanitizeNode(c)
		}

		c = next
	}
	mergeTextNodes(n)
}

// mergeTextNodes joins adjacent text children left behind by unwrapping
func mergeTextNodes(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			continue
		}
		for next := c.NextSibling; next != nil && next.Type == html.TextNode; next = c.NextSibling {
			c.Data += next.Data
			n.RemoveChild(next)
		}
	}
}
