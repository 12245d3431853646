package agenda

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// findNodeByTag returns the first element with the given tag in document order
func findNodeByTag(n *html.Node, tag atom.Atom) (*html.Node, error) {
	if n.Type == html.ElementNode && n.DataAtom == tag {
		return n, nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result, err := findNodeByTag(c, tag); err == nil {
			return result, nil
		}
	}

	return nil, fmt.Errorf("element with tag '%s' not found", tag)
}

func elementChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// textContent flattens all descendant text of n
func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	var collect func(*html.Node)

	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}

	collect(n)
	return sb.String()
}

// trimmedText is textContent with surrounding whitespace, including the
// non-breaking spaces word processors leave behind, removed
func trimmedText(n *html.Node) string {
	return strings.TrimSpace(strings.ReplaceAll(textContent(n), "\u00a0", " "))
}

func renderNode(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

func isTable(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.Table
}

// tableRows returns the rows of a table in document order; rows of nested
// tables are not included
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	var find func(*html.Node)

	find = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Tr:
				rows = append(rows, c)
			case atom.Table:
			default:
				find(c)
			}
		}
	}

	find(table)
	return rows
}

// cellTexts returns the trimmed text of each td/th in a row
func cellTexts(row *html.Node) []string {
	var cells []string
	for _, c := range elementChildren(row) {
		if c.DataAtom == atom.Td || c.DataAtom == atom.Th {
			cells = append(cells, trimmedText(c))
		}
	}
	return cells
}

func isBlankRow(row *html.Node) bool {
	return trimmedText(row) == ""
}
