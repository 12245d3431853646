package agenda

import (
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/legcowatch/agenda-mcp/service/vo"
)

// topLevelElements returns the block elements of the body, looking through
// a single wrapping container if there is one
func topLevelElements(root *html.Node) []*html.Node {
	body, err := findNodeByTag(root, atom.Body)
	if err != nil {
		return elementChildren(root)
	}
	children := elementChildren(body)
	if len(children) == 1 && (children[0].DataAtom == atom.Div || children[0].DataAtom == atom.Section) {
		return elementChildren(children[0])
	}
	return children
}

// segment buckets every top-level element under the most recent header.
// Elements before the first header are dropped.
func (d *Document) segment() {
	var current vo.Section
	active := false

	for _, el := range topLevelElements(d.Tree) {
		text := trimmedText(el)
		if text == "" {
			continue
		}

		if !headerPattern.MatchString(text) {
			if active {
				d.buckets[current] = append(d.buckets[current], el)
			}
			continue
		}

		section, ok := ClassifyHeader(text)
		if !ok {
			d.diagnose(vo.SectionOther, vo.DiagnosticUnrecognizedHeader, "unrecognized section header", text)
		}
		current, active = section, true
		if _, exists := d.buckets[section]; !exists {
			d.buckets[section] = []*html.Node{}
		}
		d.Headers = append(d.Headers, vo.Header{Section: section, Text: text})
		d.logger.Debug("section header", zap.String("section", string(section)), zap.String("header", text))
	}
}
