package agenda

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseBody(t *testing.T, id, body string, opts ...Option) *Document {
	t.Helper()
	doc, err := Parse(id, "<html><head><title>Agenda</title></head><body>"+body+"</body></html>", opts...)
	require.NoError(t, err)
	return doc
}

func diagnosticKinds(doc *Document) []string {
	kinds := make([]string, 0, len(doc.Diagnostics))
	for _, d := range doc.Diagnostics {
		kinds = append(kinds, string(d.Kind))
	}
	return kinds
}
