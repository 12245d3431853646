package agenda

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

func TestSanitizeUnwrapsEmphasis(t *testing.T) {
	root, err := Sanitize("t1e", `<p>I. <b>Laying</b> of <i><u>Papers</u></i></p>`)
	require.NoError(t, err)

	p, err := findNodeByTag(root, atom.P)
	require.NoError(t, err)
	assert.Equal(t, "I. Laying of Papers", textContent(p))
	assert.Equal(t, "<p>I. Laying of Papers</p>", renderNode(p))

	for _, tag := range []atom.Atom{atom.B, atom.I, atom.U} {
		_, err := findNodeByTag(root, tag)
		assert.Error(t, err, tag.String())
	}
}

func TestSanitizeDropsTabPlaceholders(t *testing.T) {
	root, err := Sanitize("t1e", `<p>1.<span class="pydocx-tab"> </span>Hon Alice<span style="mso-tab-count:2">  </span>to ask</p><p>2.<span class="Apple-tab-span">	</span>x</p>`)
	require.NoError(t, err)

	body, err := findNodeByTag(root, atom.Body)
	require.NoError(t, err)
	paragraphs := elementChildren(body)
	require.Len(t, paragraphs, 2)
	assert.Equal(t, "1.Hon Aliceto ask", textContent(paragraphs[0]))
	assert.Equal(t, "2.x", textContent(paragraphs[1]))
	assert.False(t, strings.Contains(renderNode(body), "span"))
}

func TestSanitizeRemovesScriptsAndComments(t *testing.T) {
	root, err := Sanitize("t1e", `<p>keep<!-- note --></p><script>alert(1)</script><style>p{}</style>`)
	require.NoError(t, err)

	body, err := findNodeByTag(root, atom.Body)
	require.NoError(t, err)
	assert.Equal(t, "<body><p>keep</p></body>", renderNode(body))
}

func TestSanitizeLoadError(t *testing.T) {
	_, err := Sanitize("bad1e", "<p>\xff\xfe</p>")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDocumentLoad))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "bad1e", loadErr.DocumentID)
}
