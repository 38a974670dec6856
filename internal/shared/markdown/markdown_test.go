package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ToHTMLSanitized(t *testing.T) {
	svc := NewService()

	t.Run("renders basic markdown", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("# Title\n\nSome **bold** text.")
		require.NoError(t, err)
		assert.Contains(t, out, "<h1")
		assert.Contains(t, out, "<strong>bold</strong>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("hello <script>alert(1)</script> world")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.NotContains(t, out, "alert(1)")
	})

	t.Run("strips event handler attributes", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized(`<a href="https://example.com" onclick="alert(1)">link</a>`)
		require.NoError(t, err)
		assert.NotContains(t, out, "onclick")
		assert.Contains(t, out, "example.com")
	})

	t.Run("renders GFM tables", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("| a | b |\n|---|---|\n| 1 | 2 |")
		require.NoError(t, err)
		assert.Contains(t, out, "<table>")
	})

	t.Run("empty input renders empty", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestService_Sanitize(t *testing.T) {
	svc := NewService()

	out := svc.Sanitize(`<pre class="language-go">code</pre><iframe src="x"></iframe>`)
	assert.Contains(t, out, `class="language-go"`)
	assert.NotContains(t, out, "iframe")
}
