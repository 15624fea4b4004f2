package mailer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func convertButton(t *testing.T, src string) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, goldmark.New(goldmark.WithExtensions(NewButtonExtension())).Convert([]byte(src), &buf))
	return buf.String()
}

func TestButtonExtension(t *testing.T) {
	t.Parallel()

	t.Run("renders anchor", func(t *testing.T) {
		t.Parallel()
		require.Contains(t, convertButton(t, "[!button|Reply](mailto:ada@example.com)"),
			`<a href="mailto:ada@example.com" class="btn">Reply</a>`)
	})

	t.Run("label escaped", func(t *testing.T) {
		t.Parallel()

		out := convertButton(t, `[!button|<b>Go</b>](https://example.com)`)
		require.Contains(t, out, "&lt;b&gt;Go&lt;/b&gt;")
		require.NotContains(t, out, "<b>")
	})

	t.Run("unsafe scheme renders label only", func(t *testing.T) {
		t.Parallel()

		out := convertButton(t, `[!button|Click](javascript:alert(1)`)
		require.NotContains(t, out, "javascript")
		require.NotContains(t, out, "<a ")
		require.Contains(t, out, "Click")
	})

	t.Run("regular links untouched", func(t *testing.T) {
		t.Parallel()
		require.Contains(t, convertButton(t, "[site](https://example.com)"), `<a href="https://example.com">site</a>`)
	})

	t.Run("surrounding text kept", func(t *testing.T) {
		t.Parallel()

		out := convertButton(t, "Before [!button|Go](https://example.com) after")
		require.Contains(t, out, "Before ")
		require.Contains(t, out, `class="btn">Go</a> after`)
	})
}
