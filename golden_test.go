package el2md_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/thornjad/el2md"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	t.Parallel()

	inputs, err := filepath.Glob(filepath.Join("testdata", "*.el"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	for _, input := range inputs {
		input := input
		t.Run(filepath.Base(input), func(t *testing.T) {
			t.Parallel()

			src, err := os.ReadFile(input)
			require.NoError(t, err)

			conv := el2md.NewConverter()

			got, err := conv.ConvertString(filepath.Base(input), src)
			require.NoError(t, err)

			goldenPath := strings.TrimSuffix(input, ".el") + ".md"

			if *update {
				require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0o644))

				return
			}

			want, err := os.ReadFile(goldenPath)
			require.NoError(t, err, "golden file %s not found; run with -update to create", goldenPath)

			assert.Equal(t, string(want), got)
		})
	}
}

// TestGoldenRendersAsMarkdown feeds the converted output through a real
// Markdown renderer and checks the document structure survives: heading
// levels, code blocks, and the raw <kbd> spans.
func TestGoldenRendersAsMarkdown(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile(filepath.Join("testdata", "simple.el"))
	require.NoError(t, err)

	conv := el2md.NewConverter()

	got, err := conv.ConvertString("simple.el", src)
	require.NoError(t, err)

	md := goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))

	var buf bytes.Buffer

	require.NoError(t, md.Convert([]byte(got), &buf))

	rendered := buf.String()

	assert.Contains(t, rendered, "<h1>simple - Example library for el2md</h1>")
	assert.Contains(t, rendered, "<h2>Usage</h2>")
	assert.Contains(t, rendered, "<h3>Notes</h3>")
	assert.Contains(t, rendered, "<kbd>RET</kbd>")
	assert.Contains(t, rendered, "<kbd>C-c C-s</kbd>")
	assert.Contains(t, rendered, "<pre><code>")
	assert.Contains(t, rendered, "<hr>")
	assert.Contains(t, rendered, "<ul>")
}
