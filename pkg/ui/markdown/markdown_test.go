package markdown

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "# Tokens\n\n| Token | Value |\n| --- | --- |\n| `{{VENDOR}}` | ACME |\n"

func TestNoTTYPassesThrough(t *testing.T) {
	r := &Renderer{Style: "notty"}
	assert.Equal(t, sample, r.Render(sample))
}

func TestForFileNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "notty", ForFile(f).Style)
	assert.Equal(t, sample, ForFile(f).Render(sample))
}

func TestAsciiStyleRendersContent(t *testing.T) {
	r := &Renderer{Style: "ascii", Width: 60}
	out := r.Render(sample)

	assert.Contains(t, out, "Tokens")
	assert.Contains(t, out, "{{VENDOR}}")
	assert.Contains(t, out, "ACME")
}

func TestMissingStyleFileFallsBack(t *testing.T) {
	r := &Renderer{Style: "/does/not/exist.json"}
	assert.Equal(t, sample, r.Render(sample))
}
