package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		tags    []string
		want    string
	}{
		{"no marker untouched", "  keep me  \n\n", []string{"DELETE"}, "  keep me  \n\n"},
		{"trailing newline kept", "a\n\n<!--DELETE-->b<!--/DELETE-->\n\nc\n", []string{"DELETE"}, "a\n\nc\n"},
		{"no trailing newline", "<!--DELETE-->b<!--/DELETE-->c", []string{"DELETE"}, "c"},
		{"everything removed", "<!--DELETE-->b<!--/DELETE-->\n", []string{"DELETE"}, ""},
		{"tags in order", "<!--A-->1<!--/A-->x<!--B-->2<!--/B-->y", []string{"A", "B"}, "xy"},
		{"other tags kept", "<!--KEEP-->1<!--/KEEP-->", []string{"DELETE"}, "<!--KEEP-->1<!--/KEEP-->"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.content, tt.tags))
		})
	}
}

func TestRewriterFileName(t *testing.T) {
	rw := newRewriter(t, Fields{Vendor: "acme", Package: "widgets"})

	tests := []struct {
		base string
		want string
	}{
		{"VendorPackageServiceProvider.php", "AcmeWidgetsServiceProvider.php"},
		{"vendor-package.php.stub", "acme-widgets.php"},
		{"PACKAGE.md", "WIDGETS.md"},
		{"AuthorNotes.txt", "AuthorNotes.txt"},
		{"README.md", "README.md"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got, err := rw.FileName(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewriterContentOrder(t *testing.T) {
	rw := newRewriter(t, sampleFields)

	got, err := rw.Content("{{author:title}} <{{author-email:email}}> {{Namespace}} {{NAMESPACE}} {{namespace}}")
	require.NoError(t, err)
	assert.Equal(t, `Ayax Córdova <example@mail.com> Asciito\Example ASCIITOEXAMPLE asciito-example`, got)
}
