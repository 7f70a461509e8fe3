// Package tags strips marked blocks from template content.
//
// A block is delimited by HTML comment markers named after the tag:
//
//	<!--DELETE-->
//	only in the template
//	<!--/DELETE-->
//
// Matching is non-greedy and unaware of nesting. An open marker whose close
// is malformed runs forward to the next well-formed close of the same tag,
// taking every marker in between with it.
package tags

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultTag is the tag stripped when none is configured.
const DefaultTag = "DELETE"

// OpenMarker returns the opening marker for tag.
func OpenMarker(tag string) string {
	return fmt.Sprintf("<!--%s-->", tag)
}

// CloseMarker returns the closing marker for tag.
func CloseMarker(tag string) string {
	return fmt.Sprintf("<!--/%s-->", tag)
}

// Compile builds the block pattern for tag. One newline on either side of
// a block goes with it. The tag name is quoted, so compilation cannot fail.
func Compile(tag string) *regexp.Regexp {
	q := regexp.QuoteMeta(tag)
	return regexp.MustCompile(`(?s)\n?<!--` + q + `-->.*?<!--/` + q + `-->\n?`)
}

// Remove deletes every block of tag in a single left-to-right pass and
// trims surrounding whitespace from the result.
func Remove(tag, content string) string {
	return strings.TrimSpace(Compile(tag).ReplaceAllString(content, ""))
}

// Has reports whether content holds an open marker for tag.
func Has(tag, content string) bool {
	return strings.Contains(content, OpenMarker(tag))
}
