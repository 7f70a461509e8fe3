package replacer

import (
	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/formatters"
)

// Pair is one placeholder bound to a present value.
type Pair struct {
	Placeholder string
	Value       string
}

// Value returns a present value for use with Zip and ApplyAll. A nil
// *string marks a value as absent.
func Value(s string) *string {
	return &s
}

// Values wraps every string as a present value.
func Values(ss ...string) []*string {
	out := make([]*string, len(ss))
	for i := range ss {
		out[i] = Value(ss[i])
	}
	return out
}

// Zip pairs placeholders with values by position, stopping at the shorter
// list, and drops pairs whose value is absent. Empty values are kept.
func Zip(placeholders []string, values []*string) []Pair {
	n := min(len(placeholders), len(values))
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		if values[i] == nil {
			continue
		}
		pairs = append(pairs, Pair{Placeholder: placeholders[i], Value: *values[i]})
	}
	return pairs
}

// ApplyAll folds one Replacer per zipped pair over content, in order. The
// first pair that cannot form a Replacer aborts the whole call.
func ApplyAll(placeholders []string, values []*string, content string, fs []formatters.Formatter, w Wrapper) (string, error) {
	for _, pair := range Zip(placeholders, values) {
		r, err := New(pair.Placeholder, pair.Value, fs, w)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidPlaceholder, "cannot replace %q", pair.Placeholder)
		}
		content = r.ReplaceOn(content)
	}
	return content, nil
}
