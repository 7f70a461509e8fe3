package formatters

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSeparator is the separator Slug uses when none is given.
const DefaultSeparator = "-"

// punctuationRun matches runs of ASCII punctuation and whitespace.
var punctuationRun = regexp.MustCompile(`[[:punct:]\s]+`)

// foldDiacritics decomposes s and drops combining marks, so "Córdova"
// becomes "Cordova". Transformers are stateful, one is built per call.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Slug lowercases s, replaces every run of characters that are not letters
// or digits with sep and trims sep from both ends.
func Slug(s, sep string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(foldDiacritics(s)) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteString(sep)
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}

// Studly converts s to PascalCase: "some-value" becomes "SomeValue". Words
// are split on anything that is not a letter or digit, and keep their inner
// casing, so "fooBar" becomes "FooBar".
func Studly(s string) string {
	var b strings.Builder
	words := strings.FieldsFunc(foldDiacritics(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		rs := []rune(word)
		rs[0] = unicode.ToTitle(rs[0])
		b.WriteString(string(rs))
	}
	return b.String()
}

// TitleCase collapses punctuation and whitespace runs to a single space and
// title-cases every word, so "a, b.c" becomes "A B C".
func TitleCase(s string) string {
	spaced := punctuationRun.ReplaceAllString(s, " ")
	return cases.Title(language.Und).String(spaced)
}

// SanitizeEmail drops every character that cannot appear in an email
// address. It never rejects input.
func SanitizeEmail(s string) string {
	return strings.Map(func(r rune) rune {
		if isEmailRune(r) {
			return r
		}
		return -1
	}, s)
}

func isEmailRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("!#$%&'*+-=?^_`{|}~@.[]", r)
}
