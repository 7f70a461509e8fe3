package formatters

import "strings"

// Formatter renders one casing variant of a placeholder.
type Formatter interface {
	// Token returns the placeholder text this variant looks for, without
	// wrapping delimiters. It depends only on placeholder.
	Token(placeholder string) string
	// Value returns the replacement text. It depends only on value.
	Value(value string) string
}

// UpperCase matches {{VENDOR}} and renders ACMECORP.
type UpperCase struct{}

func (UpperCase) Token(placeholder string) string {
	return strings.ToUpper(Slug(placeholder, ""))
}

func (UpperCase) Value(value string) string {
	return strings.ToUpper(Slug(value, ""))
}

// LowerCase matches {{vendor}} and renders acme-corp.
type LowerCase struct{}

func (LowerCase) Token(placeholder string) string {
	return strings.ToLower(Slug(placeholder, DefaultSeparator))
}

func (LowerCase) Value(value string) string {
	return strings.ToLower(Slug(value, DefaultSeparator))
}

// StudlyCase matches {{Vendor}} and renders AcmeCorp.
type StudlyCase struct{}

func (StudlyCase) Token(placeholder string) string {
	return Studly(placeholder)
}

func (StudlyCase) Value(value string) string {
	return Studly(value)
}

// Title matches {{vendor:title}} and renders Acme Corp.
type Title struct{}

// TitleSuffix is appended to the slugged placeholder by Title.
const TitleSuffix = ":title"

func (Title) Token(placeholder string) string {
	return Slug(strings.ToLower(placeholder), DefaultSeparator) + TitleSuffix
}

func (Title) Value(value string) string {
	return TitleCase(value)
}

// Email matches {{author-email:email}} and renders a sanitized address.
type Email struct{}

// EmailSuffix is appended to the slugged placeholder by Email.
const EmailSuffix = ":email"

func (Email) Token(placeholder string) string {
	return Slug(placeholder, DefaultSeparator) + EmailSuffix
}

func (Email) Value(value string) string {
	return SanitizeEmail(value)
}

// Default returns the ordering used for in-content substitution of
// identifier-like fields.
func Default() []Formatter {
	return []Formatter{UpperCase{}, LowerCase{}, StudlyCase{}, Title{}}
}
