// Package formatters implements the casing variants a placeholder can take
// inside a template.
//
// A Formatter is a pair of pure functions. Token renders the literal text a
// template author writes for a placeholder in that variant, Value renders
// the replacement for a raw value. For the placeholder "vendor" and the
// value "acme corp" the variants look like this:
//
//	UpperCase   VENDOR          -> ACMECORP
//	LowerCase   vendor          -> acme-corp
//	StudlyCase  Vendor          -> AcmeCorp
//	Title       vendor:title    -> Acme Corp
//	Email       vendor:email    -> acmecorp
//
// The variant set is closed. Formatters are referenced by name in
// configuration and resolved through Parse, never by reflection.
//
// Formatters hold no state and never fail: malformed input degrades to a
// best-effort string.
package formatters
