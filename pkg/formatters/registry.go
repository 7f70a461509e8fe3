package formatters

import (
	"strings"

	"github.com/arthur-debert/scaffy/pkg/errors"
)

// Kind identifies a formatter variant.
type Kind int

const (
	KindUpper Kind = iota
	KindLower
	KindStudly
	KindTitle
	KindEmail
)

var kindNames = map[Kind]string{
	KindUpper:  "upper",
	KindLower:  "lower",
	KindStudly: "studly",
	KindTitle:  "title",
	KindEmail:  "email",
}

// aliases maps accepted configuration names to kinds.
var aliases = map[string]Kind{
	"upper":     KindUpper,
	"uppercase": KindUpper,
	"lower":     KindLower,
	"lowercase": KindLower,
	"studly":    KindStudly,
	"pascal":    KindStudly,
	"title":     KindTitle,
	"email":     KindEmail,
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Formatter returns the implementation for the kind.
func (k Kind) Formatter() Formatter {
	switch k {
	case KindUpper:
		return UpperCase{}
	case KindLower:
		return LowerCase{}
	case KindStudly:
		return StudlyCase{}
	case KindTitle:
		return Title{}
	case KindEmail:
		return Email{}
	}
	return nil
}

// Kinds lists every variant in declaration order.
func Kinds() []Kind {
	return []Kind{KindUpper, KindLower, KindStudly, KindTitle, KindEmail}
}

// Names lists the canonical names of every variant.
func Names() []string {
	names := make([]string, 0, len(kindNames))
	for _, k := range Kinds() {
		names = append(names, k.String())
	}
	return names
}

// ParseKind resolves a kind by name, ignoring case and surrounding space.
func ParseKind(name string) (Kind, error) {
	kind, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Newf(errors.ErrUnknownFormatter,
			"unknown formatter %q (want one of %s)", name, strings.Join(Names(), ", ")).
			WithDetail("name", name)
	}
	return kind, nil
}

// Parse resolves a formatter by name, ignoring case and surrounding space.
func Parse(name string) (Formatter, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return kind.Formatter(), nil
}

// ParseList resolves names in order. An empty list yields an empty,
// non-nil slice.
func ParseList(names []string) ([]Formatter, error) {
	list := make([]Formatter, 0, len(names))
	for _, name := range names {
		f, err := Parse(name)
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, nil
}
