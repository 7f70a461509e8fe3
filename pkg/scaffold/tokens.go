package scaffold

import (
	"github.com/arthur-debert/scaffy/pkg/config"
	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/formatters"
	"github.com/arthur-debert/scaffy/pkg/replacer"
)

// Token describes one placeholder form a template can use.
type Token struct {
	Field string
	// Formatter is the canonical formatter name, "" for direct
	// substitution.
	Formatter string
	// Text is the token as written in a template.
	Text string
	// Value is what Text becomes, "" when the field has no value.
	Value string
	// FileName marks unwrapped tokens matched in file names.
	FileName bool
}

// Tokens lists every token the configuration recognises, in the order they
// are substituted, with the values fields would produce.
func Tokens(cfg *config.Config, fields Fields) ([]Token, error) {
	n := fields.Normalize()
	wrapper := cfg.ContentWrapper()

	var out []Token
	add := func(field, value string, names []string, w replacer.Wrapper, fileName bool) error {
		if len(names) == 0 {
			out = append(out, Token{Field: field, Text: w.Wrap(field), Value: value, FileName: fileName})
			return nil
		}
		for _, name := range names {
			kind, err := formatters.ParseKind(name)
			if err != nil {
				return errors.Wrapf(err, errors.ErrConfigValid, "formatters.%s", field)
			}
			f := kind.Formatter()
			t := Token{Field: field, Formatter: kind.String(), Text: w.Wrap(f.Token(field)), FileName: fileName}
			if value != "" {
				t.Value = f.Value(value)
			}
			out = append(out, t)
		}
		return nil
	}

	for _, fv := range contentFields(n) {
		if err := add(fv.field, fv.value, cfg.Formatters[fv.field], wrapper, false); err != nil {
			return nil, err
		}
	}
	namespace := n.Namespace()
	if err := add(NamespaceToken, namespace, nil, wrapper, false); err != nil {
		return nil, err
	}
	if err := add(FieldNamespace, namespace, cfg.Formatters[FieldNamespace], wrapper, false); err != nil {
		return nil, err
	}

	for _, fv := range renameFields(n) {
		if err := add(fv.field, fv.value, cfg.Rename.Formatters, replacer.Bare, true); err != nil {
			return nil, err
		}
	}
	return out, nil
}
