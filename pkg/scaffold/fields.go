package scaffold

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/formatters"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder names understood by templates.
const (
	FieldVendor      = "vendor"
	FieldPackage     = "package"
	FieldAuthor      = "author"
	FieldAuthorEmail = "author-email"
	FieldDescription = "description"
	FieldNamespace   = "namespace"

	// NamespaceToken is substituted verbatim, before the namespace
	// formatters run, so {{Namespace}} keeps its backslash.
	NamespaceToken = "Namespace"
)

// NamespaceSeparator joins the vendor and package parts of a namespace.
const NamespaceSeparator = `\`

// Fields are the values a template is initialised with.
type Fields struct {
	Vendor      string `toml:"vendor" yaml:"vendor"`
	Package     string `toml:"package" yaml:"package"`
	Author      string `toml:"author" yaml:"author"`
	AuthorEmail string `toml:"author-email" yaml:"author-email"`
	Description string `toml:"description" yaml:"description"`
}

// Normalize returns the fields as they are substituted: vendor and package
// slugged, author title-cased, the rest as given.
func (f Fields) Normalize() Fields {
	return Fields{
		Vendor:      formatters.Slug(f.Vendor, formatters.DefaultSeparator),
		Package:     formatters.Slug(f.Package, formatters.DefaultSeparator),
		Author:      cases.Title(language.Und).String(strings.TrimSpace(f.Author)),
		AuthorEmail: strings.TrimSpace(f.AuthorEmail),
		Description: f.Description,
	}
}

// Namespace returns Vendor\Package in StudlyCase, or "" when either part
// is missing.
func (f Fields) Namespace() string {
	vendor, pkg := formatters.Studly(f.Vendor), formatters.Studly(f.Package)
	if vendor == "" || pkg == "" {
		return ""
	}
	return vendor + NamespaceSeparator + pkg
}

// Merge fills every empty field of f from other.
func (f Fields) Merge(other Fields) Fields {
	pick := func(a, b string) string {
		if a != "" {
			return a
		}
		return b
	}
	return Fields{
		Vendor:      pick(f.Vendor, other.Vendor),
		Package:     pick(f.Package, other.Package),
		Author:      pick(f.Author, other.Author),
		AuthorEmail: pick(f.AuthorEmail, other.AuthorEmail),
		Description: pick(f.Description, other.Description),
	}
}

// Validate requires a vendor and a package that survive slugging.
func (f Fields) Validate() error {
	n := f.Normalize()
	if n.Vendor == "" {
		return errors.New(errors.ErrInvalidInput, "vendor must contain at least one letter or digit")
	}
	if n.Package == "" {
		return errors.New(errors.ErrInvalidInput, "package must contain at least one letter or digit")
	}
	return nil
}

// Summary renders the normalized fields the way they are confirmed to the
// user.
func (f Fields) Summary() string {
	n := f.Normalize()
	return fmt.Sprintf(
		"Author:        %s\nAuthor E-mail: %s\nVendor:        %s\nPackage:       %s\nDescription:   %s",
		n.Author, n.AuthorEmail, n.Vendor, n.Package, n.Description,
	)
}

// optional returns nil for an empty string so the batch engine skips it.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
