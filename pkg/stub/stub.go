// Package stub renders class files from stub templates.
//
// A template may use three placeholders, all matched in StudlyCase:
//
//	{{Class}}          the class name, the last segment of the requested name
//	{{Namespace}}      the root namespace plus any sub path of the name
//	{{RootNamespace}}  the configured root namespace
//
// Generating "text/slug-formatter" under root namespace App yields class
// SlugFormatter in namespace App\Text, written to <dir>/Text/SlugFormatter.php.
package stub

import (
	_ "embed"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/filesystem"
	"github.com/arthur-debert/scaffy/pkg/formatters"
	"github.com/arthur-debert/scaffy/pkg/logging"
	"github.com/arthur-debert/scaffy/pkg/replacer"
)

//go:embed embedded/class.stub
var defaultTemplate string

// Placeholder names a template can use.
const (
	PlaceholderClass         = "Class"
	PlaceholderNamespace     = "Namespace"
	PlaceholderRootNamespace = "RootNamespace"
)

// NamespaceSeparator separates namespace segments in names and output.
const NamespaceSeparator = `\`

// DefaultExtension is used when Options.Extension is empty.
const DefaultExtension = "php"

// DefaultTemplate returns the embedded class stub.
func DefaultTemplate() string {
	return defaultTemplate
}

// Options describes one stub to generate.
type Options struct {
	// Name is the requested class, optionally with a sub path separated by
	// "/" or "\".
	Name string
	// Template is the stub content. Empty means DefaultTemplate.
	Template      string
	RootNamespace string
	OutputDir     string
	Extension     string
	// Reserved names are refused, compared case-insensitively.
	Reserved []string
	// Force overwrites an existing target.
	Force bool
}

// Stub is a rendered template and where it goes.
type Stub struct {
	Class         string
	Namespace     string
	RootNamespace string
	Path          string
	Content       string
}

// IsReserved reports whether name matches one of reserved, ignoring case.
func IsReserved(name string, reserved []string) bool {
	for _, r := range reserved {
		if strings.EqualFold(name, r) {
			return true
		}
	}
	return false
}

// segments splits a "/" or "\" separated name into StudlyCase parts.
func segments(name string) []string {
	name = strings.ReplaceAll(name, "/", NamespaceSeparator)
	var parts []string
	for _, p := range strings.Split(name, NamespaceSeparator) {
		if s := formatters.Studly(p); s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}

// Render resolves names and substitutes the template without touching the
// filesystem.
func Render(opts Options) (*Stub, error) {
	raw := strings.Trim(strings.TrimSpace(opts.Name), `\/`)
	if raw == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a class name is required")
	}

	rawParts := strings.FieldsFunc(raw, func(r rune) bool { return r == '/' || r == '\\' })
	rawClass := rawParts[len(rawParts)-1]
	if IsReserved(rawClass, opts.Reserved) {
		return nil, errors.Newf(errors.ErrReservedName, "the name %s is reserved", rawClass).
			WithDetail("name", rawClass)
	}

	parts := segments(raw)
	if len(parts) != len(rawParts) {
		return nil, errors.Newf(errors.ErrInvalidInput, "%q is not a valid class name", opts.Name)
	}
	class := parts[len(parts)-1]
	if IsReserved(class, opts.Reserved) {
		return nil, errors.Newf(errors.ErrReservedName, "the name %s is reserved", class).
			WithDetail("name", class)
	}

	root := segments(opts.RootNamespace)
	dirs := parts[:len(parts)-1]
	namespace := strings.Join(append(append([]string{}, root...), dirs...), NamespaceSeparator)

	ext := strings.TrimPrefix(opts.Extension, ".")
	if ext == "" {
		ext = DefaultExtension
	}

	tpl := opts.Template
	if tpl == "" {
		tpl = defaultTemplate
	}

	// the class goes through StudlyCase, the namespaces are already
	// studly per segment and keep their separators
	content, err := replacer.ApplyAll(
		[]string{PlaceholderClass},
		replacer.Values(rawClass),
		tpl,
		[]formatters.Formatter{formatters.StudlyCase{}},
		replacer.Braces,
	)
	if err != nil {
		return nil, err
	}
	content, err = replacer.ApplyAll(
		[]string{PlaceholderNamespace, PlaceholderRootNamespace},
		replacer.Values(namespace, strings.Join(root, NamespaceSeparator)),
		content,
		nil,
		replacer.Braces,
	)
	if err != nil {
		return nil, err
	}

	return &Stub{
		Class:         class,
		Namespace:     namespace,
		RootNamespace: strings.Join(root, NamespaceSeparator),
		Path:          filepath.Join(append(append([]string{opts.OutputDir}, dirs...), class+"."+ext)...),
		Content:       content,
	}, nil
}

// Generate renders the stub and writes it, creating missing directories.
// An existing target is an error unless Force is set.
func Generate(fsys filesystem.FS, opts Options) (*Stub, error) {
	logger := logging.GetLogger("stub")

	s, err := Render(opts)
	if err != nil {
		return nil, err
	}

	if !opts.Force && filesystem.Exists(fsys, s.Path) {
		return nil, errors.Newf(errors.ErrAlreadyExists, "%s already exists", s.Class).
			WithDetail("path", s.Path)
	}

	if err := fsys.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", filepath.Dir(s.Path))
	}
	if err := fsys.WriteFile(s.Path, []byte(s.Content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", s.Path)
	}

	logger.Info().
		Str("class", s.Class).
		Str("namespace", s.Namespace).
		Str("path", s.Path).
		Msg("stub generated")
	return s, nil
}
