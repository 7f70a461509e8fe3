package scaffold

import (
	"strings"

	"github.com/arthur-debert/scaffy/pkg/config"
	"github.com/arthur-debert/scaffy/pkg/formatters"
	"github.com/arthur-debert/scaffy/pkg/replacer"
	"github.com/arthur-debert/scaffy/pkg/tags"
)

// step substitutes one placeholder with its formatter list.
type step struct {
	placeholder string
	value       *string
	formatters  []formatters.Formatter
}

// Rewriter applies the content and file name pipelines for one set of
// fields. It holds no mutable state and is safe for concurrent use.
type Rewriter struct {
	wrapper          replacer.Wrapper
	steps            []step
	deleteTags       []string
	renameNames      []string
	renameValues     []*string
	renameFormatters []formatters.Formatter
	stripSuffix      string
}

// fieldValue binds a placeholder name to its normalized value.
type fieldValue struct {
	field string
	value string
}

// contentFields lists the formatted fields in content order: author,
// e-mail and description first, then the identifier fields. The namespace
// steps follow them.
func contentFields(n Fields) []fieldValue {
	return []fieldValue{
		{FieldAuthor, n.Author},
		{FieldAuthorEmail, n.AuthorEmail},
		{FieldDescription, n.Description},
		{FieldVendor, n.Vendor},
		{FieldPackage, n.Package},
	}
}

// renameFields lists the fields substituted in file names, in order.
func renameFields(n Fields) []fieldValue {
	return []fieldValue{
		{FieldAuthor, n.Author},
		{FieldVendor, n.Vendor},
		{FieldPackage, n.Package},
		{FieldNamespace, n.Namespace()},
	}
}

// NewRewriter resolves the configured formatter lists for fields.
func NewRewriter(cfg *config.Config, fields Fields) (*Rewriter, error) {
	n := fields.Normalize()
	namespace := n.Namespace()

	rw := &Rewriter{
		wrapper:     cfg.ContentWrapper(),
		deleteTags:  cfg.Tags.Delete,
		stripSuffix: cfg.Rename.StripSuffix,
	}

	for _, fv := range contentFields(n) {
		fs, err := cfg.FormattersFor(fv.field)
		if err != nil {
			return nil, err
		}
		rw.steps = append(rw.steps, step{placeholder: fv.field, value: optional(fv.value), formatters: fs})
	}

	namespaceFormatters, err := cfg.FormattersFor(FieldNamespace)
	if err != nil {
		return nil, err
	}
	rw.steps = append(rw.steps,
		step{placeholder: NamespaceToken, value: optional(namespace)},
		step{placeholder: FieldNamespace, value: optional(namespace), formatters: namespaceFormatters},
	)

	rw.renameFormatters, err = cfg.RenameFormatters()
	if err != nil {
		return nil, err
	}
	for _, fv := range renameFields(n) {
		rw.renameNames = append(rw.renameNames, fv.field)
		rw.renameValues = append(rw.renameValues, optional(fv.value))
	}

	return rw, nil
}

// Content substitutes every placeholder in content and strips the
// configured tag blocks.
func (rw *Rewriter) Content(content string) (string, error) {
	for _, s := range rw.steps {
		var err error
		content, err = replacer.ApplyAll([]string{s.placeholder}, []*string{s.value}, content, s.formatters, rw.wrapper)
		if err != nil {
			return "", err
		}
	}
	return StripTags(content, rw.deleteTags), nil
}

// StripTags removes the blocks of every tag in order. Content without a
// marker is returned untouched; otherwise the result is trimmed, keeping
// a final newline when content had one.
func StripTags(content string, tagNames []string) string {
	for _, tag := range tagNames {
		if !tags.Has(tag, content) {
			continue
		}
		trailing := strings.HasSuffix(content, "\n")
		content = tags.Remove(tag, content)
		if trailing && content != "" {
			content += "\n"
		}
	}
	return content
}

// FileName rewrites a base name: the stub suffix is dropped, then bare
// tokens are substituted.
func (rw *Rewriter) FileName(base string) (string, error) {
	if rw.stripSuffix != "" {
		base = strings.TrimSuffix(base, rw.stripSuffix)
	}
	return replacer.ApplyAll(rw.renameNames, rw.renameValues, base, rw.renameFormatters, replacer.Bare)
}
