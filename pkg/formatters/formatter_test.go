package formatters_test

import (
	"testing"

	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/formatters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   string
		want  string
	}{
		{"already a slug", "some-value", "-", "some-value"},
		{"spaces and punctuation collapse", "  Hello,   World!  ", "-", "hello-world"},
		{"underscores become separators", "author_email", "-", "author-email"},
		{"empty separator joins", "some-value", "", "somevalue"},
		{"diacritics are folded", "Ayax Córdova", "-", "ayax-cordova"},
		{"digits are kept", "v2 api", "_", "v2_api"},
		{"only punctuation", "--!!--", "-", ""},
		{"empty", "", "-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatters.Slug(tt.input, tt.sep))
		})
	}
}

func TestStudly(t *testing.T) {
	assert.Equal(t, "SomeValue", formatters.Studly("some-value"))
	assert.Equal(t, "AcmeCorp", formatters.Studly("acme corp"))
	assert.Equal(t, "FooBar", formatters.Studly("fooBar"))
	assert.Equal(t, "MyFormatter", formatters.Studly("MyFormatter"))
	assert.Equal(t, "AyaxCordova", formatters.Studly("Ayax Córdova"))
	assert.Equal(t, "", formatters.Studly("--"))

	// inner casing is kept, all caps words are not lowered
	assert.Equal(t, "ACME", formatters.Studly("ACME"))
	assert.Equal(t, "AcmeCORP", formatters.Studly("acme CORP"))
	assert.Equal(t, "ACME", formatters.StudlyCase{}.Value("ACME"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "A B C", formatters.TitleCase("a, b.c"))
	assert.Equal(t, "John Doe", formatters.TitleCase("john DOE"))
	assert.Equal(t, "Ayax Córdova", formatters.TitleCase("ayax córdova"))
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "john@doe.com", formatters.SanitizeEmail("john@doe.com"))
	assert.Equal(t, "johnatdoe@mail.com", formatters.SanitizeEmail("jo hn(at)<doe>@mail.com"))
	assert.Equal(t, "not-an-email", formatters.SanitizeEmail("not-an-email"))
	assert.Equal(t, "", formatters.SanitizeEmail("äöü"))
}

func TestFormatterTokens(t *testing.T) {
	tests := []struct {
		formatter   formatters.Formatter
		placeholder string
		want        string
	}{
		{formatters.UpperCase{}, "vendor", "VENDOR"},
		{formatters.UpperCase{}, "author-email", "AUTHOREMAIL"},
		{formatters.LowerCase{}, "Vendor", "vendor"},
		{formatters.LowerCase{}, "author email", "author-email"},
		{formatters.StudlyCase{}, "package", "Package"},
		{formatters.StudlyCase{}, "root-namespace", "RootNamespace"},
		{formatters.Title{}, "Author", "author:title"},
		{formatters.Email{}, "author-email", "author-email:email"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.formatter.Token(tt.placeholder))
		})
	}
}

func TestFormatterValues(t *testing.T) {
	tests := []struct {
		name      string
		formatter formatters.Formatter
		value     string
		want      string
	}{
		{"upper drops separators", formatters.UpperCase{}, "some-value", "SOMEVALUE"},
		{"lower slugs", formatters.LowerCase{}, "Acme Corp!", "acme-corp"},
		{"studly", formatters.StudlyCase{}, "some-value", "SomeValue"},
		{"title", formatters.Title{}, "a, b.c", "A B C"},
		{"email", formatters.Email{}, "john (doe)@mail.com", "johndoe@mail.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.formatter.Value(tt.value))
		})
	}
}

func TestDefaultOrdering(t *testing.T) {
	assert.Equal(t, []formatters.Formatter{
		formatters.UpperCase{},
		formatters.LowerCase{},
		formatters.StudlyCase{},
		formatters.Title{},
	}, formatters.Default())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want formatters.Formatter
	}{
		{"upper", formatters.UpperCase{}},
		{"UpperCase", formatters.UpperCase{}},
		{" lower ", formatters.LowerCase{}},
		{"pascal", formatters.StudlyCase{}},
		{"studly", formatters.StudlyCase{}},
		{"title", formatters.Title{}},
		{"EMAIL", formatters.Email{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatters.Parse(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKind(t *testing.T) {
	kind, err := formatters.ParseKind("Pascal")
	require.NoError(t, err)
	assert.Equal(t, formatters.KindStudly, kind)
	assert.Equal(t, "studly", kind.String())

	_, err = formatters.ParseKind("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFormatter))
}

func TestParseUnknown(t *testing.T) {
	_, err := formatters.Parse("kebab")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFormatter))

	_, err = formatters.ParseList([]string{"upper", "snake"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFormatter))
}

func TestParseList(t *testing.T) {
	list, err := formatters.ParseList([]string{"upper", "lower"})
	require.NoError(t, err)
	assert.Equal(t, []formatters.Formatter{formatters.UpperCase{}, formatters.LowerCase{}}, list)

	empty, err := formatters.ParseList(nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"upper", "lower", "studly", "title", "email"}, formatters.Names())
	for _, k := range formatters.Kinds() {
		assert.NotNil(t, k.Formatter(), k.String())
	}
	assert.Equal(t, "unknown", formatters.Kind(42).String())
	assert.Nil(t, formatters.Kind(42).Formatter())
}
