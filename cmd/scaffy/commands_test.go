package scaffy

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/filesystem"
	"github.com/arthur-debert/scaffy/pkg/ui/prompt"
	"github.com/spf13/cobra/doc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers prompts from fixed lists and records what was
// asked.
type scriptedPrompter struct {
	inputs   []string
	confirms []bool
	asked    []string
}

func (p *scriptedPrompter) Input(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	p.asked = append(p.asked, cfg.Message)
	if len(p.inputs) == 0 {
		return cfg.Default, nil
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (p *scriptedPrompter) Confirm(ctx context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	p.asked = append(p.asked, cfg.Message)
	if len(p.confirms) == 0 {
		return cfg.Default, nil
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

const root = "/project"

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SCAFFY_CONFIG_DIR", t.TempDir())
	t.Setenv("SCAFFY_STATE_DIR", t.TempDir())
}

func templateFS(t *testing.T) filesystem.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	files := map[string]string{
		"composer.json":           `{"name": "{{vendor}}/{{package}}", "author": "{{author:title}} <{{author-email:email}}>"}`,
		"src/VendorClass.php":     "namespace {{Namespace}};\n",
		"config/package.php.stub": "<?php // {{description}}\n",
		"README.md":               "# {{Package}}\n<!--DELETE-->\nTemplate notes.\n<!--/DELETE-->\n\nBy {{author:title}}\n",
		"package.json":            `{"name": "{{vendor}}"}`,
		".git/HEAD":               "{{vendor}}",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	}
	return fsys
}

func execute(t *testing.T, opts Options, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmdWithOptions(opts)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func read(t *testing.T, fsys filesystem.FS, name string) string {
	t.Helper()
	data, err := fsys.ReadFile(filepath.Join(root, name))
	require.NoError(t, err)
	return string(data)
}

func TestInitNonInteractive(t *testing.T) {
	setupEnv(t)
	fsys := templateFS(t)

	out, err := execute(t, Options{FS: fsys},
		"init", "Acme", "Widgets", "jane doe", "jane@acme.test", "Widgets for all",
		"--path", root, "--no-interaction",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Vendor:        acme")
	assert.Equal(t, `{"name": "acme/widgets", "author": "Jane Doe <jane@acme.test>"}`, read(t, fsys, "composer.json"))
	assert.Equal(t, "namespace Acme\\Widgets;\n", read(t, fsys, "src/AcmeClass.php"))
	assert.Equal(t, "<?php // Widgets for all\n", read(t, fsys, "config/widgets.php"))
	assert.Equal(t, "# Widgets\nBy Jane Doe\n", read(t, fsys, "README.md"))

	// excluded by default
	assert.Equal(t, `{"name": "{{vendor}}"}`, read(t, fsys, "package.json"))
	assert.Equal(t, "{{vendor}}", read(t, fsys, ".git/HEAD"))
}

func TestInitExcludeFlag(t *testing.T) {
	setupEnv(t)
	fsys := templateFS(t)

	_, err := execute(t, Options{FS: fsys},
		"init", "acme", "widgets", "--path", root, "-n", "--exclude", "src/**", "--exclude", "README.md",
	)
	require.NoError(t, err)

	assert.Equal(t, "namespace {{Namespace}};\n", read(t, fsys, "src/VendorClass.php"))
	assert.Contains(t, read(t, fsys, "README.md"), "<!--DELETE-->")
	assert.Contains(t, read(t, fsys, "composer.json"), "acme/widgets")
}

func TestInitAbsentFieldsStayPlaceholders(t *testing.T) {
	setupEnv(t)
	fsys := templateFS(t)

	_, err := execute(t, Options{FS: fsys}, "init", "acme", "widgets", "--path", root, "-n")
	require.NoError(t, err)

	assert.Equal(t, `{"name": "acme/widgets", "author": "{{author:title}} <{{author-email:email}}>"}`, read(t, fsys, "composer.json"))
}

func TestInitNonInteractiveRequiresVendorAndPackage(t *testing.T) {
	setupEnv(t)
	fsys := templateFS(t)

	_, err := execute(t, Options{FS: fsys}, "init", "acme", "--path", root, "-n")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, read(t, fsys, "composer.json"), "{{vendor}}")
}

func TestInitDryRun(t *testing.T) {
	setupEnv(t)
	fsys := templateFS(t)

	out, err := execute(t, Options{FS: fsys}, "init", "acme", "widgets", "--path", root, "-n", "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, MsgDryRunNotice)
	assert.Contains(t, out, "src/VendorClass.php")
	assert.Contains(t, out, "src/AcmeClass.php")
	assert.Contains(t, read(t, fsys, "composer.json"), "{{vendor}}")
	assert.False(t, filesystem.Exists(fsys, filepath.Join(root, "src/AcmeClass.php")))
}

func TestInitPromptsForMissingFields(t *testing.T) {
	setupEnv(t)
	fsys := templateFS(t)
	p := &scriptedPrompter{
		inputs:   []string{"widgets", "Jane Doe", "jane@acme.test", "Widgets"},
		confirms: []bool{true, false},
	}

	_, err := execute(t, Options{FS: fsys, Prompter: p}, "init", "acme", "--path", root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		MsgPromptPackage,
		MsgPromptAuthor,
		MsgPromptAuthorEmail,
		MsgPromptDescription,
		MsgConfirmConfig,
		MsgConfirmDeleteCLI,
	}, p.asked)
	assert.Contains(t, read(t, fsys, "composer.json"), "acme/widgets")
}

func binaryAt(t *testing.T, fsys filesystem.FS, path string) func() (string, error) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte("binary"), 0755))
	return func() (string, error) { return path, nil }
}

func TestInitDeleteCLIFlag(t *testing.T) {
	setupEnv(t)
	fsys := templateFS(t)
	locate := binaryAt(t, fsys, "/opt/bin/scaffy")

	out, err := execute(t, Options{FS: fsys, Executable: locate},
		"init", "acme", "widgets", "--path", root, "--no-interaction", "--delete-cli",
	)
	require.NoError(t, err)

	assert.Contains(t, out, fmt.Sprintf(MsgCLIDeleted, "/opt/bin/scaffy"))
	assert.False(t, filesystem.Exists(fsys, "/opt/bin/scaffy"))
}

func TestInitDeleteCLIConfirmed(t *testing.T) {
	setupEnv(t)
	fsys := templateFS(t)
	locate := binaryAt(t, fsys, "/opt/bin/scaffy")
	p := &scriptedPrompter{confirms: []bool{true, true}}

	out, err := execute(t, Options{FS: fsys, Prompter: p, Executable: locate},
		"init", "acme", "widgets", "Jane Doe", "jane@acme.test", "Widgets", "--path", root,
	)
	require.NoError(t, err)

	assert.Equal(t, []string{MsgConfirmConfig, MsgConfirmDeleteCLI}, p.asked)
	assert.Contains(t, out, fmt.Sprintf(MsgCLIDeleted, "/opt/bin/scaffy"))
	assert.False(t, filesystem.Exists(fsys, "/opt/bin/scaffy"))
}

func TestInitDeleteCLIDryRunKeepsBinary(t *testing.T) {
	setupEnv(t)
	fsys := templateFS(t)
	locate := binaryAt(t, fsys, "/opt/bin/scaffy")

	_, err := execute(t, Options{FS: fsys, Executable: locate},
		"init", "acme", "widgets", "--path", root, "--no-interaction", "--delete-cli", "--dry-run",
	)
	require.NoError(t, err)
	assert.True(t, filesystem.Exists(fsys, "/opt/bin/scaffy"))
}

func TestInitRejectedConfigurationAsksAgain(t *testing.T) {
	setupEnv(t)
	fsys := templateFS(t)
	p := &scriptedPrompter{
		inputs:   []string{"other", "gadgets", "", "", ""},
		confirms: []bool{false, true, false},
	}

	_, err := execute(t, Options{FS: fsys, Prompter: p},
		"init", "acme", "widgets", "Jane", "jane@acme.test", "Widgets", "--path", root, "--dont-delete-cli",
	)
	require.NoError(t, err)

	assert.Equal(t, MsgConfirmConfig, p.asked[0])
	assert.Equal(t, MsgPromptVendor, p.asked[1])
	assert.Contains(t, read(t, fsys, "composer.json"), "other/gadgets")
}

func TestInitValuesFile(t *testing.T) {
	setupEnv(t)
	fsys := templateFS(t)
	require.NoError(t, fsys.WriteFile("/values.yaml", []byte("vendor: ignored\npackage: widgets\nauthor: jane doe\n"), 0644))

	_, err := execute(t, Options{FS: fsys}, "init", "acme", "--values", "/values.yaml", "--path", root, "-n")
	require.NoError(t, err)

	assert.Equal(t, `{"name": "acme/widgets", "author": "Jane Doe <{{author-email:email}}>"}`, read(t, fsys, "composer.json"))
}

func TestInitRenameConflict(t *testing.T) {
	setupEnv(t)
	fsys := templateFS(t)
	require.NoError(t, fsys.WriteFile(filepath.Join(root, "src/AcmeClass.php"), []byte("taken"), 0644))

	_, err := execute(t, Options{FS: fsys}, "init", "acme", "widgets", "--path", root, "-n", "--continue-on-error")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.Equal(t, "taken", read(t, fsys, "src/AcmeClass.php"))
	assert.Contains(t, read(t, fsys, "composer.json"), "acme/widgets")
}

func TestStubCommand(t *testing.T) {
	setupEnv(t)
	fsys := filesystem.NewMemory()

	out, err := execute(t, Options{FS: fsys}, "stub", "text/slug-formatter", "--output", "/project/app")
	require.NoError(t, err)
	assert.Contains(t, out, "/project/app/Text/SlugFormatter.php")

	data, err := fsys.ReadFile("/project/app/Text/SlugFormatter.php")
	require.NoError(t, err)
	assert.Contains(t, string(data), `namespace App\Text;`)
	assert.Contains(t, string(data), "class SlugFormatter")

	_, err = execute(t, Options{FS: fsys}, "stub", "text/slug-formatter", "--output", "/project/app")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	_, err = execute(t, Options{FS: fsys}, "stub", "Class", "--output", "/project/app")
	assert.True(t, errors.IsErrorCode(err, errors.ErrReservedName))
}

func TestStubCommandTemplate(t *testing.T) {
	setupEnv(t)
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.WriteFile("/tpl.stub", []byte("package {{RootNamespace}}\n\ntype {{Class}} struct{}\n"), 0644))

	out, err := execute(t, Options{FS: fsys},
		"stub", "widget", "--template", "/tpl.stub", "--root-namespace", "models", "--extension", "go", "--output", "/out", "--dry-run",
	)
	require.NoError(t, err)
	assert.Equal(t, "/out/Widget.go\npackage Models\n\ntype Widget struct{}\n", out)
	assert.False(t, filesystem.Exists(fsys, "/out/Widget.go"))
}

func TestTokensCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, Options{FS: filesystem.NewMemory()}, "tokens", "acme", "widgets", "--path", root)
	require.NoError(t, err)

	assert.Contains(t, out, "## Content")
	assert.Contains(t, out, "## File names")
	assert.Contains(t, out, "| vendor | upper | `{{VENDOR}}` | `ACME` |")
	assert.Contains(t, out, "| Namespace | - | `{{Namespace}}` | `Acme\\Widgets` |")
	assert.Contains(t, out, "| author | title | `{{author:title}}` | _unset_ |")
	assert.Contains(t, out, "| package | studly | `Package` | `Widgets` |")
}

func TestStripCommand(t *testing.T) {
	setupEnv(t)
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.WriteFile("/a.md", []byte("keep\n<!--DELETE-->drop<!--/DELETE-->\nend\n"), 0644))
	require.NoError(t, fsys.WriteFile("/b.md", []byte("<!--NOTE-->x<!--/NOTE-->y"), 0644))

	out, err := execute(t, Options{FS: fsys}, "strip", "/a.md", "/b.md")
	require.NoError(t, err)
	assert.Contains(t, out, "Stripped /a.md")
	assert.Contains(t, out, "No tagged blocks in /b.md")

	data, err := fsys.ReadFile("/a.md")
	require.NoError(t, err)
	assert.Equal(t, "keepend\n", string(data))

	_, err = execute(t, Options{FS: fsys}, "strip", "/b.md", "--tag", "NOTE")
	require.NoError(t, err)
	data, err = fsys.ReadFile("/b.md")
	require.NoError(t, err)
	assert.Equal(t, "y", string(data))

	_, err = execute(t, Options{FS: fsys}, "strip", "/missing.md")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestVersionCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, Options{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "scaffy version")
}

func TestCompletionCommand(t *testing.T) {
	setupEnv(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, err := execute(t, Options{}, "completion", shell)
		require.NoError(t, err, shell)
		assert.Contains(t, out, "scaffy", shell)
	}

	_, err := execute(t, Options{}, "completion", "tcsh")
	assert.Error(t, err)
}

func TestRootWithoutCommand(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestManPage(t *testing.T) {
	var buf bytes.Buffer
	err := doc.GenMan(NewRootCmd(), &doc.GenManHeader{Title: "SCAFFY", Section: "1"}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "SCAFFY")
	assert.Contains(t, buf.String(), "scaffy")
}
