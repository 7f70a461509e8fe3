package scaffy

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Initialize projects from placeholder templates"
	MsgInitShort       = "Replace placeholders and rename files in a template"
	MsgStubShort       = "Generate a class file from a stub"
	MsgTokensShort     = "List the placeholder tokens templates can use"
	MsgStripShort      = "Remove tagged blocks from files"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Prompts
	MsgPromptVendor      = "What's the Vendor name"
	MsgPromptPackage     = "What's the Package name"
	MsgPromptAuthor      = "What's the Author's name"
	MsgPromptAuthorEmail = "What's the Author's e-mail"
	MsgPromptDescription = "Describe your package"
	MsgConfirmConfig     = "Do you want to use this configuration"
	MsgConfirmDeleteCLI  = "Do you want to delete the CLI"

	// Status messages
	MsgUsingConfiguration = "USING CONFIGURATION:"
	MsgDryRunNotice       = "DRY RUN MODE - No changes were made"
	MsgReplacing          = "Replacing placeholders"
	MsgReplacingFile      = "Replacing placeholders in file [%s]"
	MsgInitDone           = "Initialized %d files: %d changed, %d renamed"
	MsgInitFailed         = "Initialization failed"
	MsgFileChanged        = "  ✓ %s\n"
	MsgFileRenamed        = "  ✓ %s -> %s\n"
	MsgFileFailed         = "  ✗ %s: %v\n"
	MsgNoFiles            = "No files to initialize."
	MsgCLIDeleted         = "Deleted %s\n"
	MsgStubCreated        = "Stub [%s] created successfully.\n"
	MsgStripped           = "Stripped %s\n"
	MsgStripUnchanged     = "No tagged blocks in %s\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrConfigAborted = "configuration rejected"
	MsgErrFilesFailed   = "%d files could not be initialized"
	MsgErrRequired      = "a value is required"

	// Flag descriptions
	MsgFlagVerbose         = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun          = "Preview changes without executing them"
	MsgFlagNoInteraction   = "Do not ask any interactive question"
	MsgFlagConfig          = "User config file (default $XDG_CONFIG_HOME/scaffy/config.toml)"
	MsgFlagPath            = "Path to the template directory (default current directory)"
	MsgFlagExclude         = "Paths to exclude, doublestar globs relative to the path (repeatable)"
	MsgFlagValues          = "TOML or YAML file with field values"
	MsgFlagJobs            = "Number of files processed at once"
	MsgFlagContinueOnError = "Keep going when a file fails"
	MsgFlagYes             = "Accept the configuration without confirming"
	MsgFlagDeleteCLI       = "Delete the scaffy binary after a successful run"
	MsgFlagDontDeleteCLI   = "Never offer to delete the scaffy binary"
	MsgFlagOutput          = "Directory the stub is written to"
	MsgFlagTemplate        = "Stub template file (default built-in class stub)"
	MsgFlagRootNamespace   = "Root namespace (default stub.root_namespace)"
	MsgFlagExtension       = "File extension (default stub.extension)"
	MsgFlagForce           = "Overwrite the target if it already exists"
	MsgFlagTag             = "Tag whose blocks are removed (repeatable, default tags.delete)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/stub-long.txt
	msgStubLongRaw string
	MsgStubLong    = strings.TrimSpace(msgStubLongRaw)

	//go:embed msgs/tokens-long.txt
	msgTokensLongRaw string
	MsgTokensLong    = strings.TrimSpace(msgTokensLongRaw)

	//go:embed msgs/strip-long.txt
	msgStripLongRaw string
	MsgStripLong    = strings.TrimSpace(msgStripLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
