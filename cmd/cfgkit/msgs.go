package cfgkit

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Read, write, merge, copy and render configuration files"
	MsgGetShort        = "Print the content of a file"
	MsgSetShort        = "Write or merge data into a file"
	MsgCopyShort       = "Copy files into a directory"
	MsgRenderShort     = "Render a template file"
	MsgFindUpShort     = "Find a file in the working directory or its parents"
	MsgExistsShort     = "Check whether a path exists"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgWroteFile    = "wrote %s"
	MsgCopiedFiles  = "copied %d file(s) to %s"
	MsgRenderedFile = "rendered %s to %s"
	MsgVersion      = "cfgkit version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrAnchors       = "failed to detect working directory: %w"
	MsgErrNotFound      = "%s not found between %s and %s"
	MsgErrNoData        = "no data: pass --data or pipe content on stdin"
	MsgErrReadStdin     = "failed to read stdin: %w"
	MsgErrAsMultiple    = "--as can only be used with a single source"
	MsgErrSetValue      = "invalid --set value %q, expected key=value"
	MsgErrDirAndFile    = "--dir and --file are mutually exclusive"
	MsgErrParseData     = "failed to parse --data as %s: %w"
	MsgErrNoCommand     = "no command specified"
	MsgErrValuesNotData = "values file %s must hold structured data"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir            = "Run as if cfgkit was started in this directory"
	MsgFlagFormat         = "File format: json, yaml, toml or text (default: from the file extension)"
	MsgFlagMode           = "Write mode: replace or merge"
	MsgFlagReplaceArrays  = "In merge mode, arrays in the new data replace existing ones"
	MsgFlagKeepDuplicates = "In merge mode, keep duplicate values in arrays"
	MsgFlagData           = "Data to write; read from stdin when omitted"
	MsgFlagDest           = "Destination directory (default: working directory)"
	MsgFlagAs             = "Destination file name, for a single source"
	MsgFlagSet            = "Template value as key=value (repeatable)"
	MsgFlagValues         = "JSON, YAML or TOML file holding template values"
	MsgFlagOut            = "Write the rendered template to this file instead of stdout"
	MsgFlagFrom           = "Directory to start searching from (default: working directory)"
	MsgFlagStop           = "Last directory searched (default: home directory)"
	MsgFlagIsDir          = "Only succeed for directories"
	MsgFlagIsFile         = "Only succeed for regular files"
)

// MsgRootLong is rendered through the style markup parser
const MsgRootLong = `[bold]cfgkit[/bold] manipulates configuration-like files for build and scaffolding
scripts: it reads and writes JSON, YAML, TOML and text, deep-merges structured
data into existing files, copies files and renders templates.

Relative paths resolve against the working directory. Tool settings are read
from the nearest [path].cfgkit.toml[/path] or [path].cfgkit.yaml[/path] and [code]CFGKIT_*[/code] variables.`

// MsgUsageTemplate is the cobra usage template
const MsgUsageTemplate = `{{bold "USAGE:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{bold "ALIASES:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{bold "EXAMPLES:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{bold "COMMANDS:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{bold "FLAGS:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{bold "GLOBAL FLAGS:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

const MsgCompletionLong = `To load completions:

Bash:
  $ source <(cfgkit completion bash)

Zsh:
  $ cfgkit completion zsh > "${fpath[1]}/_cfgkit"

Fish:
  $ cfgkit completion fish | source

PowerShell:
  PS> cfgkit completion powershell | Out-String | Invoke-Expression
`

// Examples
const (
	MsgSetExample = `  # Replace package.json with new content
  cfgkit set package.json --data '{"name": "app", "private": true}'

  # Merge keys into an existing YAML file, replacing arrays
  cfgkit set .github/workflows/ci.yaml --mode merge --replace-arrays < ci-extra.yaml

  # Append a line to .gitignore
  cfgkit set .gitignore --mode merge --data dist`

	MsgRenderExample = `  cfgkit render templates/README.md.hbs --set name=app --out README.md
  cfgkit render templates/config.hbs --values values.yaml`

	MsgCopyExample = `  cfgkit copy templates/editorconfig --dest . --as .editorconfig
  cfgkit copy templates/a.txt templates/b.txt --dest out/`
)
