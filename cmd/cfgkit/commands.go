package cfgkit

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/cfgkit/internal/version"
	"github.com/arthur-debert/cfgkit/pkg/config"
	"github.com/arthur-debert/cfgkit/pkg/errors"
	"github.com/arthur-debert/cfgkit/pkg/files"
	"github.com/arthur-debert/cfgkit/pkg/format"
	"github.com/arthur-debert/cfgkit/pkg/logging"
	"github.com/arthur-debert/cfgkit/pkg/paths"
	"github.com/arthur-debert/cfgkit/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds what the commands share once the root command has run its
// setup
type app struct {
	verbosity int
	dir       string

	config *config.Config
	files  *files.Files
}

// setup detects the anchors, loads the configuration, configures logging
// and builds the Files every command operates on
func (a *app) setup(cmd *cobra.Command, args []string) error {
	anchors, err := paths.Detect()
	if err != nil {
		return fmt.Errorf(MsgErrAnchors, err)
	}
	if a.dir != "" {
		anchors.Cwd = anchors.Abs(anchors.ExpandHome(a.dir))
	}

	cfg, err := config.Load(files.New(files.WithAnchors(anchors)), nil)
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.config = cfg

	verbosity := a.verbosity
	if cfg.Log.Verbosity > verbosity {
		verbosity = cfg.Log.Verbosity
	}
	logging.SetupLogger(verbosity, cmd.ErrOrStderr())
	logging.LogCommand(cmd.CommandPath(), args)
	if cfg.Source != "" {
		log.Debug().Str("path", cfg.Source).Msg("Using configuration file")
	}

	opts, err := cfg.FilesOptions()
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	opts = append(opts,
		files.WithAnchors(anchors),
		files.WithLogger(logging.GetLogger("files")),
	)
	a.files = files.New(opts...)
	return nil
}

// expand resolves a leading ~ in a path flag against the home anchor
func (a *app) expand(path string) string {
	return a.files.Anchors().ExpandHome(path)
}

func status(cmd *cobra.Command, message string) {
	renderer := style.NewRenderer(cmd.ErrOrStderr())
	fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderSuccess(message))
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "cfgkit",
		Short:   MsgRootShort,
		Long:    formatMarkup(MsgRootLong),
		Version: version.String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.dir, "dir", "C", "", MsgFlagDir)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "files",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newSetCmd(a))
	rootCmd.AddCommand(newCopyCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newFindUpCmd(a))
	rootCmd.AddCommand(newExistsCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	installHelpTopics(rootCmd)

	return rootCmd
}

// resolveFormat parses name, or guesses the format from path when name is
// empty
func resolveFormat(name, path string) (format.Format, error) {
	if name == "" {
		return format.FromPath(path), nil
	}
	return format.Parse(name)
}

func newGetCmd(a *app) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:     "get <path>",
		Short:   MsgGetShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "files",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(formatName, args[0])
			if err != nil {
				return err
			}

			content, err := a.files.GetContent(args[0], f)
			if err != nil {
				return err
			}

			if content.IsText() {
				_, err = fmt.Fprint(cmd.OutOrStdout(), content.Text())
				return err
			}

			out, err := format.Encode(f, content.Data())
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileParse, "Failed to serialize %s", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", MsgFlagFormat)
	return cmd
}

func newSetCmd(a *app) *cobra.Command {
	var (
		formatName     string
		modeName       string
		data           string
		replaceArrays  bool
		keepDuplicates bool
	)

	cmd := &cobra.Command{
		Use:     "set <path>",
		Short:   MsgSetShort,
		Example: MsgSetExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "files",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(formatName, args[0])
			if err != nil {
				return err
			}
			mode, err := files.ParseMode(modeName)
			if err != nil {
				return err
			}

			raw := data
			if !cmd.Flags().Changed("data") {
				stdin, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf(MsgErrReadStdin, err)
				}
				raw = string(stdin)
			}
			if strings.TrimSpace(raw) == "" {
				return fmt.Errorf(MsgErrNoData)
			}

			payload, err := parseData(f, raw)
			if err != nil {
				return err
			}

			opts := files.WriteOptions{
				Mode:                     mode,
				Format:                   f,
				ReplaceArrays:            replaceArrays,
				RemoveDuplicatesInArrays: !keepDuplicates,
			}
			if err := a.files.SetFileData(args[0], payload, opts); err != nil {
				return err
			}

			status(cmd, fmt.Sprintf(MsgWroteFile, args[0]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVarP(&modeName, "mode", "m", string(files.ModeReplace), MsgFlagMode)
	cmd.Flags().StringVarP(&data, "data", "d", "", MsgFlagData)
	cmd.Flags().BoolVar(&replaceArrays, "replace-arrays", false, MsgFlagReplaceArrays)
	cmd.Flags().BoolVar(&keepDuplicates, "keep-duplicates", false, MsgFlagKeepDuplicates)
	return cmd
}

// parseData turns command-line data into what SetFileData expects: the raw
// string for text, a mapping for structured formats. JSON and YAML input
// are both read with the YAML parser.
func parseData(f format.Format, raw string) (interface{}, error) {
	if !f.Structured() {
		return raw, nil
	}

	reader := format.YAML
	if f == format.TOML {
		reader = format.TOML
	}
	data, err := format.Decode(reader, []byte(raw))
	if err != nil {
		return nil, fmt.Errorf(MsgErrParseData, f, err)
	}
	return data, nil
}

func newCopyCmd(a *app) *cobra.Command {
	var dest, as string

	cmd := &cobra.Command{
		Use:     "copy <source>...",
		Short:   MsgCopyShort,
		Example: MsgCopyExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if as != "" && len(args) > 1 {
				return fmt.Errorf(MsgErrAsMultiple)
			}
			dest = a.expand(dest)

			specs := make([]files.CopySpec, 0, len(args))
			for _, source := range args {
				specs = append(specs, files.CopySpec{SourcePath: source, DestinationName: as})
			}

			if err := a.files.CopyFiles(specs, dest); err != nil {
				return err
			}

			target := dest
			if target == "" {
				target = a.files.Anchors().Cwd
			}
			status(cmd, fmt.Sprintf(MsgCopiedFiles, len(specs), target))
			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "dest", "", MsgFlagDest)
	cmd.Flags().StringVar(&as, "as", "", MsgFlagAs)
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		sets       []string
		valuesFile string
		out        string
	)

	cmd := &cobra.Command{
		Use:     "render <template>",
		Short:   MsgRenderShort,
		Example: MsgRenderExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "files",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := map[string]interface{}{}
			valuesFile, out = a.expand(valuesFile), a.expand(out)

			if valuesFile != "" {
				f := format.FromPath(valuesFile)
				if !f.Structured() {
					return fmt.Errorf(MsgErrValuesNotData, valuesFile)
				}
				data, err := a.files.GetData(valuesFile, f)
				if err != nil {
					return err
				}
				for k, v := range data {
					values[k] = v
				}
			}

			for _, set := range sets {
				key, value, ok := strings.Cut(set, "=")
				if !ok || strings.TrimSpace(key) == "" {
					return fmt.Errorf(MsgErrSetValue, set)
				}
				values[strings.TrimSpace(key)] = value
			}

			rendered, err := a.files.RenderFile(args[0], values)
			if err != nil {
				if _, ok := errors.AsFilesError(err); !ok {
					return errors.Wrapf(err, errors.ErrUnhandled, "Failed to render %s", args[0]).
						WithScope(errors.ScopeTemplate).
						WithDetail("engine", a.files.Engine().Name())
				}
				return err
			}

			if out == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
				return err
			}
			if err := a.files.SetFileData(out, rendered, files.ReplaceOptions(format.Text)); err != nil {
				return err
			}
			status(cmd, fmt.Sprintf(MsgRenderedFile, args[0], out))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, MsgFlagSet)
	cmd.Flags().StringVar(&valuesFile, "values", "", MsgFlagValues)
	cmd.Flags().StringVarP(&out, "out", "o", "", MsgFlagOut)
	return cmd
}

func newFindUpCmd(a *app) *cobra.Command {
	var from, stop string

	cmd := &cobra.Command{
		Use:     "find-up <name>",
		Short:   MsgFindUpShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "files",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, stop = a.expand(from), a.expand(stop)
			path, found, err := a.files.FindUpFrom(args[0], from, stop)
			if err != nil {
				return err
			}
			if !found {
				start, end := from, stop
				if start == "" {
					start = a.files.Anchors().Cwd
				}
				if end == "" {
					end = a.files.Anchors().Home
				}
				return fmt.Errorf(MsgErrNotFound, args[0], start, end)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", MsgFlagFrom)
	cmd.Flags().StringVar(&stop, "stop", "", MsgFlagStop)
	return cmd
}

func newExistsCmd(a *app) *cobra.Command {
	var isDir, isFile bool

	cmd := &cobra.Command{
		Use:     "exists <path>",
		Short:   MsgExistsShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if isDir && isFile {
				return fmt.Errorf(MsgErrDirAndFile)
			}

			var ok bool
			switch {
			case isDir:
				ok = a.files.ExistsAsDirectory(args[0])
			case isFile:
				ok = a.files.ExistsAsFile(args[0])
			default:
				ok = a.files.ExistsAsDirectory(args[0]) || a.files.ExistsAsFile(args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), ok)
			return err
		},
	}

	cmd.Flags().BoolVar(&isDir, "dir", false, MsgFlagIsDir)
	cmd.Flags().BoolVar(&isFile, "file", false, MsgFlagIsFile)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersion, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
