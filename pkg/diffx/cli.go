// cli.go - command construction for the cmd/diffx binary (SPEC_FULL.md §2
// point 8, §6's CLI surface).
//
// Flag/config binding follows nebari-dev-nebi and github-github-mcp-server's
// cobra+viper pattern: each subcommand's flags are bound into a viper
// instance so DIFFX_* environment variables (flag name upper-cased, "-"
// replaced by "_", e.g. DIFFX_ARRAY_ID_KEY) can supply the same settings.
// No configuration file is read. Exit codes follow the teacher's
// ExitCodeSuccess/ExitCodeDifferences/ExitCodeError convention
// (cli.go), renumbered 0/1/2 per nebari-dev-nebi's internal/diff/output.go.
package diffx

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes for the cmd/diffx binary.
const (
	ExitClean = 0 // success: no differences, or differences found without --set-exit-code
	ExitDiff  = 1 // differences found and --set-exit-code was given
	ExitError = 2 // configuration, parse, or I/O error
)

// NewRootCommand builds the cobra root command with its diff/dir/parse
// subcommands. out/errOut let tests capture output without touching
// os.Stdout/os.Stderr.
func NewRootCommand(out, errOut io.Writer, log *logrus.Logger) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("DIFFX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "diffx",
		Short:         "Semantic diff for structured data (JSON, YAML, TOML, INI, CSV, XML)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newDiffCommand(out, errOut, log, v))
	root.AddCommand(newDirCommand(out, errOut, log, v))
	root.AddCommand(newParseCommand(out, errOut, log, v))

	return root
}

// bindOptionFlags registers the Options fields common to diff and dir onto
// cmd's flag set and binds each to v so DIFFX_* environment variables are
// consulted when a flag is not explicitly set.
func bindOptionFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()
	flags.Float64("epsilon", 0, "absolute float tolerance")
	flags.String("array-id-key", "", "mapping key used to align sequence elements by identity")
	flags.String("ignore-keys-regex", "", "regex of mapping keys to prune from comparison")
	flags.String("path-filter", "", "keep only differences whose path contains this substring")
	flags.Bool("ignore-whitespace", false, "strip whitespace before comparing strings")
	flags.Bool("ignore-case", false, "case-fold before comparing strings")
	flags.Bool("show-unchanged", false, "also emit Unchanged records for equal leaves")
	flags.Bool("show-types", false, "attach variant tag names to each record")
	flags.String("output", "diffx", "output format: diffx, json, yaml, unified")
	flags.Int("context-lines", 3, "context lines for the unified formatter")
	flags.Bool("set-exit-code", false, "exit 1 when differences are found")

	for _, name := range []string{
		"epsilon", "array-id-key", "ignore-keys-regex", "path-filter",
		"ignore-whitespace", "ignore-case", "show-unchanged", "show-types",
		"output", "context-lines", "set-exit-code",
	} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
}

func optionsFromViper(v *viper.Viper) *Options {
	return &Options{
		Epsilon:          v.GetFloat64("epsilon"),
		ArrayIDKey:       v.GetString("array-id-key"),
		IgnoreKeysRegex:  v.GetString("ignore-keys-regex"),
		PathFilter:       v.GetString("path-filter"),
		IgnoreWhitespace: v.GetBool("ignore-whitespace"),
		IgnoreCase:       v.GetBool("ignore-case"),
		ShowUnchanged:    v.GetBool("show-unchanged"),
		ShowTypes:        v.GetBool("show-types"),
		OutputFormat:     v.GetString("output"),
		ContextLines:     v.GetInt("context-lines"),
	}
}

func newDiffCommand(out, errOut io.Writer, log *logrus.Logger, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old-file> <new-file>",
		Short: "Diff two structured-data files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFromViper(v)

			diffs, err := DiffFiles(args[0], args[1], opts)
			if err != nil {
				log.WithError(err).WithField("old", args[0]).WithField("new", args[1]).Error("diff failed")
				return err
			}

			rendered, err := FormatOutputWithContext(diffs, opts.OutputFormat, opts.ContextLines)
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)

			if v.GetBool("set-exit-code") && len(diffs) > 0 {
				return &exitCodeError{code: ExitDiff}
			}
			return nil
		},
	}
	bindOptionFlags(cmd, v)
	return cmd
}

func newDirCommand(out, errOut io.Writer, log *logrus.Logger, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir <old-dir> <new-dir>",
		Short: "Diff every recognised file under two directories, recursively",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFromViper(v)

			byFile, err := DiffDirs(args[0], args[1], opts)
			if err != nil {
				log.WithError(err).WithField("old_dir", args[0]).WithField("new_dir", args[1]).Error("dir diff failed")
				return err
			}

			total := 0
			for rel, diffs := range byFile {
				if len(diffs) == 0 {
					continue
				}
				total += len(diffs)
				rendered, err := FormatOutputWithContext(diffs, opts.OutputFormat, opts.ContextLines)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s:\n%s", rel, rendered)
			}

			if v.GetBool("set-exit-code") && total > 0 {
				return &exitCodeError{code: ExitDiff}
			}
			return nil
		},
	}
	bindOptionFlags(cmd, v)
	return cmd
}

func newParseCommand(out, errOut io.Writer, log *logrus.Logger, v *viper.Viper) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a single file and print its Value as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if format == "" {
				format = formatForPath(path)
			}

			content, err := readFileForParse(path)
			if err != nil {
				log.WithError(err).WithField("path", path).Error("read failed")
				return err
			}

			val, err := ParseFormat(content, format)
			if err != nil {
				log.WithError(err).WithField("path", path).Error("parse failed")
				return err
			}

			rendered, err := marshalNative(val.Native())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, rendered)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "force the parser to use (default: by extension)")
	return cmd
}

// exitCodeError carries a specific process exit code up to cmd/diffx's
// main without the core library ever calling os.Exit itself.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string { return "" }

// ExitCodeFor inspects err (as returned by a cobra command's Execute) and
// derives the process exit code, per ExitClean/ExitDiff/ExitError.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitClean
	}
	if ece, ok := err.(*exitCodeError); ok {
		return ece.code
	}
	return ExitError
}

func readFileForParse(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, newDiffError("parse", path, err)
	}
	return content, nil
}

func marshalNative(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", newDiffError("parse", "", err)
	}
	return string(out), nil
}
