// fnscope reports call graphs and function parameters of source files using
// tree-sitter.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phobologic/fnscope/internal/lang"
	"github.com/phobologic/fnscope/internal/render"
)

var version = "dev"

const defaultMaxFileSize = 1_000_000 // 1 MB

// errProcess prefixes every failure to read or analyze an input.
const errProcess = "Failed to process file."

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the flags shared by every subcommand.
type options struct {
	lang        string
	format      string
	maxFileSize int64
	logLevel    string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := newRootCmd(&options{stdin: stdin, stdout: stdout, stderr: stderr})
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "fnscope",
		Short: "Call graphs and function parameters from source code",
		Long: `fnscope parses source files with tree-sitter and answers two questions:
which functions each function calls, in discovery order (callgraph), and which
typed parameters a function declares (dataflow).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(opts.logLevel, opts.stderr)
		},
	}
	root.SetIn(opts.stdin)
	root.SetOut(opts.stdout)
	root.SetErr(opts.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.lang, "lang", "", fmt.Sprintf("source language (%s); inferred from the file extension, default rust", strings.Join(lang.Names(), ", ")))
	pf.StringVar(&opts.format, "format", string(render.Text), "output format (text, toon, dot, yaml)")
	pf.Int64Var(&opts.maxFileSize, "max-file-size", defaultMaxFileSize, "skip files larger than this many bytes (standard input is read in full)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newCallgraphCmd(opts), newDataflowCmd(opts))
	return root
}

// setupLogging installs a text slog handler on stderr at the given level.
func setupLogging(level string, stderr io.Writer) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: l})))
	return nil
}
