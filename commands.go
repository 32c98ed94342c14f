package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/phobologic/fnscope/internal/callgraph"
	"github.com/phobologic/fnscope/internal/dataflow"
	"github.com/phobologic/fnscope/internal/discover"
	"github.com/phobologic/fnscope/internal/lang"
	"github.com/phobologic/fnscope/internal/model"
	"github.com/phobologic/fnscope/internal/parse"
	"github.com/phobologic/fnscope/internal/render"
)

func newCallgraphCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "callgraph [path]",
		Short: "Print every call, keyed by the function that makes it",
		Long: `Print one "<caller> calls <callee>" line per call expression, grouped by the
innermost enclosing function in the order calls are discovered.

path may be a file or a directory; when omitted or "-", source is read from
standard input. Directories are searched for supported files, honoring
.gitignore.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(opts.format)
			if err != nil {
				return err
			}

			path := ""
			if len(args) > 0 && args[0] != "-" {
				path = args[0]
			}

			var g *model.CallGraph
			if isDir(path) {
				g, err = callgraphDir(cmd, opts, path)
			} else {
				g, err = callgraphFile(cmd, opts, path)
			}
			if err != nil {
				return err
			}

			return render.CallGraph(cmd.OutOrStdout(), format, path, g)
		},
	}
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func callgraphFile(cmd *cobra.Command, opts *options, path string) (*model.CallGraph, error) {
	in, err := readInput(opts, path)
	if err != nil {
		return nil, err
	}
	tree, err := parse.Source(cmd.Context(), in.lang, in.source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errProcess, err)
	}
	defer tree.Close()
	return callgraph.FromTree(cmd.Context(), tree), nil
}

// callgraphDir analyzes every supported file under root concurrently and
// merges the per-file graphs in path order. Unreadable or unparsable files
// are skipped with a warning.
func callgraphDir(cmd *cobra.Command, opts *options, root string) (*model.CallGraph, error) {
	var langFilter []string
	if opts.lang != "" {
		if _, err := lang.Lookup(opts.lang); err != nil {
			return nil, fmt.Errorf("%s: %w", errProcess, err)
		}
		langFilter = []string{opts.lang}
	}

	files, err := discover.Files(root, langFilter)
	if err != nil {
		return nil, fmt.Errorf("%s: discovering files: %w", errProcess, err)
	}
	files = filterBySize(root, files, opts.maxFileSize)
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: no supported source files in %s", errProcess, root)
	}

	graphs := make([]*model.CallGraph, len(files))
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range files {
		i, f := i, f
		eg.Go(func() error {
			source, err := os.ReadFile(filepath.Join(root, f.Path))
			if err != nil {
				slog.Warn("skipping unreadable file", slog.String("file", f.Path), slog.Any("error", err))
				return nil
			}
			tree, err := parse.Source(ctx, lang.Languages[f.Language], source)
			if err != nil {
				slog.Warn("skipping unparsable file", slog.String("file", f.Path), slog.Any("error", err))
				return nil
			}
			defer tree.Close()
			graphs[i] = callgraph.FromTree(ctx, tree)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", errProcess, err)
	}

	merged := model.NewCallGraph()
	analyzed := 0
	for _, g := range graphs {
		if g == nil {
			continue
		}
		merged.Merge(g)
		analyzed++
	}
	if analyzed == 0 {
		return nil, fmt.Errorf("%s: no files could be analyzed", errProcess)
	}
	return merged, nil
}

func filterBySize(root string, files []discover.FileEntry, maxSize int64) []discover.FileEntry {
	var kept []discover.FileEntry
	for _, f := range files {
		fi, err := os.Stat(filepath.Join(root, f.Path))
		if err != nil {
			kept = append(kept, f) // keep if can't stat
			continue
		}
		if fi.Size() > maxSize {
			slog.Warn("skipping large file", slog.String("file", f.Path), slog.Int64("limit_bytes", maxSize))
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

func newDataflowCmd(opts *options) *cobra.Command {
	var filePath, function string

	cmd := &cobra.Command{
		Use:   "dataflow --function <name> [--filepath <path>]",
		Short: "Print the parameters a function has access to",
		Long: `Print the named, typed parameters declared by a top-level function.

Source is read from --filepath, or from standard input when it is omitted.
A function that does not exist is reported as a warning and prints an empty
parameter list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(opts.format)
			if err != nil {
				return err
			}

			in, err := readInput(opts, filePath)
			if err != nil {
				return err
			}
			tree, err := parse.Source(cmd.Context(), in.lang, in.source)
			if err != nil {
				return fmt.Errorf("%s: %w", errProcess, err)
			}
			defer tree.Close()

			params, err := dataflow.FromTree(cmd.Context(), tree, function)
			if errors.Is(err, dataflow.ErrFunctionNotFound) {
				slog.Warn("function not found in the code", slog.String("function", function))
			} else if err != nil {
				return fmt.Errorf("%s: %w", errProcess, err)
			}

			return render.Parameters(cmd.OutOrStdout(), format, function, params)
		},
	}

	cmd.Flags().StringVar(&filePath, "filepath", "", "source file to analyze (default: standard input)")
	cmd.Flags().StringVar(&function, "function", "", "name of the function to inspect")
	_ = cmd.MarkFlagRequired("function")
	return cmd
}
