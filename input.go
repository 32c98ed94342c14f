package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phobologic/fnscope/internal/lang"
)

const defaultLanguage = "rust"

// input is one source text ready to parse.
type input struct {
	source []byte
	lang   *lang.Language
}

// readInput reads path, or opts.stdin when path is empty, and resolves the
// language from --lang, then the file extension, then the default.
func readInput(opts *options, path string) (*input, error) {
	l, err := resolveLanguage(opts.lang, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errProcess, err)
	}

	var source []byte
	if path == "" {
		source, err = readAll(opts.stdin)
		if err != nil {
			return nil, fmt.Errorf("%s: reading standard input: %w", errProcess, err)
		}
		return &input{source: source, lang: l}, nil
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errProcess, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s: %s is a directory", errProcess, path)
	}
	if fi.Size() > opts.maxFileSize {
		return nil, fmt.Errorf("%s: %s: size %d exceeds limit %d", errProcess, path, fi.Size(), opts.maxFileSize)
	}
	source, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errProcess, err)
	}
	return &input{source: source, lang: l}, nil
}

func resolveLanguage(flagValue, path string) (*lang.Language, error) {
	if flagValue != "" {
		return lang.Lookup(flagValue)
	}
	if path != "" {
		if name := lang.ForExtension(filepath.Ext(path)); name != "" {
			return lang.Lookup(name)
		}
	}
	return lang.Lookup(defaultLanguage)
}

// readAll reads standard input in full. --max-file-size applies to files only.
func readAll(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	return io.ReadAll(r)
}
