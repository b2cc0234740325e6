// Command exprparse drives the tokenizer/parser pipeline, memoized through
// internal/templatecache, over one or more template files (or stdin, given
// "-") and reports the resulting AST or parse error per file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"

	"github.com/workerbridge/exprlang/internal/templatecache"
)

func main() {
	printAST := flag.Bool("print", false, "print the parsed tree for each template")
	cachePath := flag.String("cache", ":memory:", "path to the SQLite template cache (\":memory:\" for a process-local cache)")
	flag.Parse()

	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd())

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	cache, err := templatecache.Open(*cachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "exprparse: %s\n", err)
		os.Exit(1)
	}
	defer cache.Close()

	ctx := context.Background()

	var failures *multierror.Error
	for _, path := range paths {
		source, err := readSource(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "exprparse: %s: %s\n", path, err)
			failures = multierror.Append(failures, err)
			continue
		}

		result, err := cache.Lookup(ctx, source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "exprparse: %s: cache: %s\n", path, err)
			failures = multierror.Append(failures, err)
			continue
		}

		if result.ParseErr != "" {
			color.New(color.FgRed).Fprintf(os.Stderr, "FAIL")
			fmt.Fprintf(os.Stderr, " %s [%s]: %s\n", path, result.CorrelationID, result.ParseErr)
			failures = multierror.Append(failures, fmt.Errorf("%s: %s", path, result.ParseErr))
			continue
		}

		color.New(color.FgGreen).Fprintf(os.Stdout, "OK")
		tag := ""
		if result.Hit {
			tag = " (cached)"
		}
		fmt.Fprintf(os.Stdout, " %s [%s]%s\n", path, result.CorrelationID, tag)
		if *printAST {
			fmt.Fprintln(os.Stdout, result.TreeDump)
		}
	}

	if failures != nil {
		fmt.Fprintf(os.Stderr, "\n%d of %d template(s) failed to parse:\n%s\n",
			failures.Len(), len(paths), failures)
		os.Exit(1)
	}
}

func readSource(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return string(b), nil
}
