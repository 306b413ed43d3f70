package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"stimpl/interpreter-go/pkg/driver"
	"stimpl/interpreter-go/pkg/interpreter"
	"stimpl/interpreter-go/pkg/runtime"
)

const cliToolVersion = "stimpl-cli 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	return runWith(args, os.Stdout, os.Stderr)
}

func runWith(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 1
	}
	switch args[0] {
	case "--help", "-h", "help":
		printUsage(stdout)
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(stdout, cliToolVersion)
		return 0
	case "run":
		return runProgram(args[1:], stdout, stderr)
	case "suite":
		return runSuite(args[1:], stdout, stderr)
	case "fetch":
		return runFetch(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		printUsage(stderr)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: stimpl <command> [arguments]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run <fixture.json> [--debug]   evaluate one fixture program")
	fmt.Fprintln(w, "  suite <dir-or-suite.yml>       replay a fixture suite")
	fmt.Fprintln(w, "  fetch <git-url> [--rev <sha>]  cache a remote suite repository")
	fmt.Fprintln(w, "  version                        print the tool version")
}

func runProgram(args []string, stdout, stderr io.Writer) int {
	var fixture string
	debug := false
	for _, arg := range args {
		switch arg {
		case "--debug":
			debug = true
		default:
			if fixture != "" {
				fmt.Fprintf(stderr, "unexpected argument %q\n", arg)
				return 1
			}
			fixture = arg
		}
	}
	if fixture == "" {
		fmt.Fprintln(stderr, "stimpl run requires a fixture file")
		return 1
	}

	program, err := interpreter.LoadProgram(fixture)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load program: %v\n", err)
		return 1
	}
	interp := &interpreter.Interpreter{Stdout: stdout}
	val, typ, _, err := interp.Run(program, debug)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", describeErrorKind(err), err)
		return 1
	}
	if !debug {
		fmt.Fprintf(stdout, "(%s, %s)\n", runtime.FormatValue(val), typ)
	}
	return 0
}

func runSuite(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "stimpl suite requires a suite directory or suite.yml")
		return 1
	}
	suite, err := driver.LoadSuite(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "failed to load suite: %v\n", err)
		return 1
	}
	results, err := driver.RunSuite(suite)
	if err != nil {
		fmt.Fprintf(stderr, "failed to run suite: %v\n", err)
		return 1
	}
	failed := 0
	for _, result := range results {
		if result.Passed {
			fmt.Fprintf(stdout, "ok   %s\n", result.Name)
			continue
		}
		failed++
		fmt.Fprintf(stdout, "FAIL %s: %s\n", result.Name, result.Detail)
	}
	fmt.Fprintf(stdout, "suite %s: %d passed, %d failed\n", suite.Name, len(results)-failed, failed)
	if failed > 0 {
		return 1
	}
	return 0
}

func runFetch(args []string, stdout, stderr io.Writer) int {
	var url, rev string
	for idx := 0; idx < len(args); idx++ {
		switch args[idx] {
		case "--rev":
			if idx+1 >= len(args) {
				fmt.Fprintln(stderr, "--rev requires a value")
				return 1
			}
			idx++
			rev = args[idx]
		default:
			if url != "" {
				fmt.Fprintf(stderr, "unexpected argument %q\n", args[idx])
				return 1
			}
			url = args[idx]
		}
	}
	if url == "" {
		fmt.Fprintln(stderr, "stimpl fetch requires a git url")
		return 1
	}
	cacheDir, err := resolveSuiteCache()
	if err != nil {
		fmt.Fprintf(stderr, "failed to resolve cache directory: %v\n", err)
		return 1
	}
	dest, err := driver.Fetch(url, driver.FetchOptions{CacheDir: cacheDir, Rev: rev})
	switch {
	case errors.Is(err, driver.ErrAlreadyCached):
		fmt.Fprintf(stdout, "already cached: %s\n", dest)
	case err != nil:
		fmt.Fprintf(stderr, "fetch failed: %v\n", err)
		return 1
	default:
		fmt.Fprintf(stdout, "fetched: %s\n", dest)
	}
	return 0
}

// resolveSuiteCache picks the suite cache root: $STIMPL_HOME/suites when
// set, otherwise ~/.stimpl/suites.
func resolveSuiteCache() (string, error) {
	if home := os.Getenv("STIMPL_HOME"); home != "" {
		return filepath.Join(home, "suites"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".stimpl", "suites"), nil
}

func describeErrorKind(err error) string {
	switch {
	case errors.Is(err, interpreter.ErrSyntax):
		return "syntax error"
	case errors.Is(err, interpreter.ErrType):
		return "type error"
	case errors.Is(err, interpreter.ErrArithmetic):
		return "arithmetic error"
	default:
		return "error"
	}
}
