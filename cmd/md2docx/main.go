package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdConvert = "convert"
	cmdDoctor  = "doctor"
	cmdVersion = "version"
	cmdHelp    = "help"
)

func main() {
	configureMaxProcs(os.Args, os.Stderr)
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// Its log lines are shown only with -v/--verbose.
func configureMaxProcs(args []string, w io.Writer) {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches to a command and returns the process exit code.
// Without a command, or when the first argument is a flag or a Markdown
// file, it runs convert.
func runMain(args []string, env *Environment) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	if len(rest) == 0 || isFlag(rest[0]) || looksLikeMarkdown(rest[0]) {
		return runConvertCmd(rest, env)
	}

	switch rest[0] {
	case cmdConvert:
		return runConvertCmd(rest[1:], env)
	case cmdDoctor:
		return runDoctorCmd(rest[1:], env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "md2docx %s\n", Version)
		return ExitSuccess
	case cmdHelp, "-h", "--help":
		return runHelp(rest[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", rest[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// isFlag reports whether s looks like a flag (but not -h/--help).
func isFlag(s string) bool {
	return len(s) > 1 && s[0] == '-' && s != "-h" && s != "--help"
}

// looksLikeMarkdown reports whether path has a Markdown extension.
func looksLikeMarkdown(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}
