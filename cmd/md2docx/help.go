package main

import (
	"fmt"
	"io"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert a Markdown file to Word (default)")
	fmt.Fprintln(w, "  doctor     Check styles, config and writable directories")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2docx help <command>' for details on a specific command.")
	fmt.Fprintln(w, "Run 'md2docx help config' for a sample configuration file.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file to a Word document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintf(w, "  input    Markdown file (default: %s)\n", md2docx.DefaultInputPath)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .docx file")
	fmt.Fprintf(w, "                            (default: input with .docx, or %s)\n", md2docx.DefaultOutputPath)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --html                Also write <output>.html for comparison")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Title property")
	fmt.Fprintln(w, "      --author <s>          Author property")
	fmt.Fprintln(w, "      --subject <s>         Subject property")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   Word style sheet (default, classic, or a styles.xml file)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory holding styles/<name>.xml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and element counts")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2DOCX_CONFIG, MD2DOCX_INPUT, MD2DOCX_OUTPUT, MD2DOCX_STYLE,")
	fmt.Fprintln(w, "  MD2DOCX_PAGE_SIZE, MD2DOCX_AUTHOR")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that the style sheet loads, the config resolves and the")
	fmt.Fprintln(w, "output and temp directories are writable.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -o, --output <path>       Output file whose directory is checked")
	fmt.Fprintln(w, "      --style <name|path>   Style sheet to check")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --json                Print results as JSON")
}

// printSampleConfig prints a YAML config with the defaults filled in.
func printSampleConfig(w io.Writer) error {
	cfg := config.DefaultConfig()
	cfg.Input.Path = md2docx.DefaultInputPath
	cfg.Output.Path = md2docx.DefaultOutputPath
	cfg.Style = md2docx.DefaultStyle
	cfg.Page.Size = md2docx.PageSizeLetter
	cfg.Page.Orientation = md2docx.OrientationPortrait
	cfg.Page.Margin = md2docx.DefaultMargin

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdConvert:
		printConvertUsage(env.Stdout)
	case cmdDoctor:
		printDoctorUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: md2docx version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: md2docx help [command|config]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command, or a sample config file.")
	case "config":
		if err := printSampleConfig(env.Stdout); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return ExitGeneral
		}
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
