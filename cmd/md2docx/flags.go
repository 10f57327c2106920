package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds core property flags.
type documentFlags struct {
	title   string
	author  string
	subject string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// assetFlags holds style sheet flags.
type assetFlags struct {
	style     string // Name or path of the Word style sheet
	assetPath string // Override asset directory
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	document documentFlags
	page     pageFlags
	assets   assetFlags
	html     bool // Write an HTML preview next to the document
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	config string
	output string
	assets assetFlags
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and element counts")
}

// addDocumentFlags adds core property flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title property")
	fs.StringVar(&f.author, "author", "", "document author property")
	fs.StringVar(&f.subject, "subject", "", "document subject property")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addAssetFlags adds style sheet flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "Word style sheet name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet(cmdConvert, flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output .docx file")
	fs.BoolVar(&f.html, "html", false, "also write an HTML preview")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addPageFlags(fs, &f.page)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string, usage io.Writer) (*doctorFlags, error) {
	fs := flag.NewFlagSet(cmdDoctor, flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &doctorFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file to check")
	fs.BoolVar(&f.json, "json", false, "print results as JSON")
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printDoctorUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
