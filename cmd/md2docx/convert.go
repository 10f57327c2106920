package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage        = errors.New("invalid usage")
	ErrTooManyInput = errors.New("only one input file may be given")
)

// docxExt is the extension of generated documents.
const docxExt = ".docx"

// convertJob is the resolved work for one conversion.
type convertJob struct {
	inputPath   string
	outputPath  string
	usedDefault bool // input came from the built-in default
	input       md2docx.Input
	opts        []md2docx.Option
}

// runConvertCmd parses flags, runs the conversion and reports the outcome.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, env *Environment) error {
	if len(positional) > 1 {
		return fmt.Errorf("%w: %w: got %d", ErrUsage, ErrTooManyInput, len(positional))
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	job := buildJob(positional, cfg, env)

	start := env.Now()
	conv, err := md2docx.NewConverter(job.opts...)
	if err != nil {
		return withHints(err, job)
	}

	res, err := conv.ConvertFile(ctx, job.inputPath, job.outputPath, job.input)
	if err != nil {
		return withHints(err, job)
	}

	if flags.common.quiet {
		return nil
	}

	fmt.Fprintf(env.Stdout, "✅ Word document created successfully: %s\n", job.outputPath)
	if job.input.HTML {
		fmt.Fprintf(env.Stdout, "HTML preview: %s\n", md2docx.HTMLPath(job.outputPath))
	}
	if flags.common.verbose {
		printStats(env, job, res.Stats, env.Now().Sub(start))
	}
	return nil
}

// loadConfig loads the config named by the flag, then the environment.
// Without either, the neutral default config is returned.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}

	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.subject != "" {
		cfg.Document.Subject = flags.document.subject
	}

	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin != 0 {
		cfg.Page.Margin = flags.page.margin
	}

	if flags.assets.style != "" {
		cfg.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	if flags.html {
		cfg.HTML.Enabled = true
	}
}

// buildJob resolves paths, page settings, metadata and converter options.
func buildJob(positional []string, cfg *config.Config, env *Environment) *convertJob {
	job := &convertJob{}

	switch {
	case len(positional) == 1:
		job.inputPath = positional[0]
	case cfg.Input.Path != "":
		job.inputPath = cfg.Input.Path
	default:
		job.inputPath = md2docx.DefaultInputPath
		job.usedDefault = true
	}

	job.outputPath = resolveOutputPath(job.inputPath, cfg.Output.Path, job.usedDefault)

	job.input = md2docx.Input{
		Page: buildPageSettings(cfg),
		Metadata: &md2docx.Metadata{
			Title:   cfg.Document.Title,
			Author:  cfg.Document.Author,
			Subject: cfg.Document.Subject,
		},
		HTML: cfg.HTML.Enabled,
	}

	job.opts = []md2docx.Option{md2docx.WithClock(env.Now)}
	if cfg.Style != "" {
		job.opts = append(job.opts, md2docx.WithStyle(cfg.Style))
	}
	if cfg.Assets.BasePath != "" {
		job.opts = append(job.opts, md2docx.WithAssetPath(cfg.Assets.BasePath))
	}

	return job
}

// resolveOutputPath picks the output file. An explicit output wins; the
// default input keeps the default output name; any other input gets a
// .docx sibling.
func resolveOutputPath(inputPath, output string, usedDefault bool) string {
	switch {
	case output != "":
		return output
	case usedDefault:
		return md2docx.DefaultOutputPath
	default:
		return fileutil.ReplaceExt(inputPath, docxExt)
	}
}

// buildPageSettings overlays configured values on the defaults.
func buildPageSettings(cfg *config.Config) *md2docx.PageSettings {
	ps := md2docx.DefaultPageSettings()
	if cfg.Page.Size != "" {
		ps.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		ps.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		ps.Margin = cfg.Page.Margin
	}
	return ps
}

// withHints appends actionable hints for known failures.
func withHints(err error, job *convertJob) error {
	var hint string
	switch {
	case errors.Is(err, md2docx.ErrReadMarkdown) && errors.Is(err, os.ErrNotExist):
		hint = hints.ForInputNotFound(job.inputPath, job.usedDefault)
	case errors.Is(err, md2docx.ErrWriteDocument):
		hint = hints.ForOutputDirectory()
	case errors.Is(err, md2docx.ErrStyleNotFound):
		hint = hints.ForStyleNotFound(md2docx.BuiltinStyles())
	case errors.Is(err, md2docx.ErrInvalidStyleSheet):
		hint = hints.ForInvalidStyleSheet()
	case errors.Is(err, md2docx.ErrInvalidPageSize):
		hint = hints.ForPageSize()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// printStats writes verbose conversion details.
func printStats(env *Environment, job *convertJob, s md2docx.Stats, elapsed time.Duration) {
	fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", job.inputPath, job.outputPath, elapsed.Round(time.Millisecond))
	fmt.Fprintf(env.Stdout, "  headings: %d, paragraphs: %d, list items: %d, separators: %d, tables: %d\n",
		s.Headings, s.Paragraphs, s.ListItems, s.Separators, s.Tables)
}
