package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/assets"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
	flag "github.com/spf13/pflag"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// Style sheet sources.
const (
	styleSourceFile      = "file"
	styleSourceAssetPath = "asset-path"
	styleSourceEmbedded  = "embedded"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Style    styleInfo  `json:"style"`
	Config   configInfo `json:"config"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// styleInfo holds style sheet check results.
type styleInfo struct {
	Name      string   `json:"name"`
	Source    string   `json:"source"` // "file", "asset-path", "embedded"
	OK        bool     `json:"ok"`
	Available []string `json:"available"`
}

// configInfo holds config resolution results.
type configInfo struct {
	Name   string `json:"name,omitempty"`
	Loaded bool   `json:"loaded"`
}

// envInfo holds runtime information.
type envInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	GoVersion string `json:"go_version"`
	Version   string `json:"version"`
}

// systemInfo holds filesystem check results.
type systemInfo struct {
	OutputDir         string `json:"output_dir"`
	OutputDirWritable bool   `json:"output_dir_writable"`
	TempWritable      bool   `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	result := runDoctor(flags)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(flags *doctorFlags) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			GoVersion: runtime.Version(),
			Version:   Version,
		},
	}

	envCfg := loadEnvConfig()
	cfg := checkConfig(result, flags.config, envCfg)
	applyEnvConfig(envCfg, cfg)
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if flags.assets.style != "" {
		cfg.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	checkStyle(result, cfg)
	checkSystem(result, cfg)
	checkEnvVars(result)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkConfig loads the config named by flag or environment.
// Falls back to the default config so later checks still run.
func checkConfig(result *doctorResult, flagName string, envCfg *envConfig) *config.Config {
	name := flagName
	if name == "" {
		name = envCfg.ConfigPath
	}
	result.Config.Name = name
	if name == "" {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Config %q: %v", name, err))
		return config.DefaultConfig()
	}
	result.Config.Loaded = true
	return cfg
}

// checkStyle builds a converter, which loads and validates the style sheet.
func checkStyle(result *doctorResult, cfg *config.Config) {
	result.Style.Name = cfg.Style
	if result.Style.Name == "" {
		result.Style.Name = md2docx.DefaultStyle
	}
	result.Style.Source, result.Style.Available = styleSource(cfg)

	var opts []md2docx.Option
	if cfg.Style != "" {
		opts = append(opts, md2docx.WithStyle(cfg.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2docx.WithAssetPath(cfg.Assets.BasePath))
	}

	if _, err := md2docx.NewConverter(opts...); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Style %q: %v", result.Style.Name, err))
		return
	}
	result.Style.OK = true
}

// styleSource reports where the style sheet is looked up first and which
// names can be passed to --style.
func styleSource(cfg *config.Config) (string, []string) {
	builtins := md2docx.BuiltinStyles()
	if fileutil.IsFilePath(cfg.Style) {
		return styleSourceFile, builtins
	}
	if cfg.Assets.BasePath == "" {
		return styleSourceEmbedded, builtins
	}
	r, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil || !r.HasCustomLoader() {
		return styleSourceEmbedded, builtins
	}
	return styleSourceAssetPath, r.Styles()
}

// checkSystem verifies the output and temp directories are writable.
func checkSystem(result *doctorResult, cfg *config.Config) {
	output := cfg.Output.Path
	if output == "" {
		output = md2docx.DefaultOutputPath
	}
	result.System.OutputDir = filepath.Dir(output)
	if err := fileutil.DirWritable(result.System.OutputDir); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory not writable: %s (%v)", result.System.OutputDir, err))
	} else {
		result.System.OutputDirWritable = true
	}

	_, cleanup, err := fileutil.WriteTempFile("doctor", "txt")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", os.TempDir()))
		return
	}
	cleanup()
	result.System.TempWritable = true
}

// checkEnvVars reports unknown MD2DOCX_* variables as warnings.
func checkEnvVars(result *doctorResult) {
	var buf strings.Builder
	warnUnknownEnvVars(&buf)
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line != "" {
			result.Warnings = append(result.Warnings, strings.TrimPrefix(line, "warning: "))
		}
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "md2docx doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Style")
	if r.Style.OK {
		fmt.Fprintf(w, "  [OK] %s (%s) loads and defines all required styles\n", r.Style.Name, r.Style.Source)
	} else {
		fmt.Fprintf(w, "  [ERROR] %s\n", r.Style.Name)
	}
	fmt.Fprintf(w, "  [OK] Available: %s\n", strings.Join(r.Style.Available, ", "))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config")
	switch {
	case r.Config.Name == "":
		fmt.Fprintln(w, "  [OK] None (using defaults)")
	case r.Config.Loaded:
		fmt.Fprintf(w, "  [OK] Loaded %s\n", r.Config.Name)
	default:
		fmt.Fprintf(w, "  [ERROR] %s\n", r.Config.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s (%s)\n", r.Env.OS, r.Env.Arch, r.Env.GoVersion)
	fmt.Fprintf(w, "  [OK] Version: %s\n", r.Env.Version)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.OutputDirWritable {
		fmt.Fprintf(w, "  [OK] Output directory: %s writable\n", r.System.OutputDir)
	} else {
		fmt.Fprintf(w, "  [ERROR] Output directory: %s not writable\n", r.System.OutputDir)
	}
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to convert")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
