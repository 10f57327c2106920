package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-md2docx/internal/config"
)

// envPrefix namespaces the environment variables read by the CLI.
const envPrefix = "MD2DOCX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2DOCX_CONFIG: config file name or path
	Input      string // MD2DOCX_INPUT: Markdown input file
	Output     string // MD2DOCX_OUTPUT: DOCX output file
	Style      string // MD2DOCX_STYLE: style sheet name or path
	PageSize   string // MD2DOCX_PAGE_SIZE: letter, a4, legal
	Author     string // MD2DOCX_AUTHOR: document author
}

// knownEnvVars lists valid MD2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2DOCX_CONFIG":    true,
	"MD2DOCX_INPUT":     true,
	"MD2DOCX_OUTPUT":    true,
	"MD2DOCX_STYLE":     true,
	"MD2DOCX_PAGE_SIZE": true,
	"MD2DOCX_AUTHOR":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("MD2DOCX_CONFIG"),
		Input:      os.Getenv("MD2DOCX_INPUT"),
		Output:     os.Getenv("MD2DOCX_OUTPUT"),
		Style:      os.Getenv("MD2DOCX_STYLE"),
		PageSize:   os.Getenv("MD2DOCX_PAGE_SIZE"),
		Author:     os.Getenv("MD2DOCX_AUTHOR"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized MD2DOCX_* variables.
// Helps catch typos like MD2DOCX_AUTOR instead of MD2DOCX_AUTHOR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment variables over config file values.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Input != "" {
		cfg.Input.Path = env.Input
	}
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}
	if env.Style != "" {
		cfg.Style = env.Style
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.Author != "" {
		cfg.Document.Author = env.Author
	}
}
