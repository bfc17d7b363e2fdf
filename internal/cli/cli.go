package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vk/classpack/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	// .env values act as flag defaults, never as overrides.
	if err := godotenv.Load(); err == nil {
		slog.Debug("Environment defaults loaded from .env file.")
	}

	flagSet := flag.NewFlagSet("classpack", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
classpack - a dependency-resolving bundler for class-registration UI apps.

Usage:
  classpack [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	appFlag := flagSet.String("app", envDefault("CLASSPACK_APP", "app.json"), "Path to the application descriptor.")
	workspaceFlag := flagSet.String("workspace", envDefault("CLASSPACK_WORKSPACE", ""), "Path to the workspace descriptor.")
	outFlag := flagSet.String("out", envDefault("CLASSPACK_OUT", ""), "Build output directory. Overrides the workspace setting.")
	profileFlag := flagSet.String("profile", envDefault("CLASSPACK_PROFILE", "development"), "Build profile. Options: 'development', 'testing' or 'production'.")
	frameworkFlag := flagSet.String("framework", envDefault("CLASSPACK_FRAMEWORK", ""), "Path to the framework root. Overrides the descriptors.")
	htmlFlag := flagSet.String("html", envDefault("CLASSPACK_HTML", ""), "HTML entry file to update with link and script tags.")
	minifyJSFlag := flagSet.Bool("minify-js", false, "Minify the assembled script. Overrides the profile.")
	minifyCSSFlag := flagSet.Bool("minify-css", false, "Minify the compiled stylesheet. Overrides the profile.")
	minimalCoreFlag := flagSet.Bool("minimal-core", false, "Skip any prebuilt framework bundle and synthesize a minimal core.")
	debugFrameworkFlag := flagSet.Bool("debug-framework", false, "Verbose bootstrap diagnostics; disables script minification.")
	failOnMissingFlag := flagSet.Bool("fail-on-missing", false, "Treat unresolved dependencies as fatal. Overrides the profile.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg := app.Config{
		AppPath:        *appFlag,
		WorkspacePath:  *workspaceFlag,
		OutDir:         *outFlag,
		Profile:        strings.ToLower(*profileFlag),
		Framework:      *frameworkFlag,
		HTMLPath:       *htmlFlag,
		MinimalCore:    *minimalCoreFlag,
		DebugFramework: *debugFrameworkFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	}

	// The tri-state overrides only count when given explicitly, so the
	// profile keeps deciding for untouched flags.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "minify-js":
			cfg.MinifyJS = minifyJSFlag
		case "minify-css":
			cfg.MinifyCSS = minifyCSSFlag
		case "fail-on-missing":
			cfg.FailOnMissing = failOnMissingFlag
		}
	})

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// envDefault returns the environment value for key, or fallback when the
// variable is unset or empty.
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
