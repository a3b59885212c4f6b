package errors

import (
	"fmt"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if pe, ok := err.(*PrefgenError); ok {
		return a.exitCodeFromPrefgen(pe)
	}

	return 1
}

// exitCodeFromPrefgen maps PrefgenError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromPrefgen(err *PrefgenError) int {
	switch err.Category {
	case CategoryUsage:
		return 2 // Invalid usage
	case CategoryParse:
		return 3 // Malformed input document
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryRender, CategoryFileSystem:
		return 11 // Output error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if pe, ok := err.(*PrefgenError); ok {
		return a.formatPrefgen(pe)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatPrefgen formats a PrefgenError for display.
func (a *CLIErrorAdapter) formatPrefgen(err *PrefgenError) string {
	if a.verbose {
		return err.Error()
	}

	msg := err.Message
	if err.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", err.Line, err.Message)
	}

	switch err.Category {
	case CategoryConfig, CategoryUsage:
		return msg
	default:
		return fmt.Sprintf("%s: %s", err.Category, msg)
	}
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if pe, ok := err.(*PrefgenError); ok {
		return pe.Category == CategoryInternal || pe.Severity == SeverityFatal
	}

	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if pe, ok := err.(*PrefgenError); ok {
		level := a.slogLevelFromSeverity(pe.Severity)
		attrs := []slog.Attr{
			slog.String("category", string(pe.Category)),
		}
		if pe.Line > 0 {
			attrs = append(attrs, slog.Int("line", pe.Line))
		}

		a.logger.LogAttrs(nil, level, pe.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

// slogLevelFromSeverity converts PrefgenError severity to slog level.
func (a *CLIErrorAdapter) slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityFatal:
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
