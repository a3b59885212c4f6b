package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"git.home.luguber.info/inful/prefgen/internal/prefdoc"
)

// CheckCmd implements the 'check' command: parse-only validation of a
// settings document. Unknown directives and other oddities the generator
// silently ignores are surfaced here as warnings.
type CheckCmd struct {
	Input  string `arg:"" help:"Input settings document"`
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet  bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
}

type checkReport struct {
	Input    string            `json:"input"`
	Valid    bool              `json:"valid"`
	Error    string            `json:"error,omitempty"`
	Items    int               `json:"items"`
	Strings  int               `json:"strings"`
	Warnings []prefdoc.Warning `json:"warnings,omitempty"`
}

// Run executes the check command. Exit codes: 0 clean, 1 warnings present
// (unless --quiet), 3 structural error.
func (c *CheckCmd) Run(_ *Global, _ *CLI) error {
	report := checkReport{Input: c.Input, Valid: true}

	doc, err := prefdoc.ParseFile(c.Input)
	if err != nil {
		report.Valid = false
		report.Error = err.Error()
	} else {
		report.Items = len(doc.Linear)
		report.Strings = len(doc.Strings)
		report.Warnings = doc.Warnings
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
	default:
		printTextReport(report, c.Quiet)
	}

	if !report.Valid {
		os.Exit(3)
	}
	if len(report.Warnings) > 0 && !c.Quiet {
		os.Exit(1)
	}
	return nil
}

func printTextReport(report checkReport, quiet bool) {
	if !report.Valid {
		fmt.Fprintf(os.Stdout, "%s: %s\n", report.Input, report.Error)
		return
	}
	if !quiet {
		for _, w := range report.Warnings {
			fmt.Fprintf(os.Stdout, "%s:%d: warning: %s: %q\n", report.Input, w.Line, w.Message, w.Text)
		}
	}
	fmt.Fprintf(os.Stdout, "%s: OK (%d items, %d strings, %d warnings)\n",
		report.Input, report.Items, report.Strings, len(report.Warnings))
}
