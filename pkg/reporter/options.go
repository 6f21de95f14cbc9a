package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/mdstyle/pkg/config"
)

// bufWriterSize is the buffer size for report writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures a Reporter.
type Options struct {
	// Writer receives the report. Defaults to os.Stdout.
	Writer io.Writer

	// Format selects the renderer.
	Format Format

	// Color is "auto", "always" or "never".
	Color string

	// ShowContext echoes the offending source line under each violation.
	ShowContext bool

	// ShowSummary appends the run summary line to text output.
	ShowSummary bool

	// Compact disables JSON indentation.
	Compact bool

	// RuleFormat controls how rules are labelled.
	RuleFormat config.RuleFormat

	// WorkingDir makes reported paths relative when set.
	WorkingDir string
}

// DefaultOptions returns the options used by the check command.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
		RuleFormat:  config.RuleFormatName,
	}
}
