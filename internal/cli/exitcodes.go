package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/mdstyle/internal/configloader"
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// Exit codes for mdstyle.
const (
	// ExitSuccess indicates no violations at failing severity.
	ExitSuccess = 0

	// ExitViolations indicates error-severity violations were found.
	ExitViolations = 1

	// ExitStrictWarnings indicates warnings were found under --strict.
	ExitStrictWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 65

	// ExitInternalError indicates a rule failed or another internal error.
	ExitInternalError = 70

	// ExitIOError indicates files could not be read.
	ExitIOError = 74
)

// ErrViolationsFound signals a failing exit code after a normal report.
// It is not logged.
var ErrViolationsFound = errors.New("violations found")

// ErrRuleFailures signals that at least one rule failed on some file.
var ErrRuleFailures = errors.New("rule evaluation failed")

// ErrUnreadableFiles signals that at least one file could not be read.
var ErrUnreadableFiles = errors.New("some files could not be read")

// ExitError carries an explicit exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromResult maps a completed run to an exit code.
// Unreadable files outrank rule failures, which outrank violations.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	switch {
	case result.HasFileErrors():
		return ExitIOError
	case result.HasRuleErrors():
		return ExitInternalError
	case result.Stats.ViolationsBySeverity[config.SeverityError] > 0:
		return ExitViolations
	case strict && result.Stats.ViolationsBySeverity[config.SeverityWarning] > 0:
		return ExitStrictWarnings
	default:
		return ExitSuccess
	}
}

// resultError converts a run outcome into the error returned by the
// check command, or nil for a clean run.
func resultError(result *runner.Result, strict bool) error {
	code := ExitCodeFromResult(result, strict)
	switch code {
	case ExitSuccess:
		return nil
	case ExitIOError:
		return &ExitError{Code: code, Err: ErrUnreadableFiles}
	case ExitInternalError:
		return &ExitError{Code: code, Err: ErrRuleFailures}
	default:
		return &ExitError{Code: code, Err: ErrViolationsFound}
	}
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
