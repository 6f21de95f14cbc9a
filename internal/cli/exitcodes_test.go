package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdstyle/internal/configloader"
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

func TestExitCodeFromResult(t *testing.T) {
	withSeverity := func(counts map[config.Severity]int) *runner.Result {
		return &runner.Result{Stats: runner.Stats{ViolationsBySeverity: counts}}
	}

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{"nil result", nil, false, ExitSuccess},
		{"clean", withSeverity(nil), true, ExitSuccess},
		{"warnings", withSeverity(map[config.Severity]int{config.SeverityWarning: 2}), false, ExitSuccess},
		{"warnings strict", withSeverity(map[config.Severity]int{config.SeverityWarning: 2}), true, ExitStrictWarnings},
		{"info strict", withSeverity(map[config.Severity]int{config.SeverityInfo: 1}), true, ExitSuccess},
		{"errors", withSeverity(map[config.Severity]int{config.SeverityError: 1}), false, ExitViolations},
		{
			"rule failure",
			&runner.Result{
				Stats: runner.Stats{RuleErrors: 1, ViolationsBySeverity: map[config.Severity]int{config.SeverityError: 1}},
			},
			false, ExitInternalError,
		},
		{
			"file error",
			&runner.Result{Stats: runner.Stats{FilesErrored: 1, RuleErrors: 1}},
			false, ExitIOError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromResult(tt.result, tt.strict))
		})
	}
}

func TestResultError(t *testing.T) {
	assert.NoError(t, resultError(&runner.Result{}, true))

	err := resultError(&runner.Result{
		Stats: runner.Stats{ViolationsBySeverity: map[config.Severity]int{config.SeverityWarning: 1}},
	}, true)
	assert.ErrorIs(t, err, ErrViolationsFound)
	assert.Equal(t, ExitStrictWarnings, ExitCode(err))

	err = resultError(&runner.Result{Stats: runner.Stats{RuleErrors: 2}}, false)
	assert.ErrorIs(t, err, ErrRuleFailures)
	assert.Equal(t, ExitInternalError, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"explicit", &ExitError{Code: 42, Err: errors.New("x")}, 42},
		{"wrapped explicit", fmt.Errorf("outer: %w", &ExitError{Code: ExitInvalidUsage, Err: errors.New("x")}), ExitInvalidUsage},
		{"config", fmt.Errorf("load: %w", configloader.ErrInvalidConfig), ExitConfigError},
		{"not found", fmt.Errorf("stat: %w", fs.ErrNotExist), ExitIOError},
		{"permission", fs.ErrPermission, ExitIOError},
		{"other", errors.New("boom"), ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestSplitFlagLine(t *testing.T) {
	flagPart, desc, ok := splitFlagLine("-j, --jobs int   number of files")
	assert.True(t, ok)
	assert.Equal(t, "-j, --jobs int", flagPart)
	assert.Equal(t, "number of files", desc)

	_, _, ok = splitFlagLine("--strict")
	assert.False(t, ok)
}

func TestColorModeFromArgs(t *testing.T) {
	assert.Equal(t, "never", colorModeFromArgs([]string{"check", "--color", "never"}))
	assert.Equal(t, "always", colorModeFromArgs([]string{"--color=always", "rules"}))
	assert.Equal(t, "auto", colorModeFromArgs([]string{"check"}))
}
