package cli

import "github.com/yaklabco/gozhlint/pkg/runner"

// Exit codes for gozhlint.
const (
	// ExitSuccess indicates successful execution. Issues alone do not fail a run.
	ExitSuccess = 0

	// ExitFailure indicates unreadable input, a configuration error, or
	// issues found in strict mode.
	ExitFailure = 1
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasErrors() {
		return ExitFailure
	}

	if strict && result.HasIssues() {
		return ExitFailure
	}

	return ExitSuccess
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
