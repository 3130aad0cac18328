// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes reported to the shell.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, bad id).
	UserError = 1

	// ConfigError indicates missing or invalid API configuration.
	ConfigError = 2

	// BackendError indicates an API or network error.
	BackendError = 3
)
