// Package runner dispatches a command by name.
//
// A run resolves the command case-insensitively, layers the configured
// variables so that values scoped to the command ("Commands:<name>:<key>")
// win over global ones, checks that every required parameter resolved, and
// finally executes the command with its declared defaults filled in. No
// outcome is ever raised to the caller: an unknown name, a failed validation
// and a command that errors or panics all come back as a failed Result.
package runner
