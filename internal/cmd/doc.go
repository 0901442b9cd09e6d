// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// Captured commands ([RunContext], [OutputContext]) keep stderr and return
// it as the error message. Streamed commands ([StreamContext]) hand the
// child the caller's writers so git can print progress and diagnostics
// itself. Every failure is an [*ExitError] carrying the process exit code,
// which gx propagates as its own exit status.
//
// Each execution is reported to the context logger, so "gx -v" shows every
// git invocation with its duration.
package cmd
