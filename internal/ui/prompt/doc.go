// Package prompt provides the interactive confirmation used before gx
// overwrites existing git aliases.
//
// Prompts render on stderr so stdout stays clean for piping.
package prompt
