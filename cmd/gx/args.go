package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gx/internal/workflow"
)

// leadingGlobalFlags returns how many of the leading args are gx's own
// global flags. Commands with flag parsing disabled receive them as args
// when they are given before the operation name.
func leadingGlobalFlags(args []string) int {
	i := 0
	for i < len(args) {
		a := args[i]
		switch {
		case a == "-v", a == "--verbose", a == "-q", a == "--quiet":
			i++
		case a == "-C", a == "--directory":
			if i+1 >= len(args) {
				return i + 1 // let the parser report the missing value
			}
			i += 2
		case strings.HasPrefix(a, "-C"), strings.HasPrefix(a, "--directory="):
			i++
		default:
			return i
		}
	}
	return i
}

// passthroughArgs strips global flags and an optional "--" separator from
// args, leaving what gets passed on to git. help is true when the first
// remaining argument asks for help.
func passthroughArgs(args []string) (rest []string, help bool) {
	rest = args[leadingGlobalFlags(args):]
	if len(rest) > 0 && rest[0] == "--" {
		return rest[1:], false
	}
	if len(rest) > 0 && (rest[0] == "-h" || rest[0] == "--help") {
		return nil, true
	}
	return rest, false
}

// maxArgs is cobra.MaximumNArgs reporting an invalid argument error.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return fmt.Errorf("%w: %s accepts at most %d arg(s), received %d",
				workflow.ErrInvalidArgument, cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}
