package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gx/internal/output"
	"github.com/raphi011/gx/internal/ui/static"
)

func newMoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "more",
		Args:        maxArgs(0),
		Annotations: map[string]string{annotationNoGit: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			out.Styled(renderOperations())
			return nil
		},
	}
}

// renderOperations renders every registered operation as a table.
func renderOperations() string {
	rows := make([][]string, 0, len(operations))
	for _, info := range operations {
		rows = append(rows, []string{info.name, info.short})
	}
	return static.RenderTable([]string{"OPERATION", "DESCRIPTION"}, rows)
}
