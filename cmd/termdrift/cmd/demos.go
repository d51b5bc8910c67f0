package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-drift/termdrift/cmd/termdrift/internal/demos"
)

func newDemosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demos",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := lipgloss.NewRenderer(cmd.OutOrStdout())
			name := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5fafff")).Width(10)
			desc := r.NewStyle().Foreground(lipgloss.Color("#808080"))
			for _, n := range demos.Names() {
				d, _ := demos.Lookup(n)
				fmt.Fprintln(cmd.OutOrStdout(), name.Render(d.Name)+desc.Render(d.Description))
			}
			return nil
		},
	}
}
