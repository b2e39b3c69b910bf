package main

import (
	"github.com/spf13/cobra"

	"modelmap/internal/analyze"
	"modelmap/internal/report"
)

func newNamespacesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "namespaces [packages...]",
		Short: "Print the element and attribute namespace usage of each package",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := analyze.NewAnalyzer(root.observer()).LoadPackages(args...)
			if err != nil {
				return err
			}

			return report.Write(cmd.OutOrStdout(), report.Namespaces(graph))
		},
	}
}
