package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"modelmap/internal/analyze"
	"modelmap/internal/common"
	"modelmap/internal/config"
)

func newInitCmd(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "init [packages...]",
		Short: "Write a starter mapping config with one mapping per package",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := analyze.NewAnalyzer(root.observer()).LoadPackages(args...)
			if err != nil {
				return err
			}

			mf := &config.ModulesFile{Version: "1"}
			for _, pkg := range graph.Packages() {
				mf.Mappings = append(mf.Mappings, config.MappingConfig{
					ID:      common.MappingName(pkg.Name),
					Name:    common.MappingName(pkg.Name),
					Package: pkg.Name,
				})
			}

			if output == "" {
				data, err := config.Marshal(mf)
				if err != nil {
					return err
				}

				_, err = cmd.OutOrStdout().Write(data)

				return err
			}

			if err := config.WriteFile(mf, output); err != nil {
				return err
			}

			root.logger.Info("Wrote mapping config", "path", output, "mappings", len(mf.Mappings))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the config to a file instead of stdout")

	return cmd
}

// writeFile creates path and hands it to fn.
func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := fn(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
