package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"modelmap/internal/analyze"
	"modelmap/internal/config"
	"modelmap/internal/diagnostic"
	"modelmap/internal/mapping"
	"modelmap/internal/model"
	"modelmap/internal/plan"
	"modelmap/internal/report"
)

type resolveOptions struct {
	*rootOptions

	configs []string
	output  string
	dump    bool
	watch   bool
}

func newResolveCmd(root *rootOptions) *cobra.Command {
	opts := &resolveOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "resolve [packages...]",
		Short: "Build the configured mapping units and print a report",
		Long: `Loads the given Go packages, applies every mapping of the configuration
files and prints the resulting units as YAML.

Without --config every loaded package gets a default whole-package mapping.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := analyze.NewAnalyzer(opts.observer()).LoadPackages(args...)
			if err != nil {
				return err
			}

			if opts.watch {
				if len(opts.configs) == 0 {
					return fmt.Errorf("--watch requires --config")
				}

				return watch(cmd.Context(), opts, graph, cmd.OutOrStdout())
			}

			return opts.run(graph, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringArrayVarP(&opts.configs, "config", "c", nil, "Mapping config file or glob (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Dump the built units instead of the YAML report")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Rebuild whenever a config file changes")

	return cmd
}

// load reads the configuration. Without config files every package is
// mapped with defaults.
func (o *resolveOptions) load() (*config.ModulesFile, error) {
	if len(o.configs) == 0 {
		return &config.ModulesFile{Version: "1", MapUnconfiguredPackages: true}, nil
	}

	mf, paths, err := config.LoadFiles(o.configs...)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("Loaded mapping config", "files", paths, "mappings", len(mf.Mappings))

	return mf, nil
}

// run performs one build and writes its result.
func (o *resolveOptions) run(graph model.Provider, stdout io.Writer) error {
	mf, err := o.load()
	if err != nil {
		return err
	}

	obs := o.observer()

	diags := config.Validate(mf, graph)
	for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings} {
		for _, d := range group {
			obs.Observe(d)
		}
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid mapping config: %w", err)
	}

	res, err := plan.NewBuilder(graph, obs).Build(mf)
	if err != nil {
		return err
	}

	return o.write(stdout, func(w io.Writer) error {
		if o.dump {
			dump(w, res.Units)
			return nil
		}

		return report.Write(w, report.Build(res.Units))
	})
}

func (o *resolveOptions) write(stdout io.Writer, fn func(io.Writer) error) error {
	if o.output == "" {
		return fn(stdout)
	}

	return writeFile(o.output, fn)
}

// unitDump is the shape of a unit printed by --dump.
type unitDump struct {
	ID                 string
	Name               string
	Package            string
	ElementNamespace   mapping.NamespaceDefault
	AttributeNamespace mapping.NamespaceDefault
	Members            []model.NodeID
	Excluded           []model.NodeID
	Dependencies       []model.NodeID
}

func dump(w io.Writer, units []*mapping.Unit) {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}

	for _, u := range units {
		cfg.Fdump(w, unitDump{
			ID:                 u.ID,
			Name:               u.Name,
			Package:            u.Package,
			ElementNamespace:   u.ElementNamespace,
			AttributeNamespace: u.AttributeNamespace,
			Members:            nodeIDs(u.Members()),
			Excluded:           nodeIDs(u.Excluded()),
			Dependencies:       nodeIDs(u.Dependencies()),
		})
	}
}

func nodeIDs(nodes []*model.Node) []model.NodeID {
	out := make([]model.NodeID, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}

	return out
}
