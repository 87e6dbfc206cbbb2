package main

import (
	"github.com/scottcagno/bstmap/internal/demo"
	"github.com/scottcagno/bstmap/pkg/script"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Load the demo data set and print its entries and tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := script.NewRunner(a.out, a.log.Entry("bstree"))
			defer r.Close()
			m := r.Map("demo")
			demo.Load(m)
			a.log.Infof("loaded %d entries", m.Len())
			if err := m.WriteEntries(a.out); err != nil {
				return err
			}
			return m.WriteTree(a.out)
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run a YAML script of map operations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			r := script.NewRunner(a.out, a.log.Entry("bstree"))
			defer r.Close()
			res, err := r.Run(s)
			if err != nil {
				if step := script.StepOf(err); step >= 0 {
					a.log.Errorf("step %d failed", step)
				}
				return err
			}
			for _, name := range r.Names() {
				a.log.Infof("map %s holds %d entries", name, res.Lens[name])
			}
			return nil
		},
	}
}
