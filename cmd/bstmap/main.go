// Command bstmap exercises the ordered map from the command line:
// it can load the demo data set and draw it, or run a YAML script
// of map operations.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scottcagno/bstmap/pkg/conf"
	"github.com/scottcagno/bstmap/pkg/logger"
	"github.com/spf13/cobra"
)

type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	conf *conf.Config
	log  *logger.Logger
	out  io.Writer
	done func() error
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	a := &app{log: logger.NewLogger(), out: stdout}
	root := &cobra.Command{
		Use:           "bstmap",
		Short:         "Drive an unbalanced binary search tree map",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.done != nil {
				return a.done()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (text, json)")
	root.AddCommand(newDemoCmd(a), newRunCmd(a))
	return root
}

// setup loads the config, applies flag overrides and opens the output.
func (a *app) setup(cmd *cobra.Command) error {
	c, err := conf.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		c.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		c.LogFormat = a.logFormat
	}
	a.conf = c
	a.log.SetOutput(cmd.ErrOrStderr())
	if err := a.log.SetLevel(c.LogLevel); err != nil {
		return err
	}
	if err := a.log.SetFormat(c.LogFormat); err != nil {
		return err
	}
	a.log.Debugf("config:\n%s", c)
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		a.out = f
		a.done = f.Close
	}
	return nil
}
