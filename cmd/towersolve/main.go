// Command towersolve places towers on instance grids and scores the results.
package main

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/towercover/config"
)

func main() {
	defer klog.Flush()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		klog.ErrorS(err, "towersolve failed")
		klog.Flush()
		os.Exit(1)
	}
}

// rootOptions carries the flag-bound options and the effective options after the
// config file has been merged in.
type rootOptions struct {
	configPath string
	flags      *config.Options
	effective  *config.Options
}

func newRootCommand() *cobra.Command {
	ro := &rootOptions{flags: config.NewOptions()}

	cmd := &cobra.Command{
		Use:   "towersolve",
		Short: "Place coverage towers on a grid of cities",
		Long: `towersolve computes tower placements that cover every city of an instance
and reports the penalty of the chosen towers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := ro.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			ro.effective = opts
			return nil
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&ro.configPath, "config", "", "YAML file with towersolve options")
	ro.flags.AddFlags(fs)

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		newSolveCommand(ro),
		newCheckCommand(),
		newBatchCommand(ro),
	)

	return cmd
}

// resolve builds the effective options: defaults, then the config file, then
// every flag set explicitly on the command line.
func (ro *rootOptions) resolve(changed *pflag.FlagSet) (*config.Options, error) {
	if ro.configPath == "" {
		if err := ro.flags.Validate(); err != nil {
			return nil, fmt.Errorf("invalid options: %w", err)
		}
		return ro.flags, nil
	}

	opts := config.NewOptions()
	if err := opts.LoadFile(ro.configPath); err != nil {
		return nil, err
	}
	overrides := pflag.NewFlagSet("overrides", pflag.ContinueOnError)
	opts.AddFlags(overrides)

	var err error
	changed.Visit(func(f *pflag.Flag) {
		if overrides.Lookup(f.Name) != nil {
			err = multierr.Append(err, overrides.Set(f.Name, f.Value.String()))
		}
	})
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	return opts, nil
}
