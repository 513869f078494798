package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/san-kum/moons/internal/config"
	"github.com/san-kum/moons/internal/dataset"
	"github.com/san-kum/moons/internal/export"
)

type options struct {
	samples    int
	noise      float64
	seed       uint64
	preset     string
	configFile string
}

// main runs the moons CLI. With no arguments it prints a 200-sample,
// 0.20-noise dataset as CSV to stdout. Any error is reported on stderr with
// exit status 1.
func main() {
	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)

	rootCmd := newRootCmd()
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	err := rootCmd.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "moons:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "moons",
		Short:         "generate the two-class interleaving moons dataset",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			ds, err := generate(cfg)
			if err != nil {
				return err
			}
			return export.WriteCSV(cmd.OutOrStdout(), ds)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&opts.samples, "samples", config.DefaultSamples, "number of samples")
	pf.Float64Var(&opts.noise, "noise", config.DefaultNoise, "standard deviation of the gaussian noise")
	pf.Uint64Var(&opts.seed, "seed", 0, "random seed (0 = entropy)")
	pf.StringVar(&opts.preset, "preset", "", "use preset configuration")
	pf.StringVar(&opts.configFile, "config", "", "config file path (yaml)")

	rootCmd.AddCommand(newStatsCmd(opts), newPresetsCmd(), newConfigCmd())
	return rootCmd
}

// resolveConfig merges defaults, preset, config file and flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.preset != "" {
		p := config.GetPreset(opts.preset)
		if p == nil {
			return nil, errors.Errorf("unknown preset: %s (available: %v)", opts.preset, config.ListPresets())
		}
		cfg = p
	}

	if opts.configFile != "" {
		fileCfg, err := config.Load(opts.configFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("samples") {
		cfg.Samples = opts.samples
	}
	if flags.Changed("noise") {
		cfg.Noise = opts.noise
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}

	klog.V(1).Infof("parameters: samples=%d noise=%g seed=%d", cfg.Samples, cfg.Noise, cfg.Seed)
	return cfg, nil
}

func generate(cfg *config.Config) (*dataset.Dataset, error) {
	ds, err := cfg.Generator().Moons(cfg.Samples, cfg.Noise)
	if err != nil {
		return nil, errors.Wrap(err, "generate")
	}
	return ds, nil
}
