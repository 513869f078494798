package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/san-kum/moons/internal/config"
	"github.com/san-kum/moons/internal/dataset"
	"github.com/san-kum/moons/internal/export"
	"github.com/san-kum/moons/internal/metrics"
)

func newStatsCmd(opts *options) *cobra.Command {
	var fresh bool

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "summarise a CSV dump (file or stdin) per class",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				ds  *dataset.Dataset
				err error
			)
			switch {
			case fresh:
				if len(args) > 0 {
					return errors.New("--generate does not take a file argument")
				}
				var cfg *config.Config
				if cfg, err = resolveConfig(cmd, opts); err == nil {
					ds, err = generate(cfg)
				}
			case len(args) == 1:
				ds, err = readFile(args[0])
			default:
				ds, err = export.ReadCSV(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			renderSummary(cmd.OutOrStdout(), ds.Len(), metrics.Summarize(ds))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fresh, "generate", false, "generate a dataset instead of reading one")
	return cmd
}

func readFile(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "stats")
	}
	defer f.Close()

	ds, err := export.ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "stats: %s", path)
	}
	klog.V(1).Infof("read %d samples from %s", ds.Len(), path)
	return ds, nil
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("presets"))
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %s %s %s\n",
					nameStyle.Render(fmt.Sprintf("%-8s", name)),
					labelStyle.Render("samples=")+valueStyle.Render(fmt.Sprint(p.Samples)),
					labelStyle.Render("noise=")+valueStyle.Render(fmt.Sprint(p.Noise)))
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "moons.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

func renderSummary(w io.Writer, total int, sums []metrics.ClassSummary) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("moons dataset: %d samples", total)))
	for _, s := range sums {
		fmt.Fprintf(w, "\n%s %s\n", nameStyle.Render(s.Label.String()), labelStyle.Render(fmt.Sprintf("(label %d)", int(s.Label))))
		row(w, "count", fmt.Sprintf("%d", s.Count))
		row(w, "mean", fmt.Sprintf("(%.4f, %.4f)", s.MeanX, s.MeanY))
		row(w, "std", fmt.Sprintf("(%.4f, %.4f)", s.StdX, s.StdY))
		row(w, "residual", fmt.Sprintf("%.4f (max %.4f)", s.Residual, s.MaxResidual))
	}
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", label)), valueStyle.Render(value))
}
