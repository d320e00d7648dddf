package main

import (
	"fmt"

	"github.com/containerd/errdefs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shashank-93rao/statistics/pkg/dataset"
	"github.com/shashank-93rao/statistics/pkg/report"
	"github.com/shashank-93rao/statistics/pkg/stats/factory"
)

type options struct {
	values    []int32
	extractor string
	noPause   bool
	logLevel  string
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "evenstats [OPTIONS]",
		Short: "Print the average, maximum, minimum and even values of an integer sequence",
		Long: `Print the average, maximum, minimum and even values of an integer sequence.

Without --values the built-in 40 element sequence is used. --values takes a
comma separated list and may be repeated, so "--values -4,-3 --values 2" and
"--values -4,-3,2" are the same.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", err, errdefs.ErrInvalidArgument)
	})

	flags := cmd.Flags()
	flags.Int32SliceVar(&opts.values, "values", nil, "Comma separated integers to compute statistics over")
	flags.StringVar(&opts.extractor, "extractor", string(factory.Buffered), `Extractor implementation ("owned"|"buffered")`)
	flags.BoolVar(&opts.noPause, "no-pause", false, "Exit without waiting for a key press")
	flags.StringVar(&opts.logLevel, "log-level", logrus.WarnLevel.String(), `Log level ("debug"|"info"|"warn"|"error")`)

	return cmd
}

// noArgs validates that the command was called without positional arguments.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return fmt.Errorf("%q accepts no arguments, use --values: %w", cmd.CommandPath(), errdefs.ErrInvalidArgument)
}

func runStats(cmd *cobra.Command, opts options) error {
	lvl, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("%v: %w", err, errdefs.ErrInvalidArgument)
	}
	logrus.SetLevel(lvl)

	input := dataset.Default()
	if cmd.Flags().Changed("values") {
		input = opts.values
	}

	ext, err := factory.GetExtractor(factory.ExtractorType(opts.extractor), len(input))
	if err != nil {
		return err
	}
	res, err := ext.Extract(input)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"extractor": opts.extractor,
		"size":      len(input),
		"evens":     len(res.Evens),
	}).Info("Statistics computed")

	if err := report.Write(cmd.OutOrStdout(), input, res); err != nil {
		return err
	}
	if opts.noPause {
		return nil
	}
	return waitForKey(cmd.Context(), cmd.InOrStdin())
}
