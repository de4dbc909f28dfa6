// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"github.com/luxfi/log"
	"github.com/spf13/cobra"

	"github.com/ingonyama-zk/sppark/bench"
)

func Generate() *cobra.Command {
	c := &cobra.Command{
		Use:   "gen",
		Short: "Times synthetic point and scalar generation for 2^npow elements",
		RunE:  generateFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func generateFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	logger := log.NewLogger("sppark")
	var result bench.GenerateResult
	err = profiled(logger, config.ProfileDir, "gen", func() error {
		result = bench.Generate(config.NPow, config.WithPoints, config.Iterations)
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info(result.String(),
		log.Uint32("npow", config.NPow),
		log.Bool("withPoints", config.WithPoints),
		log.Duration("mean", result.Timing.Mean),
	)
	return nil
}
