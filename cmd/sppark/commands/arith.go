// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"github.com/luxfi/log"
	"github.com/spf13/cobra"

	"github.com/ingonyama-zk/sppark/bench"
)

func Arith() *cobra.Command {
	c := &cobra.Command{
		Use:   "arith",
		Short: "Times BN254 scalar field add, sub and mul across worker counts",
		RunE:  arithFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func arithFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	logger := log.NewLogger("sppark")
	var results []bench.ArithResult
	err = profiled(logger, config.ProfileDir, "arith", func() error {
		results = bench.Arith(config.ArithNPow)
		return nil
	})
	if err != nil {
		return err
	}
	for _, r := range results {
		logger.Info(r.String(),
			log.Stringer("op", r.Op),
			log.Int("workers", r.Workers),
			log.Int("opsPerWorker", r.OpsPerWorker),
			log.Duration("elapsed", r.Elapsed),
		)
	}
	return nil
}
