// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ingonyama-zk/sppark/bench"
	"github.com/ingonyama-zk/sppark/ntt"
)

func NTT() *cobra.Command {
	c := &cobra.Command{
		Use:   "ntt",
		Short: "Times a forward NTT over 2^npow random scalars",
		RunE:  nttFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func nttFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}
	order, err := config.NTTOrder()
	if err != nil {
		return err
	}

	logger := log.NewLogger("sppark")
	engine, err := ntt.NewEngine(config.EngineConfig())
	if err != nil {
		return err
	}
	defer engine.Close()

	logger.Info("selected NTT backend",
		log.String("backend", engine.Backend()),
		log.String("info", ntt.BackendInfo(engine.Backend())),
		log.Int("devices", engine.NumDevices()),
	)

	d, err := ntt.NewDispatcher(engine, logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	var result bench.NTTResult
	err = profiled(logger, config.ProfileDir, "ntt", func() error {
		var err error
		result, err = bench.NTT(d, logger, bench.NTTConfig{
			NPow:       config.NPow,
			Device:     ntt.DeviceID(config.Device),
			Order:      order,
			Iterations: config.Iterations,
			WithPoints: config.WithPoints,
		})
		return err
	})
	if err != nil {
		logger.Error("NTT benchmark failed", log.Err(err))
		return err
	}

	logger.Info("generated input", log.Duration("duration", result.Generate))
	logger.Info(result.String(),
		log.Uint32("npow", config.NPow),
		log.Stringer("order", order),
		log.Duration("mean", result.Timing.Mean),
		log.Duration("stddev", result.Timing.StdDev),
	)
	return nil
}
