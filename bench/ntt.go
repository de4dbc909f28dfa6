// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bench

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/luxfi/log"

	"github.com/ingonyama-zk/sppark/ntt"
	"github.com/ingonyama-zk/sppark/synth"
)

// NTTConfig selects the transform that is timed.
type NTTConfig struct {
	NPow       uint32
	Device     ntt.DeviceID
	Order      ntt.Order
	Iterations int
	WithPoints bool
}

// NTTResult is the outcome of an NTT benchmark.
type NTTResult struct {
	NPow     uint32
	Elements int
	Backend  string
	Generate time.Duration
	Timing   Timing
}

func (r NTTResult) String() string {
	return fmt.Sprintf("NTT 2^%d (%s elements) on %s: %s, %s",
		r.NPow,
		humanize.Comma(int64(r.Elements)),
		r.Backend,
		r.Timing,
		r.Timing.Rate(r.Elements, "elem"),
	)
}

// NTT generates 2^NPow scalars and times Iterations forward transforms of the
// same buffer. Each iteration transforms the previous output.
func NTT(d *ntt.Dispatcher, logger log.Logger, config NTTConfig) (NTTResult, error) {
	if config.Iterations <= 0 {
		config.Iterations = 1
	}

	n := 1 << config.NPow
	start := time.Now()
	_, scalars := synth.GeneratePointsScalarsCond(n, config.WithPoints)
	result := NTTResult{
		NPow:     config.NPow,
		Elements: n,
		Backend:  d.Engine().Backend(),
		Generate: time.Since(start),
	}
	logger.Debug("generated NTT input",
		log.Int("elements", n),
		log.Duration("duration", result.Generate),
	)

	samples := make([]time.Duration, 0, config.Iterations)
	for i := 0; i < config.Iterations; i++ {
		start := time.Now()
		if err := d.NTT(config.Device, scalars, config.Order); err != nil {
			return result, fmt.Errorf("iteration %d: %w", i, err)
		}
		elapsed := time.Since(start)
		samples = append(samples, elapsed)
		logger.Debug("NTT iteration done",
			log.Int("iteration", i),
			log.Duration("duration", elapsed),
		)
	}
	result.Timing = newTiming(samples)
	return result, nil
}
