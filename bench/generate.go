// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bench

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ingonyama-zk/sppark/synth"
)

// GenerateResult is the outcome of a generator benchmark.
type GenerateResult struct {
	Points  int
	Scalars int
	Timing  Timing
}

func (r GenerateResult) String() string {
	return fmt.Sprintf("generated %s points and %s scalars: %s, %s",
		humanize.Comma(int64(r.Points)),
		humanize.Comma(int64(r.Scalars)),
		r.Timing,
		r.Timing.Rate(r.Scalars, "scalar"),
	)
}

// Generate times Iterations calls of the synthetic input generator for 2^npow
// elements.
func Generate(npow uint32, withPoints bool, iterations int) GenerateResult {
	iterations = max(iterations, 1)

	var (
		result  GenerateResult
		samples = make([]time.Duration, 0, iterations)
	)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		points, scalars := synth.GeneratePointsScalarsCond(1<<npow, withPoints)
		samples = append(samples, time.Since(start))
		result.Points = len(points)
		result.Scalars = len(scalars)
	}
	result.Timing = newTiming(samples)
	return result
}
