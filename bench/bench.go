// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bench times NTT dispatches, input generation and host-side field
// arithmetic.
package bench

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"
)

// Timing summarises repeated measurements of the same operation.
type Timing struct {
	Samples []time.Duration
	Mean    time.Duration
	StdDev  time.Duration
	Min     time.Duration
}

func newTiming(samples []time.Duration) Timing {
	t := Timing{Samples: samples}
	if len(samples) == 0 {
		return t
	}

	xs := make([]float64, len(samples))
	t.Min = samples[0]
	for i, s := range samples {
		xs[i] = float64(s)
		t.Min = min(t.Min, s)
	}
	mean, std := stat.MeanStdDev(xs, nil)
	t.Mean = time.Duration(mean)
	if len(samples) > 1 {
		t.StdDev = time.Duration(std)
	}
	return t
}

// Rate formats n items per Mean as an SI rate.
func (t Timing) Rate(n int, unit string) string {
	if t.Mean <= 0 {
		return "n/a"
	}
	return humanize.SIWithDigits(float64(n)/t.Mean.Seconds(), 2, unit+"/s")
}

func (t Timing) String() string {
	if len(t.Samples) == 1 {
		return t.Mean.String()
	}
	return fmt.Sprintf("%s ± %s (min %s, n=%d)", t.Mean, t.StdDev, t.Min, len(t.Samples))
}
