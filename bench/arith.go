// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bench

import (
	"fmt"
	"math"
	"runtime"
	"slices"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"
)

// Op is a binary field operation.
type Op uint8

const (
	Add Op = iota
	Sub
	Mul
)

// Ops lists every Op in report order.
var Ops = []Op{Add, Sub, Mul}

func (o Op) String() string {
	switch o {
	case Add:
		return "ADD"
	case Sub:
		return "SUB"
	case Mul:
		return "MUL"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// ArithResult is one cell of the arithmetic grid.
type ArithResult struct {
	Op           Op
	Workers      int
	Exponent     int // ops per worker is 10^Exponent
	OpsPerWorker int
	Elapsed      time.Duration
}

// OpsPerMicrosecond is the aggregate throughput across all workers.
func (r ArithResult) OpsPerMicrosecond() float64 {
	us := float64(r.Elapsed) / float64(time.Microsecond)
	if us <= 0 {
		return math.Inf(1)
	}
	return float64(r.Workers*r.OpsPerWorker) / us
}

func (r ArithResult) String() string {
	return fmt.Sprintf("FR %s 10**%d*%d = %.2f ops/us", r.Op, r.Exponent, r.Workers, r.OpsPerMicrosecond())
}

// ArithWorkers returns the worker counts swept by Arith.
func ArithWorkers() []int {
	n := runtime.NumCPU()
	workers := []int{1, max(n/2, 1), n}
	slices.Sort(workers)
	return slices.Compact(workers)
}

// Arith times every Op for each worker count and for 10^k ops per worker,
// k = 2..npow.
func Arith(npow uint32) []ArithResult {
	var results []ArithResult
	for _, op := range Ops {
		for _, workers := range ArithWorkers() {
			opsPerWorker := 10
			for k := 2; k <= int(npow); k++ {
				opsPerWorker *= 10
				results = append(results, ArithResult{
					Op:           op,
					Workers:      workers,
					Exponent:     k,
					OpsPerWorker: opsPerWorker,
					Elapsed:      runArith(op, workers, opsPerWorker),
				})
			}
		}
	}
	return results
}

// runArith runs opsPerWorker chained ops on each of workers goroutines.
func runArith(op Op, workers, opsPerWorker int) time.Duration {
	sinks := make([]fr.Element, workers)

	var g errgroup.Group
	start := time.Now()
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			var a, b fr.Element
			a.SetUint64(uint64(w) + 2)
			b.SetUint64(uint64(w) + 3)
			for i := 0; i < opsPerWorker; i++ {
				switch op {
				case Add:
					a.Add(&a, &b)
				case Sub:
					a.Sub(&a, &b)
				case Mul:
					a.Mul(&a, &b)
				}
			}
			sinks[w] = a
			return nil
		})
	}
	_ = g.Wait()
	return time.Since(start)
}
