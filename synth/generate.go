// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package synth generates random BN254 inputs for MSM and NTT benchmarks.
//
// Points are expensive to sample, so only a bounded pool is drawn and then
// tiled to the requested length. Scalars are cheap and are all sampled
// independently.
package synth

import (
	"math/big"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxSampledPoints bounds the number of independently sampled points.
	// Longer point vectors repeat with this period.
	MaxSampledPoints = 1 << 11

	// IdentityIndex is overwritten with the point at infinity whenever more
	// than IdentityIndex points are requested, so MSM kernels always see one.
	IdentityIndex = 3

	// scalarOnlyPoints is the point count returned when points are not
	// wanted.
	scalarOnlyPoints = 3
)

// GeneratePointsScalars returns n points and n scalars.
func GeneratePointsScalars(n int) ([]bn254.G1Affine, []fr.Element) {
	return GeneratePointsScalarsCond(n, true)
}

// GeneratePointsScalarsCond returns n scalars, and n points if withPoints is
// set or a 3 point placeholder otherwise. Negative n is treated as zero.
//
// Every call draws fresh entropy; two calls never share randomness.
func GeneratePointsScalarsCond(n int, withPoints bool) ([]bn254.G1Affine, []fr.Element) {
	n = max(n, 0)

	numPoints := n
	if !withPoints {
		numPoints = scalarOnlyPoints
	}
	return tilePoints(numPoints), sampleScalars(n)
}

// tilePoints samples min(MaxSampledPoints, n) points, plants the identity and
// repeats the pool until it covers n entries.
func tilePoints(n int) []bn254.G1Affine {
	points := samplePoints(min(MaxSampledPoints, n))
	if n > IdentityIndex {
		points[IdentityIndex] = bn254.G1Affine{}
	}
	for len(points) < n {
		points = append(points, points...)
	}
	return points[:n]
}

// samplePoints returns n points [s]G for uniform scalars s, all drawn from one
// stream.
func samplePoints(n int) []bn254.G1Affine {
	if n == 0 {
		return []bn254.G1Affine{}
	}

	s := newStream()
	jac := make([]bn254.G1Jac, n)
	var k big.Int
	for i := range jac {
		e := s.scalar()
		jac[i].ScalarMultiplicationBase(e.BigInt(&k))
	}
	return bn254.BatchJacobianToAffineG1(jac)
}

// sampleScalars fills n scalars in parallel. Each index gets its own freshly
// keyed stream, so the output is independent of how the work is split.
func sampleScalars(n int) []fr.Element {
	scalars := make([]fr.Element, n)
	if n == 0 {
		return scalars
	}

	workers := runtime.NumCPU()
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				scalars[i] = newStream().scalar()
			}
			return nil
		})
	}
	// workers never return an error
	_ = g.Wait()
	return scalars
}
