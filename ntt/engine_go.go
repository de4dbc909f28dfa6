// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Pure Go NTT engine (default, no CGO required)

package ntt

import (
	"fmt"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
	lru "github.com/hashicorp/golang-lru"
)

// MaxLgDomainSize is the 2-adicity of the BN254 scalar field: the largest
// power-of-two subgroup of Fr* has order 2^28.
const MaxLgDomainSize = 28

// Status codes reported by GoEngine.
const (
	CodeInvalidDevice   = 1
	CodeDomainTooLarge  = 2
	CodeInvalidArgument = 3
)

var _ Engine = (*GoEngine)(nil)

// GoEngine is the CPU reference engine. Devices are virtual: each one runs
// the same gnark-crypto transform on the calling goroutine.
type GoEngine struct {
	numDevices int
	numTasks   int
	domains    *lru.Cache // lgDomainSize -> *fft.Domain
}

// NewGoEngine creates a pure Go engine
func NewGoEngine(config Config) (*GoEngine, error) {
	numTasks := config.NumTasks
	if numTasks <= 0 {
		numTasks = runtime.NumCPU()
	}
	numDevices := config.NumDevices
	if numDevices <= 0 {
		numDevices = 1
	}
	cacheSize := config.DomainCacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultConfig().DomainCacheSize
	}

	domains, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create domain cache: %w", err)
	}

	return &GoEngine{
		numDevices: numDevices,
		numTasks:   numTasks,
		domains:    domains,
	}, nil
}

func (*GoEngine) Backend() string {
	return "pure"
}

func (e *GoEngine) NumDevices() int {
	return e.numDevices
}

func (*GoEngine) Close() error {
	return nil
}

// Compute runs the transform through gnark-crypto's fft package.
//
// DIF takes natural input and leaves the output bit-reversed, DIT takes
// bit-reversed input and leaves the output natural, so NR maps to DIF, RN to
// DIT and NN to DIF followed by a bit reversal.
func (e *GoEngine) Compute(
	device DeviceID,
	inout []fr.Element,
	lgDomainSize uint32,
	order Order,
	direction Direction,
	typ Type,
) Status {
	switch {
	case uint64(device) >= uint64(e.numDevices):
		return Status{
			Code:    CodeInvalidDevice,
			Message: fmt.Sprintf("invalid device id %d, %d available", device, e.numDevices),
		}
	case lgDomainSize > MaxLgDomainSize:
		return Status{
			Code:    CodeDomainTooLarge,
			Message: fmt.Sprintf("domain 2^%d exceeds field 2-adicity 2^%d", lgDomainSize, MaxLgDomainSize),
		}
	case len(inout) != 1<<lgDomainSize:
		return Status{
			Code:    CodeInvalidArgument,
			Message: fmt.Sprintf("inout has %d elements, domain has %d", len(inout), 1<<lgDomainSize),
		}
	case order > RN || direction > Inverse || typ > Coset:
		return Status{
			Code:    CodeInvalidArgument,
			Message: fmt.Sprintf("unsupported transform %s/%s/%s", order, direction, typ),
		}
	}

	// every variant is the identity on a single element
	if lgDomainSize == 0 {
		return Status{}
	}

	domain := e.domain(lgDomainSize)

	opts := []fft.Option{fft.WithNbTasks(e.numTasks)}
	if typ == Coset {
		opts = append(opts, fft.OnCoset())
	}

	decimation := fft.DIF
	if order == RN {
		decimation = fft.DIT
	}

	if direction == Forward {
		domain.FFT(inout, decimation, opts...)
	} else {
		domain.FFTInverse(inout, decimation, opts...)
	}

	if order == NN {
		fft.BitReverse(inout)
	}
	return Status{}
}

// domain returns the cached FFT domain of size 2^lgDomainSize, building it
// on a miss. Concurrent misses may both build; the results are identical.
func (e *GoEngine) domain(lgDomainSize uint32) *fft.Domain {
	if d, ok := e.domains.Get(lgDomainSize); ok {
		return d.(*fft.Domain)
	}
	d := fft.NewDomain(uint64(1) << lgDomainSize)
	e.domains.Add(lgDomainSize, d)
	return d
}
