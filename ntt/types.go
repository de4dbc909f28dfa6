// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ntt dispatches in-place Number Theoretic Transforms over the BN254
// scalar field to a compute engine.
//
// Two engines:
//   - Pure Go: Always available, reference implementation on gnark-crypto
//   - CUDA: cgo path into sppark's compute_ntt (build tags cgo,cuda)
//
// The dispatcher owns validation and error translation; the engine owns the
// transform itself.
package ntt

import (
	"errors"
	"fmt"
)

// Order describes whether the buffer is in natural (N) or bit-reversed (R)
// order on input and on output.
type Order uint32

const (
	NN Order = iota // natural in, natural out
	NR              // natural in, bit-reversed out
	RN              // bit-reversed in, natural out
)

func (o Order) String() string {
	switch o {
	case NN:
		return "NN"
	case NR:
		return "NR"
	case RN:
		return "RN"
	default:
		return fmt.Sprintf("Order(%d)", uint32(o))
	}
}

// ParseOrder parses the textual form produced by Order.String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "NN", "nn":
		return NN, nil
	case "NR", "nr":
		return NR, nil
	case "RN", "rn":
		return RN, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

// Direction selects the forward or inverse transform.
type Direction uint32

const (
	Forward Direction = iota
	Inverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("Direction(%d)", uint32(d))
	}
}

// Type selects the transform variant.
type Type uint32

const (
	Standard Type = iota
	Coset
)

func (t Type) String() string {
	switch t {
	case Standard:
		return "standard"
	case Coset:
		return "coset"
	default:
		return fmt.Sprintf("Type(%d)", uint32(t))
	}
}

// DeviceID selects the accelerator executing a request. It is supplied per
// call and never retained.
type DeviceID uint

var (
	ErrInvalidDomainSize = errors.New("inout length is not a power of 2")
	ErrDeviceCompute     = errors.New("device NTT computation failed")
	ErrUnknownOrder      = errors.New("unknown NTT input/output order")
)

// DeviceError carries the status reported by a compute engine.
type DeviceError struct {
	Device  DeviceID
	Code    int
	Message string
}

func (e *DeviceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("device %d: NTT failed with code %d", e.Device, e.Code)
	}
	return fmt.Sprintf("device %d: %s (code %d)", e.Device, e.Message, e.Code)
}

func (e *DeviceError) Unwrap() error {
	return ErrDeviceCompute
}

// Status is what an engine reports back for a single transform. A zero Code
// means success.
type Status struct {
	Code    int
	Message string
}

// OK reports whether the engine succeeded.
func (s Status) OK() bool {
	return s.Code == 0
}

// Config for NTT engines
type Config struct {
	Backend         string `json:"backend"`         // empty = highest priority registered
	NumDevices      int    `json:"numDevices"`      // virtual devices exposed by the pure engine
	NumTasks        int    `json:"numTasks"`        // 0 = runtime.NumCPU()
	DomainCacheSize int    `json:"domainCacheSize"` // precomputed FFT domains kept by the pure engine
}

// DefaultConfig returns default engine configuration
func DefaultConfig() Config {
	return Config{
		NumDevices:      1,
		NumTasks:        0, // 0 = auto-detect
		DomainCacheSize: 8,
	}
}
