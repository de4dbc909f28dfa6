// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntt

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/luxfi/log"
)

var (
	defaultOnce       sync.Once
	defaultDispatcher *Dispatcher
	defaultErr        error
)

// Default returns the process-wide dispatcher, built on first use from the
// highest priority registered backend.
func Default() (*Dispatcher, error) {
	defaultOnce.Do(func() {
		engine, err := NewEngine(DefaultConfig())
		if err != nil {
			defaultErr = err
			return
		}
		defaultDispatcher, defaultErr = NewDispatcher(engine, log.NewNoOpLogger(), nil)
	})
	return defaultDispatcher, defaultErr
}

// NTT computes an in-place forward NTT on the default dispatcher.
func NTT(device DeviceID, inout []fr.Element, order Order) error {
	return transform(device, inout, order, Forward, Standard)
}

// INTT computes an in-place inverse NTT on the default dispatcher.
func INTT(device DeviceID, inout []fr.Element, order Order) error {
	return transform(device, inout, order, Inverse, Standard)
}

// CosetNTT computes an in-place forward coset NTT on the default dispatcher.
func CosetNTT(device DeviceID, inout []fr.Element, order Order) error {
	return transform(device, inout, order, Forward, Coset)
}

// CosetINTT computes an in-place inverse coset NTT on the default dispatcher.
func CosetINTT(device DeviceID, inout []fr.Element, order Order) error {
	return transform(device, inout, order, Inverse, Coset)
}

func transform(device DeviceID, inout []fr.Element, order Order, direction Direction, typ Type) error {
	// reject bad sizes even when no backend can be built
	if _, err := lgDomain(len(inout)); err != nil {
		return err
	}
	d, err := Default()
	if err != nil {
		return err
	}
	return d.Transform(device, inout, order, direction, typ)
}
