// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntt

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"
)

// Dispatcher validates host buffers and runs them through an Engine.
//
// A Dispatcher holds no per-call state and may be used from many goroutines,
// as long as no two concurrent calls share a buffer.
type Dispatcher struct {
	engine  Engine
	log     log.Logger
	metrics *metrics
}

// NewDispatcher wraps engine. A nil registerer keeps metrics private to the
// dispatcher.
func NewDispatcher(engine Engine, logger log.Logger, registerer prometheus.Registerer) (*Dispatcher, error) {
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register NTT metrics: %w", err)
	}
	return &Dispatcher{
		engine:  engine,
		log:     logger,
		metrics: m,
	}, nil
}

// Engine returns the engine transforms are dispatched to.
func (d *Dispatcher) Engine() Engine {
	return d.engine
}

// NTT computes an in-place forward NTT.
func (d *Dispatcher) NTT(device DeviceID, inout []fr.Element, order Order) error {
	return d.Transform(device, inout, order, Forward, Standard)
}

// INTT computes an in-place inverse NTT.
func (d *Dispatcher) INTT(device DeviceID, inout []fr.Element, order Order) error {
	return d.Transform(device, inout, order, Inverse, Standard)
}

// CosetNTT computes an in-place forward NTT over the shifted domain.
func (d *Dispatcher) CosetNTT(device DeviceID, inout []fr.Element, order Order) error {
	return d.Transform(device, inout, order, Forward, Coset)
}

// CosetINTT computes an in-place inverse NTT over the shifted domain.
func (d *Dispatcher) CosetINTT(device DeviceID, inout []fr.Element, order Order) error {
	return d.Transform(device, inout, order, Inverse, Coset)
}

// Transform runs one in-place transform on device and blocks until it is
// done. A buffer whose length is not a nonzero power of two is rejected with
// ErrInvalidDomainSize before the engine is called. Engine failures are
// returned as *DeviceError and are never retried.
func (d *Dispatcher) Transform(
	device DeviceID,
	inout []fr.Element,
	order Order,
	direction Direction,
	typ Type,
) error {
	lgDomainSize, err := lgDomain(len(inout))
	if err != nil {
		d.metrics.observe(direction, typ, resultInvalidDomain, 0)
		d.log.Debug("rejected NTT input",
			log.Int("len", len(inout)),
			log.Stringer("direction", direction),
			log.Stringer("type", typ),
		)
		return err
	}

	start := time.Now()
	status := d.engine.Compute(device, inout, lgDomainSize, order, direction, typ)
	elapsed := time.Since(start)

	if !status.OK() {
		d.metrics.observe(direction, typ, resultDeviceError, elapsed)
		d.log.Warn("NTT failed on device",
			log.Uint64("device", uint64(device)),
			log.String("backend", d.engine.Backend()),
			log.Uint32("lgDomainSize", lgDomainSize),
			log.Stringer("order", order),
			log.Stringer("direction", direction),
			log.Stringer("type", typ),
			log.Int("code", status.Code),
			log.String("message", status.Message),
		)
		return &DeviceError{
			Device:  device,
			Code:    status.Code,
			Message: status.Message,
		}
	}

	d.metrics.observe(direction, typ, resultOK, elapsed)
	return nil
}

// lgDomain returns log2(n) for a nonzero power of two n.
func lgDomain(n int) (uint32, error) {
	if n == 0 || n&(n-1) != 0 {
		return 0, fmt.Errorf("%w: got %d elements", ErrInvalidDomainSize, n)
	}
	return uint32(bits.TrailingZeros(uint(n))), nil
}
