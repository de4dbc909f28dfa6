// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntt

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Engine executes a single in-place transform on a device.
//
// inout holds exactly 1<<lgDomainSize elements and is mutated in place.
// Compute blocks until the device is done with the buffer.
type Engine interface {
	// Backend is the name the engine was registered under.
	Backend() string
	// NumDevices is the number of devices Compute accepts.
	NumDevices() int
	Compute(
		device DeviceID,
		inout []fr.Element,
		lgDomainSize uint32,
		order Order,
		direction Direction,
		typ Type,
	) Status
	Close() error
}
