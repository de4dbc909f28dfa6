// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build cgo && cuda

// CUDA NTT engine backed by sppark's compute_ntt.
// Link against the sppark NTT static library built for BN254, e.g.
//
//	CGO_LDFLAGS="-L/path/to/sppark/lib" go build -tags cuda ./...

package ntt

/*
#cgo LDFLAGS: -lsppark_ntt_bn254 -L/usr/local/cuda/lib64 -lcudart -lstdc++
#include <stddef.h>
#include <stdint.h>
#include <stdlib.h>

typedef struct {
	int code;
	char *message;
} RustError;

RustError compute_ntt(size_t device_id, void *inout, uint32_t lg_domain_size,
                      int ntt_order, int ntt_direction, int ntt_type);
*/
import "C"

import (
	"unsafe"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var _ Engine = (*CUDAEngine)(nil)

// CUDAEngine hands buffers to the GPU without a host-side copy. fr.Element
// and sppark's fr_t share the same Montgomery limb layout.
type CUDAEngine struct {
	numDevices int
}

// NewCUDAEngine creates a CUDA engine
func NewCUDAEngine(config Config) (*CUDAEngine, error) {
	numDevices := config.NumDevices
	if numDevices <= 0 {
		numDevices = 1
	}
	return &CUDAEngine{numDevices: numDevices}, nil
}

func (*CUDAEngine) Backend() string {
	return "cuda"
}

func (e *CUDAEngine) NumDevices() int {
	return e.numDevices
}

func (*CUDAEngine) Close() error {
	return nil
}

// Compute forwards the request to the device. Device id validation is left
// to the driver, which reports it through the returned status.
func (*CUDAEngine) Compute(
	device DeviceID,
	inout []fr.Element,
	lgDomainSize uint32,
	order Order,
	direction Direction,
	typ Type,
) Status {
	if len(inout) == 0 {
		return Status{Code: CodeInvalidArgument, Message: "empty inout"}
	}

	err := C.compute_ntt(
		C.size_t(device),
		unsafe.Pointer(&inout[0]),
		C.uint32_t(lgDomainSize),
		C.int(order),
		C.int(direction),
		C.int(typ),
	)
	if err.code == 0 {
		return Status{}
	}

	status := Status{Code: int(err.code)}
	if err.message != nil {
		status.Message = C.GoString(err.message)
		C.free(unsafe.Pointer(err.message))
	}
	return status
}
