// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build cgo && cuda

package ntt

func init() {
	Register("cuda", 100, func(config Config) (Engine, error) {
		return NewCUDAEngine(config)
	})
}
