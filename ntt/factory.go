// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntt

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// BackendEnvVar forces a specific registered backend.
const BackendEnvVar = "SPPARK_NTT_BACKEND"

var (
	ErrNoBackend      = errors.New("no NTT backend registered")
	ErrUnknownBackend = errors.New("requested NTT backend not available")
)

// backendCtor holds a backend constructor with its priority
type backendCtor struct {
	name     string
	priority int
	new      func(Config) (Engine, error)
}

var (
	ctors   []backendCtor
	ctorsMu sync.RWMutex
)

// Register adds a backend constructor with the given priority.
// Higher priority backends are preferred. Called from init() in backend files.
func Register(name string, priority int, ctor func(Config) (Engine, error)) {
	ctorsMu.Lock()
	defer ctorsMu.Unlock()
	ctors = append(ctors, backendCtor{name: name, priority: priority, new: ctor})
}

// sortedCtors returns a copy of the registry, highest priority first.
// Caller must hold ctorsMu.
func sortedCtors() []backendCtor {
	sorted := make([]backendCtor, len(ctors))
	copy(sorted, ctors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].priority > sorted[j].priority
	})
	return sorted
}

// NewEngine creates the best available engine.
// config.Backend, then SPPARK_NTT_BACKEND, force a specific backend; otherwise
// the highest priority one is used.
func NewEngine(config Config) (Engine, error) {
	ctorsMu.RLock()
	defer ctorsMu.RUnlock()

	if len(ctors) == 0 {
		return nil, ErrNoBackend
	}
	sorted := sortedCtors()

	want := config.Backend
	if want == "" {
		want = os.Getenv(BackendEnvVar)
	}
	if want != "" {
		want = strings.ToLower(want)
		for _, c := range sorted {
			if strings.ToLower(c.name) == want {
				return c.new(config)
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, want)
	}

	return sorted[0].new(config)
}

// AvailableBackends returns names of all registered backends, sorted by priority
func AvailableBackends() []string {
	ctorsMu.RLock()
	defer ctorsMu.RUnlock()

	sorted := sortedCtors()
	names := make([]string, len(sorted))
	for i, c := range sorted {
		names[i] = c.name
	}
	return names
}

// BackendInfo returns description of a backend
func BackendInfo(name string) string {
	switch strings.ToLower(name) {
	case "pure", "go":
		return "Pure Go - gnark-crypto reference NTT, no dependencies"
	case "cuda":
		return "CUDA - sppark compute_ntt on NVIDIA GPUs"
	default:
		return "Unknown backend"
	}
}
