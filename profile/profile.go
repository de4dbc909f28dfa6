// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package profile captures pprof profiles around a single benchmark run.
package profile

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"golang.org/x/sync/errgroup"
)

const (
	cpuSuffix  = ".cpu.pprof"
	heapSuffix = ".heap.pprof"

	dirPerms  = 0o750
	filePerms = 0o640
)

var (
	ErrRunning    = errors.New("cpu profiler already running")
	ErrNotRunning = errors.New("cpu profiler not running")
)

// Profiler writes <name>.cpu.pprof covering Start..Stop and <name>.heap.pprof
// at Stop into dir.
type Profiler struct {
	cpuProfileName  string
	heapProfileName string
	dir             string
	cpuProfileFile  *os.File
}

func New(dir, name string) *Profiler {
	return &Profiler{
		cpuProfileName:  filepath.Join(dir, name+cpuSuffix),
		heapProfileName: filepath.Join(dir, name+heapSuffix),
		dir:             dir,
	}
}

// Start begins CPU profiling. Only one CPU profile may run per process.
func (p *Profiler) Start() error {
	if p.cpuProfileFile != nil {
		return ErrRunning
	}

	if err := os.MkdirAll(p.dir, dirPerms); err != nil {
		return err
	}
	file, err := os.OpenFile(p.cpuProfileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerms)
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return err
	}
	p.cpuProfileFile = file
	return nil
}

// Stop ends CPU profiling and writes the heap profile.
func (p *Profiler) Stop() error {
	if p.cpuProfileFile == nil {
		return ErrNotRunning
	}

	g := errgroup.Group{}
	g.Go(p.stopCPU)
	g.Go(p.writeHeap)
	return g.Wait()
}

// Files returns the paths Stop writes to.
func (p *Profiler) Files() []string {
	return []string{p.cpuProfileName, p.heapProfileName}
}

func (p *Profiler) stopCPU() error {
	pprof.StopCPUProfile()
	err := p.cpuProfileFile.Close()
	p.cpuProfileFile = nil
	return err
}

func (p *Profiler) writeHeap() error {
	file, err := os.OpenFile(p.heapProfileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerms)
	if err != nil {
		return err
	}
	defer file.Close()

	runtime.GC()
	return pprof.WriteHeapProfile(file)
}
