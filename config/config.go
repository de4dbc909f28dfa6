// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads benchmark settings from flags, the environment and an
// optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ingonyama-zk/sppark/ntt"
)

const (
	NPowEnvVar      = "BENCH_NPOW"
	ArithNPowEnvVar = "ARITH_BENCH_NPOW"
)

// Keys shared by flags, the config file and viper lookups.
const (
	ConfigFileKey = "config"
	NPowKey       = "npow"
	ArithNPowKey  = "arith-npow"
	DeviceKey     = "device"
	OrderKey      = "order"
	IterationsKey = "iterations"
	WithPointsKey = "with-points"
	BackendKey    = "backend"
	NumDevicesKey = "num-devices"
)

var (
	ErrNPowTooLarge      = errors.New("npow exceeds the BN254 scalar field 2-adicity")
	ErrArithNPowTooSmall = errors.New("arith npow must be at least 2")
	ErrNoIterations      = errors.New("iterations must be positive")
	ErrNoDevices         = errors.New("num-devices must be positive")
)

// Bench configures the NTT, arithmetic and generator benchmarks.
type Bench struct {
	NPow       uint32 `json:"npow"`       // log2 of the NTT and generator input size
	ArithNPow  uint32 `json:"arithNPow"`  // largest power of ten per arith worker
	Device     uint   `json:"device"`     // device id passed to every transform
	Order      string `json:"order"`      // NN, NR or RN
	Iterations int    `json:"iterations"` // timed repetitions
	WithPoints bool   `json:"withPoints"` // also generate a full point vector
	Backend    string `json:"backend"`    // empty = highest priority registered
	NumDevices int    `json:"numDevices"` // virtual devices of the pure engine
}

// DefaultBench returns the settings used when nothing overrides them.
func DefaultBench() Bench {
	return Bench{
		NPow:       28,
		ArithNPow:  6,
		Device:     0,
		Order:      ntt.RN.String(),
		Iterations: 1,
		WithPoints: false,
		Backend:    "",
		NumDevices: 1,
	}
}

// AddFlags registers every Bench field on flags with DefaultBench values.
func AddFlags(flags *pflag.FlagSet) {
	d := DefaultBench()
	flags.String(ConfigFileKey, "", "Optional JSON, YAML or TOML file with bench settings")
	flags.Uint32(NPowKey, d.NPow, fmt.Sprintf("log2 of the input size (env %s)", NPowEnvVar))
	flags.Uint32(ArithNPowKey, d.ArithNPow, fmt.Sprintf("Largest power of ten of field ops per worker (env %s)", ArithNPowEnvVar))
	flags.Uint(DeviceKey, d.Device, "Device id to run transforms on")
	flags.String(OrderKey, d.Order, "Input/output order: NN, NR or RN")
	flags.Int(IterationsKey, d.Iterations, "Number of timed repetitions")
	flags.Bool(WithPointsKey, d.WithPoints, "Generate a full point vector alongside the scalars")
	flags.String(BackendKey, d.Backend, fmt.Sprintf("NTT backend to force (env %s)", ntt.BackendEnvVar))
	flags.Int(NumDevicesKey, d.NumDevices, "Virtual devices exposed by the pure engine")
}

// Load resolves a Bench from flags. Flags that were set win over the
// environment, which wins over the config file, which wins over flag
// defaults.
func Load(flags *pflag.FlagSet) (Bench, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Bench{}, err
	}
	for key, env := range map[string]string{
		NPowKey:      NPowEnvVar,
		ArithNPowKey: ArithNPowEnvVar,
		BackendKey:   ntt.BackendEnvVar,
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Bench{}, err
		}
	}

	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Bench{}, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	return fromViper(v)
}

// FromEnv returns DefaultBench with the benchmark environment variables
// applied.
func FromEnv() (Bench, error) {
	flags := pflag.NewFlagSet("bench", pflag.ContinueOnError)
	AddFlags(flags)
	return Load(flags)
}

func fromViper(v *viper.Viper) (Bench, error) {
	var (
		b   Bench
		err error
	)
	if b.NPow, err = cast.ToUint32E(v.Get(NPowKey)); err != nil {
		return Bench{}, fmt.Errorf("invalid %s: %w", NPowKey, err)
	}
	if b.ArithNPow, err = cast.ToUint32E(v.Get(ArithNPowKey)); err != nil {
		return Bench{}, fmt.Errorf("invalid %s: %w", ArithNPowKey, err)
	}
	if b.Device, err = cast.ToUintE(v.Get(DeviceKey)); err != nil {
		return Bench{}, fmt.Errorf("invalid %s: %w", DeviceKey, err)
	}
	if b.Order, err = cast.ToStringE(v.Get(OrderKey)); err != nil {
		return Bench{}, fmt.Errorf("invalid %s: %w", OrderKey, err)
	}
	if b.Iterations, err = cast.ToIntE(v.Get(IterationsKey)); err != nil {
		return Bench{}, fmt.Errorf("invalid %s: %w", IterationsKey, err)
	}
	if b.WithPoints, err = cast.ToBoolE(v.Get(WithPointsKey)); err != nil {
		return Bench{}, fmt.Errorf("invalid %s: %w", WithPointsKey, err)
	}
	if b.Backend, err = cast.ToStringE(v.Get(BackendKey)); err != nil {
		return Bench{}, fmt.Errorf("invalid %s: %w", BackendKey, err)
	}
	if b.NumDevices, err = cast.ToIntE(v.Get(NumDevicesKey)); err != nil {
		return Bench{}, fmt.Errorf("invalid %s: %w", NumDevicesKey, err)
	}
	return b, b.Verify()
}

// Verify checks that the settings describe a runnable benchmark.
func (b Bench) Verify() error {
	switch {
	case b.NPow > ntt.MaxLgDomainSize:
		return fmt.Errorf("%w: %d > %d", ErrNPowTooLarge, b.NPow, ntt.MaxLgDomainSize)
	case b.ArithNPow < 2:
		return fmt.Errorf("%w: got %d", ErrArithNPowTooSmall, b.ArithNPow)
	case b.Iterations <= 0:
		return fmt.Errorf("%w: got %d", ErrNoIterations, b.Iterations)
	case b.NumDevices <= 0:
		return fmt.Errorf("%w: got %d", ErrNoDevices, b.NumDevices)
	}
	_, err := ntt.ParseOrder(b.Order)
	return err
}

// NTTOrder returns the parsed Order.
func (b Bench) NTTOrder() (ntt.Order, error) {
	return ntt.ParseOrder(b.Order)
}

// EngineConfig returns the engine settings implied by b.
func (b Bench) EngineConfig() ntt.Config {
	config := ntt.DefaultConfig()
	config.Backend = b.Backend
	config.NumDevices = b.NumDevices
	return config
}
