// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bench

import (
	"testing"
	"time"

	"github.com/luxfi/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingonyama-zk/sppark/ntt"
	"github.com/ingonyama-zk/sppark/ntt/nttmock"
)

func TestNewTiming(t *testing.T) {
	require := require.New(t)

	timing := newTiming([]time.Duration{
		2 * time.Millisecond,
		4 * time.Millisecond,
		6 * time.Millisecond,
	})
	require.Equal(4*time.Millisecond, timing.Mean)
	require.Equal(2*time.Millisecond, timing.StdDev)
	require.Equal(2*time.Millisecond, timing.Min)
	require.Contains(timing.String(), "n=3")

	single := newTiming([]time.Duration{time.Second})
	require.Equal(time.Second, single.Mean)
	require.Zero(single.StdDev)
	require.Equal("1s", single.String())
	require.Equal("1 elem/s", single.Rate(1, "elem"))

	require.Equal("n/a", newTiming(nil).Rate(1, "elem"))
}

func TestNTT(t *testing.T) {
	require := require.New(t)

	engine, err := ntt.NewGoEngine(ntt.DefaultConfig())
	require.NoError(err)
	d, err := ntt.NewDispatcher(engine, log.NewNoOpLogger(), nil)
	require.NoError(err)

	result, err := NTT(d, log.NewNoOpLogger(), NTTConfig{
		NPow:       8,
		Order:      ntt.RN,
		Iterations: 3,
	})
	require.NoError(err)
	require.Equal(uint32(8), result.NPow)
	require.Equal(256, result.Elements)
	require.Equal("pure", result.Backend)
	require.Len(result.Timing.Samples, 3)
	require.Contains(result.String(), "NTT 2^8 (256 elements) on pure")
}

func TestNTT_DeviceError(t *testing.T) {
	require := require.New(t)

	ctrl := gomock.NewController(t)
	engine := nttmock.NewEngine(ctrl)
	engine.EXPECT().Backend().Return("mock").AnyTimes()
	engine.EXPECT().
		Compute(ntt.DeviceID(1), gomock.Len(16), uint32(4), ntt.RN, ntt.Forward, ntt.Standard).
		Return(ntt.Status{Code: 9, Message: "out of memory"})

	d, err := ntt.NewDispatcher(engine, log.NewNoOpLogger(), nil)
	require.NoError(err)

	_, err = NTT(d, log.NewNoOpLogger(), NTTConfig{
		NPow:       4,
		Device:     1,
		Order:      ntt.RN,
		Iterations: 2,
	})
	require.ErrorIs(err, ntt.ErrDeviceCompute)
}

func TestGenerate(t *testing.T) {
	require := require.New(t)

	result := Generate(5, false, 2)
	require.Equal(3, result.Points)
	require.Equal(32, result.Scalars)
	require.Len(result.Timing.Samples, 2)

	result = Generate(5, true, 0)
	require.Equal(32, result.Points)
	require.Len(result.Timing.Samples, 1)
	require.Contains(result.String(), "32 points and 32 scalars")
}

func TestArith(t *testing.T) {
	require := require.New(t)

	results := Arith(3)
	workers := ArithWorkers()
	require.Len(results, len(Ops)*len(workers)*2)

	for _, r := range results {
		require.Contains([]int{2, 3}, r.Exponent)
		want := 100
		if r.Exponent == 3 {
			want = 1000
		}
		require.Equal(want, r.OpsPerWorker)
		require.Positive(r.OpsPerMicrosecond())
		require.Contains(r.String(), "FR "+r.Op.String())
	}

	require.Empty(Arith(1))
}

func TestArithWorkers(t *testing.T) {
	workers := ArithWorkers()
	require.NotEmpty(t, workers)
	require.Equal(t, 1, workers[0])
	require.IsIncreasing(t, workers)
}
