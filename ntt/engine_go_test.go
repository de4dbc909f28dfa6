// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntt

import (
	"math"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, numDevices int) *GoEngine {
	t.Helper()

	config := DefaultConfig()
	config.NumDevices = numDevices
	config.NumTasks = 2
	e, err := NewGoEngine(config)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, e.Close()) })
	return e
}

func randomVector(t *testing.T, n int) []fr.Element {
	t.Helper()

	v := make([]fr.Element, n)
	for i := range v {
		_, err := v[i].SetRandom()
		require.NoError(t, err)
	}
	return v
}

// evaluate returns p(shift * w^i) for i in [0, len(coeffs)).
func evaluate(coeffs []fr.Element, w, shift fr.Element) []fr.Element {
	out := make([]fr.Element, len(coeffs))
	x := shift
	for i := range out {
		// Horner
		var acc fr.Element
		for j := len(coeffs) - 1; j >= 0; j-- {
			acc.Mul(&acc, &x)
			acc.Add(&acc, &coeffs[j])
		}
		out[i] = acc
		x.Mul(&x, &w)
	}
	return out
}

func bitReversed(v []fr.Element) []fr.Element {
	out := make([]fr.Element, len(v))
	n := len(v)
	lg := 0
	for 1<<lg < n {
		lg++
	}
	for i := range v {
		r := 0
		for b := 0; b < lg; b++ {
			if i&(1<<b) != 0 {
				r |= 1 << (lg - 1 - b)
			}
		}
		out[r] = v[i]
	}
	return out
}

func TestGoEngine_ForwardMatchesEvaluation(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
	}{
		{name: "standard", typ: Standard},
		{name: "coset", typ: Coset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			e := newTestEngine(t, 1)
			const lg = 4
			coeffs := randomVector(t, 1<<lg)

			domain := e.domain(lg)
			shift := fr.One()
			if tt.typ == Coset {
				shift = domain.FrMultiplicativeGen
			}
			want := evaluate(coeffs, domain.Generator, shift)

			got := make([]fr.Element, len(coeffs))
			copy(got, coeffs)
			require.True(e.Compute(0, got, lg, NN, Forward, tt.typ).OK())
			require.Equal(want, got)

			got = make([]fr.Element, len(coeffs))
			copy(got, coeffs)
			require.True(e.Compute(0, got, lg, NR, Forward, tt.typ).OK())
			require.Equal(bitReversed(want), got)

			got = bitReversed(coeffs)
			require.True(e.Compute(0, got, lg, RN, Forward, tt.typ).OK())
			require.Equal(want, got)
		})
	}
}

func TestGoEngine_RoundTrip(t *testing.T) {
	tests := []struct {
		name          string
		forwardOrder  Order
		inverseOrder  Order
		typ           Type
		lgDomainSizes []uint32
	}{
		{
			name:          "NN standard",
			forwardOrder:  NN,
			inverseOrder:  NN,
			typ:           Standard,
			lgDomainSizes: []uint32{1, 2, 5, 10},
		},
		{
			name:          "NN coset",
			forwardOrder:  NN,
			inverseOrder:  NN,
			typ:           Coset,
			lgDomainSizes: []uint32{1, 3, 8},
		},
		{
			name:          "NR then RN standard",
			forwardOrder:  NR,
			inverseOrder:  RN,
			typ:           Standard,
			lgDomainSizes: []uint32{1, 4, 9},
		},
		{
			name:          "NR then RN coset",
			forwardOrder:  NR,
			inverseOrder:  RN,
			typ:           Coset,
			lgDomainSizes: []uint32{2, 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			e := newTestEngine(t, 1)
			for _, lg := range tt.lgDomainSizes {
				original := randomVector(t, 1<<lg)
				v := make([]fr.Element, len(original))
				copy(v, original)

				require.True(e.Compute(0, v, lg, tt.forwardOrder, Forward, tt.typ).OK())
				require.True(e.Compute(0, v, lg, tt.inverseOrder, Inverse, tt.typ).OK())
				require.Equal(original, v, "lgDomainSize=%d", lg)
			}
		})
	}
}

func TestGoEngine_InverseOfConstant(t *testing.T) {
	require := require.New(t)

	// a constant evaluation vector interpolates to c + 0x + 0x^2 + ...
	e := newTestEngine(t, 1)
	const lg = 3
	var c fr.Element
	c.SetUint64(7)
	v := make([]fr.Element, 1<<lg)
	for i := range v {
		v[i] = c
	}

	require.True(e.Compute(0, v, lg, NN, Inverse, Standard).OK())
	require.Equal(c, v[0])
	for i := 1; i < len(v); i++ {
		require.True(v[i].IsZero(), "coefficient %d", i)
	}
}

func TestGoEngine_SingleElementIsIdentity(t *testing.T) {
	e := newTestEngine(t, 1)
	for _, order := range []Order{NN, NR, RN} {
		for _, direction := range []Direction{Forward, Inverse} {
			for _, typ := range []Type{Standard, Coset} {
				v := []fr.Element{fr.NewElement(42)}
				require.True(t, e.Compute(0, v, 0, order, direction, typ).OK())
				require.Equal(t, fr.NewElement(42), v[0])
			}
		}
	}
}

func TestGoEngine_Errors(t *testing.T) {
	tests := []struct {
		name         string
		device       DeviceID
		len          int
		lgDomainSize uint32
		order        Order
		direction    Direction
		typ          Type
		wantCode     int
	}{
		{
			name:         "device out of range",
			device:       2,
			len:          4,
			lgDomainSize: 2,
			wantCode:     CodeInvalidDevice,
		},
		{
			name:         "device id beyond int range",
			device:       DeviceID(math.MaxUint),
			len:          4,
			lgDomainSize: 2,
			wantCode:     CodeInvalidDevice,
		},
		{
			name:         "domain larger than 2-adicity",
			len:          1,
			lgDomainSize: MaxLgDomainSize + 1,
			wantCode:     CodeDomainTooLarge,
		},
		{
			name:         "length does not match domain",
			len:          8,
			lgDomainSize: 2,
			wantCode:     CodeInvalidArgument,
		},
		{
			name:         "unknown order",
			len:          4,
			lgDomainSize: 2,
			order:        RN + 1,
			wantCode:     CodeInvalidArgument,
		},
		{
			name:         "unknown direction",
			len:          4,
			lgDomainSize: 2,
			direction:    Inverse + 1,
			wantCode:     CodeInvalidArgument,
		},
		{
			name:         "unknown type",
			len:          4,
			lgDomainSize: 2,
			typ:          Coset + 1,
			wantCode:     CodeInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			e := newTestEngine(t, 2)
			v := randomVector(t, tt.len)
			original := make([]fr.Element, len(v))
			copy(original, v)

			status := e.Compute(tt.device, v, tt.lgDomainSize, tt.order, tt.direction, tt.typ)
			require.False(status.OK())
			require.Equal(tt.wantCode, status.Code)
			require.NotEmpty(status.Message)
			require.Equal(original, v)
		})
	}
}

func TestGoEngine_SecondDevice(t *testing.T) {
	require := require.New(t)

	e := newTestEngine(t, 2)
	require.Equal(2, e.NumDevices())
	require.Equal("pure", e.Backend())

	a := randomVector(t, 16)
	b := make([]fr.Element, len(a))
	copy(b, a)

	require.True(e.Compute(0, a, 4, NN, Forward, Standard).OK())
	require.True(e.Compute(1, b, 4, NN, Forward, Standard).OK())
	require.Equal(a, b)
}

func TestGoEngine_DomainCache(t *testing.T) {
	require := require.New(t)

	config := DefaultConfig()
	config.DomainCacheSize = 1
	e, err := NewGoEngine(config)
	require.NoError(err)

	d4 := e.domain(4)
	require.Same(d4, e.domain(4))

	// evicted by a different size
	_ = e.domain(5)
	require.Equal(1, e.domains.Len())
	require.NotSame(d4, e.domain(4))

	var w fr.Element
	w.Exp(d4.Generator, big.NewInt(16))
	require.True(w.IsOne())
}
