// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvAdd_random(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 20000; i++ {
		px, py, pz := randPrec(r), randPrec(r), randPrec(r)
		ex := int32(r.Intn(200) - 100)
		ey := ex + int32(r.Intn(int(px)+int(pz)+8)-int(pz)-4)
		if r.Intn(4) == 0 {
			ey = ex + int32(r.Intn(600)-300)
		}
		x := randFloat(r, px, ex, r.Intn(2) == 0)
		y := randFloat(r, py, ey, r.Intn(2) == 0)
		z := new(Float).SetPrec(uint(pz))
		mode := allModes[r.Intn(len(allModes))]
		want, wantAcc := exactAdd(z, x, y, mode)
		acc := DefaultEnv.Add(z, x, y, mode)
		requireFloat(t, want, wantAcc, z, acc, x, y, mode)
	}
}

func TestEnvAdd_alias(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for i := 0; i < 1000; i++ {
		p := randPrec(r)
		x := randFloat(r, p, int32(r.Intn(10)), false)
		mode := allModes[r.Intn(len(allModes))]
		want, wantAcc := exactAdd(x, x, x, mode)
		z := new(Float).Copy(x)
		acc := DefaultEnv.Add(z, z, z, mode)
		requireFloat(t, want, wantAcc, z, acc, x)
	}
}

func TestEnvAdd_special(t *testing.T) {
	x := newFloat(t, "101", 2)
	pinf, ninf := new(Float).SetInf(false), new(Float).SetInf(true)
	z := new(Float)

	DefaultEnv.Add(z, pinf, pinf, ToNearestEven)
	require.True(t, z.IsInf())
	DefaultEnv.Add(z, x, ninf, ToNearestEven)
	require.True(t, z.IsInf())
	require.True(t, z.Signbit())
	require.PanicsWithValue(t, ErrNaN{"addition of infinities with opposite signs"}, func() {
		DefaultEnv.Add(z, pinf, ninf, ToNearestEven)
	})

	// x + -x
	acc := DefaultEnv.Add(z, x, new(Float).Neg(x), ToNegativeInf)
	require.True(t, z.IsZero())
	require.True(t, z.Signbit())
	require.Equal(t, Exact, acc)

	// -0 + -0 == -0 in all modes
	nz := new(Float).Neg(new(Float))
	for _, mode := range allModes {
		DefaultEnv.Add(z, nz, nz, mode)
		require.True(t, z.IsZero())
		require.True(t, z.Signbit())
	}
}

func TestEnvAdd_overflow(t *testing.T) {
	env, err := NewEnv(-8, 8)
	require.NoError(t, err)
	x := newFloat(t, "11111111", 8)
	y := newFloat(t, "1", 1)
	z := new(Float).SetPrec(8)
	acc := env.Add(z, x, y, ToNearestEven)
	require.True(t, z.IsInf())
	require.Equal(t, Above, acc)
	acc = env.Add(z, x, y, ToZero)
	f, _ := z.Float64()
	require.Equal(t, 255.0, f)
	require.Equal(t, Below, acc)
}

func TestFloat_Add(t *testing.T) {
	z := new(Float).SetPrec(10)
	z.Add(NewFloat(1), NewFloat(0.5))
	require.Equal(t, "1.5", z.String())
	require.Equal(t, Exact, z.Acc())
	z.Add(z, NewFloat(-1.5))
	require.True(t, z.IsZero())
	require.False(t, z.Signbit())
}
