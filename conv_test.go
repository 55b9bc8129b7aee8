// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat_SetFloat64(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 1000; i++ {
		f := math.Float64frombits(r.Uint64())
		if math.IsNaN(f) {
			continue
		}
		x := NewFloat(f)
		require.Equal(t, uint(53), x.Prec())
		g, acc := x.Float64()
		require.Equal(t, Exact, acc)
		require.Equal(t, math.Float64bits(f), math.Float64bits(g))
	}
	for _, f := range []float64{0, math.Copysign(0, -1), math.Inf(1), math.Inf(-1), 1, -0.5, math.SmallestNonzeroFloat64, math.MaxFloat64} {
		g, acc := NewFloat(f).Float64()
		require.Equal(t, Exact, acc)
		require.Equal(t, math.Float64bits(f), math.Float64bits(g), "%g", f)
	}
	require.PanicsWithValue(t, ErrNaN{"NewFloat(NaN)"}, func() { NewFloat(math.NaN()) })
	require.PanicsWithValue(t, ErrNaN{"Float.SetFloat64(NaN)"}, func() { new(Float).SetFloat64(math.NaN()) })

	// rounding
	for _, mode := range allModes {
		x := new(Float).SetPrec(10).SetMode(mode).SetFloat64(math.Pi)
		want := new(big.Float).SetPrec(10).SetMode(bigModes[mode]).SetFloat64(math.Pi)
		requireFloat(t, want, Accuracy(want.Acc()), x, x.Acc(), mode)
	}
}

func TestFloat_SetInt(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64, -12345678901} {
		x := new(Float).SetInt64(v)
		require.Equal(t, uint(64), x.Prec())
		requireFloat(t, new(big.Float).SetInt64(v), Exact, x, x.Acc(), v)
	}
	x := new(Float).SetUint64(math.MaxUint64)
	requireFloat(t, new(big.Float).SetUint64(math.MaxUint64), Exact, x, x.Acc())

	// the sign affects directed rounding
	x = new(Float).SetPrec(2).SetMode(ToPositiveInf).SetInt64(-7)
	requireFloat(t, big.NewFloat(-6), Above, x, x.Acc())
	x = new(Float).SetPrec(2).SetMode(ToPositiveInf).SetUint64(7)
	requireFloat(t, big.NewFloat(8), Above, x, x.Acc())
}

func TestFloat_SetFloat(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		prec := randPrec(r)
		x := randFloat(r, prec, int32(r.Intn(2000)-1000), r.Intn(2) == 0)
		b := x.Float(nil)
		require.Equal(t, uint(prec), b.Prec())
		z := new(Float).SetFloat(b)
		require.Equal(t, x.Prec(), z.Prec())
		requireFloat(t, b, Exact, z, z.Acc(), prec)
		require.Zero(t, z.Cmp(x))

		// rounded
		p := uint32(2 + r.Intn(int(prec)))
		mode := allModes[r.Intn(len(allModes))]
		z = new(Float).SetPrec(uint(p)).SetMode(mode).SetFloat(b)
		want := new(big.Float).SetPrec(uint(p)).SetMode(bigModes[mode]).Set(b)
		requireFloat(t, want, Accuracy(want.Acc()), z, z.Acc(), prec, p, mode)
	}

	// a low precision big.Float still yields a valid Float
	z := new(Float).SetFloat(new(big.Float).SetPrec(1).SetInt64(-1))
	require.Equal(t, uint(MinPrec), z.Prec())
	require.Equal(t, -1, z.Sign())

	z.SetFloat(new(big.Float).SetInf(true))
	require.True(t, z.IsInf())
	require.True(t, z.Signbit())
	z.SetFloat(new(big.Float).Neg(new(big.Float)))
	require.True(t, z.IsZero())
	require.True(t, z.Signbit())
}

func TestFloat_Text(t *testing.T) {
	x := newFloat(t, "11", 2)
	require.Equal(t, "3", x.String())
	require.Equal(t, "3.000", fmt.Sprintf("%.3f", x))
	require.Equal(t, "-Inf", new(Float).SetInf(true).String())
	require.Equal(t, "-0", new(Float).Neg(new(Float)).String())
}
