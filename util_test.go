// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

var allModes = [...]RoundingMode{ToNearestEven, ToZero, AwayFromZero, ToNegativeInf, ToPositiveInf}

// opposite returns the mode that rounds -x the way mode rounds x.
func opposite(mode RoundingMode) RoundingMode {
	switch mode {
	case ToNegativeInf:
		return ToPositiveInf
	case ToPositiveInf:
		return ToNegativeInf
	}
	return mode
}

// newFloat returns ±0.m * 2**exp, m given as an MSB-normalized binary
// string of prec bits or less.
func newFloat(t testing.TB, m string, exp int32) *Float {
	t.Helper()
	neg := false
	if m[0] == '-' {
		neg, m = true, m[1:]
	}
	var i big.Int
	_, ok := i.SetString(m, 2)
	require.True(t, ok, m)
	require.Equal(t, byte('1'), m[0], m)
	prec := uint32(len(m))
	if prec < MinPrec {
		prec = MinPrec
	}
	n := wordsFor(prec)
	i.Lsh(&i, uint(n)*_W-uint(len(m)))
	x := &Float{prec: prec, exp: exp, form: finite, neg: neg}
	x.mant = make(nat, n)
	for j, w := range i.Bits() {
		x.mant[j] = Word(w)
	}
	x.validate()
	return x
}

// randFloat returns a random finite Float of precision prec and exponent
// exp.
func randFloat(r *rand.Rand, prec uint32, exp int32, neg bool) *Float {
	n := wordsFor(prec)
	m := make(nat, n)
	for i := range m {
		m[i] = Word(r.Uint64())
	}
	m[n-1] |= msb
	m[0] &^= lowMask(uint(n)*_W - uint(prec))
	return &Float{mant: m, exp: exp, prec: prec, form: finite, neg: neg}
}

// near returns a random Float of precision prec close to x: x plus or minus
// a few units 2**-shift relative to x.
func near(r *rand.Rand, x *Float, prec uint32, shift int) *Float {
	bx := x.Float(nil)
	d := new(big.Float).SetInt64(r.Int63n(1 << 20))
	d.SetMantExp(d, int(x.exp)-shift-20)
	if r.Intn(2) == 0 {
		d.Neg(d)
	}
	sum := new(big.Float).SetPrec(uint(x.prec) + uint(shift) + 64).Add(bx, d)
	z := new(Float).SetPrec(uint(prec))
	z.SetFloat(sum)
	if z.form != finite {
		return x
	}
	return z
}

// exactSub returns the correctly rounded difference x-y as computed by
// math/big.
func exactSub(z, x, y *Float, mode RoundingMode) (*big.Float, Accuracy) {
	want := new(big.Float).SetPrec(uint(z.prec)).SetMode(bigModes[mode])
	want.Sub(x.Float(nil), y.Float(nil))
	return want, Accuracy(want.Acc())
}

func exactAdd(z, x, y *Float, mode RoundingMode) (*big.Float, Accuracy) {
	want := new(big.Float).SetPrec(uint(z.prec)).SetMode(bigModes[mode])
	want.Add(x.Float(nil), y.Float(nil))
	return want, Accuracy(want.Acc())
}

// requireFloat checks that z is want, with the given accuracy.
func requireFloat(t testing.TB, want *big.Float, wantAcc Accuracy, z *Float, acc Accuracy, args ...interface{}) {
	t.Helper()
	z.validate()
	got := z.Float(nil)
	if want.Cmp(got) != 0 || want.Signbit() != got.Signbit() || wantAcc != acc {
		require.FailNow(t, "wrong result",
			"want %s (%s), got %s (%s)\n%s",
			want.Text('p', 0), wantAcc, got.Text('p', 0), acc, spew.Sdump(args...))
	}
}

// randPrec returns a random precision, biased toward word boundaries.
func randPrec(r *rand.Rand) uint32 {
	switch r.Intn(4) {
	case 0:
		return uint32(_W*(1+r.Intn(3)) + r.Intn(3) - 1)
	case 1:
		return uint32(2 + r.Intn(10))
	}
	return uint32(2 + r.Intn(300))
}
