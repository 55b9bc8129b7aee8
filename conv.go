// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between Float and native or math/big
// values. Formatting is delegated to big.Float.

package mpfloat

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

var bigModes = [...]big.RoundingMode{
	ToNearestEven: big.ToNearestEven,
	ToZero:        big.ToZero,
	AwayFromZero:  big.AwayFromZero,
	ToNegativeInf: big.ToNegativeInf,
	ToPositiveInf: big.ToPositiveInf,
}

// NewFloat allocates and returns a new Float set to x, with precision 53 and
// rounding mode ToNearestEven. NewFloat panics with ErrNaN if x is a NaN.
func NewFloat(x float64) *Float {
	if math.IsNaN(x) {
		panic(ErrNaN{"NewFloat(NaN)"})
	}
	return new(Float).SetFloat64(x)
}

// SetFloat64 sets z to the (possibly rounded) value of x and returns z. If
// z's precision is 0, it is changed to 53 (and rounding will have no effect).
// SetFloat64 panics with ErrNaN if x is a NaN.
func (z *Float) SetFloat64(x float64) *Float {
	if z.prec == 0 {
		z.prec = 53
	}
	if math.IsNaN(x) {
		panic(ErrNaN{"Float.SetFloat64(NaN)"})
	}
	z.acc = Exact
	z.neg = math.Signbit(x)
	if x == 0 {
		z.form = zero
		return z
	}
	if math.IsInf(x, 0) {
		z.form = inf
		return z
	}
	fmant, exp := math.Frexp(x) // get normalized mantissa
	return z.setBits64(1<<63|math.Float64bits(fmant)<<11, int64(exp))
}

// SetInt64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 64 (and rounding will have
// no effect).
func (z *Float) SetInt64(x int64) *Float {
	u := x
	if u < 0 {
		u = -u
	}
	// We cannot simply call z.SetUint64(uint64(u)) and change
	// the sign afterwards because the sign affects rounding.
	return z.setUint64(x < 0, uint64(u))
}

// SetUint64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 64 (and rounding will have
// no effect).
func (z *Float) SetUint64(x uint64) *Float {
	return z.setUint64(false, x)
}

func (z *Float) setUint64(neg bool, x uint64) *Float {
	if z.prec == 0 {
		z.prec = 64
	}
	z.acc = Exact
	z.neg = neg
	if x == 0 {
		z.form = zero
		return z
	}
	// x != 0
	s := bits.LeadingZeros64(x)
	return z.setBits64(x<<uint(s), int64(64-s))
}

// setBits64 sets z to 0.m * 2**exp for an MSB-normalized m, with the sign
// already set in z.
func (z *Float) setBits64(m uint64, exp int64) *Float {
	var buf [64 / _W]Word
	z.acc = DefaultEnv.roundTo(z, nat(buf[:0]).setUint64(m), exp, z.neg, z.mode)
	return z
}

// SetFloat sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to the precision of x, or MinPrec if that is
// smaller. A NaN x cannot occur since big.Float has no NaN.
func (z *Float) SetFloat(x *big.Float) *Float {
	if z.prec == 0 {
		z.prec = umax32(uint32(x.Prec()), MinPrec)
	}
	z.acc = Exact
	z.neg = x.Signbit()
	switch {
	case x.IsInf():
		z.form = inf
		return z
	case x.Sign() == 0:
		z.form = zero
		return z
	}

	var mant big.Float
	exp := x.MantExp(&mant)
	p := mant.MinPrec()
	i, _ := mant.SetMantExp(&mant, int(p)).Int(nil)
	i.Abs(i)
	n := wordsFor(uint32(p))
	i.Lsh(i, uint(n*_W)-p)
	m := make(nat, n)
	for j, w := range i.Bits() {
		m[j] = Word(w)
	}
	z.acc = DefaultEnv.roundTo(z, m, int64(exp), z.neg, z.mode)
	return z
}

// Float sets z to the exact value of x and returns z. If z is nil, a new
// big.Float is allocated. z's precision and rounding mode are set to those
// of x.
func (x *Float) Float(z *big.Float) *big.Float {
	if debugFloat {
		x.validate()
	}
	if z == nil {
		z = new(big.Float)
	}
	z.SetMode(bigModes[x.mode])
	z.SetPrec(uint(x.prec))
	switch x.form {
	case zero:
		z.SetInt64(0)
		if x.neg {
			z.Neg(z)
		}
	case inf:
		z.SetInf(x.neg)
	case finite:
		ws := make([]big.Word, len(x.mant))
		for i, w := range x.mant {
			ws[i] = big.Word(w)
		}
		var i big.Int
		z.SetInt(i.SetBits(ws))
		z.SetMantExp(z, int(x.exp)-len(x.mant)*_W)
		if x.neg {
			z.Neg(z)
		}
	}
	return z
}

// Float64 returns the float64 value nearest to x and an indication of any
// rounding error. The rounding is ToNearestEven.
func (x *Float) Float64() (float64, Accuracy) {
	f, acc := x.Float(nil).SetMode(big.ToNearestEven).Float64()
	return f, Accuracy(acc)
}

// Text converts x to a string according to the given format and precision,
// as big.Float.Text does.
func (x *Float) Text(format byte, prec int) string {
	return x.Float(nil).Text(format, prec)
}

// String formats x like x.Text('g', 10).
// String is intended for debugging; use Text for precise control.
func (x *Float) String() string {
	return x.Text('g', 10)
}

// Format implements fmt.Formatter. It accepts the formats of big.Float.
func (x *Float) Format(s fmt.State, format rune) {
	x.Float(nil).Format(s, format)
}
