// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

// rounding describes what rndRaw did to a mantissa.
type rounding struct {
	inexact bool // some non-zero bits were dropped
	inc     bool // the magnitude was rounded up
	tie     bool // the dropped bits were exactly one half ulp (ToNearestEven only)
	carry   bool // rounding up overflowed into a new top bit; the exponent must be incremented
}

// dir returns the direction of the rounding in magnitude.
func (r rounding) dir() int {
	switch {
	case !r.inexact:
		return 0
	case r.inc:
		return 1
	}
	return -1
}

// rndRaw sets z to the MSB-normalized mantissa x rounded to prec bits
// according to mode and the sign neg, and returns z. z may alias x.
//
// On carry, z is set to 0.1000...0 and the caller must increment the
// exponent.
func rndRaw(z, x nat, prec uint32, neg bool, mode RoundingMode) (nat, rounding) {
	var r rounding
	n := wordsFor(prec)
	sh := uint(n)*_W - uint(prec)

	var rbit, sbit bool
	if m := len(x); m >= n {
		// rounding bit and sticky bit must be read before z overwrites x
		lo := x[:m-n]
		if sh > 0 {
			half := Word(1) << (sh - 1)
			w := x[m-n]
			rbit = w&half != 0
			sbit = w&(half-1) != 0 || lo.nonZero()
		} else if len(lo) > 0 {
			top := lo[len(lo)-1]
			rbit = top&msb != 0
			sbit = top&^msb != 0 || lo[:len(lo)-1].nonZero()
		}
		z = z.make(n)
		copy(z, x[m-n:])
	} else {
		z = z.make(n)
		copy(z[n-m:], x)
		clear(z[:n-m])
	}
	z[0] &^= lowMask(sh)

	if !rbit && !sbit {
		return z, r
	}
	r.inexact = true
	switch mode {
	case ToNearestEven:
		r.inc = rbit && (sbit || z[0]&(Word(1)<<sh) != 0)
		r.tie = rbit && !sbit
	case ToZero:
		// truncate
	case AwayFromZero:
		r.inc = true
	case ToNegativeInf:
		r.inc = neg
	case ToPositiveInf:
		r.inc = !neg
	default:
		panic("unreachable")
	}
	if r.inc && addVW(z, z, Word(1)<<sh) != 0 {
		// 0.111...1 + ulp = 1.000...0
		z[n-1] = msb
		r.carry = true
	}
	return z, r
}
