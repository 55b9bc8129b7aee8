// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

// uadd sets z to ±(|x|+|y|), with the sign given by neg, rounded to z.prec
// bits. x and y must be finite and non-zero, z.prec > 0. z may alias x or y.
func (e *Env) uadd(z, x, y *Float, neg bool, mode RoundingMode) Accuracy {
	if x.exp < y.exp {
		x, y = y, x
	}
	exp := int64(x.exp)
	d := uint64(exp - int64(y.exp))

	// The sum is computed in a window of at least z.prec+2 bits plus a guard
	// word, scaled by 2**(exp+1) so that it cannot carry out. Bits of y
	// falling off the window only matter as a sticky bit.
	n := max(len(x.mant), int((int64(z.prec)+2+_W-1)/_W)) + 1
	tp, up := getNat(n), getNat(n)
	defer putNat(tp)
	defer putNat(up)
	t, u := *tp, *up

	shrInto(t, x.mant, 1)
	sticky := shrInto(u, y.mant, d+1)
	addVV(t, t, u)
	if sticky {
		t[0] |= 1
	}
	if t[n-1]&msb == 0 {
		shlVU(t, t, 1)
	} else {
		exp++
	}
	return e.roundTo(z, t, exp, neg, mode)
}
