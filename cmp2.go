// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

// cmp2 compares the magnitudes of the finite non-zero x and y. It returns
// the sign of |x|-|y| and, if it is not zero, the number of leading bits
// cancelled by the subtraction: with e the exponent of the larger operand,
// the difference D satisfies
//
//	2**(e-cancel-1) <= D < 2**(e-cancel)
func cmp2(x, y *Float) (sign int, cancel uint64) {
	sign = x.ucmp(y)
	if sign == 0 {
		return 0, 0
	}
	b, c := x, y
	if sign < 0 {
		b, c = y, x
	}
	d := uint64(int64(b.exp) - int64(c.exp))

	// For d >= 2, D > |b|/2 and one guard word below b is enough. Otherwise
	// the grid must hold all of c.
	n := len(b.mant) + 1
	if d <= 1 && len(c.mant)+2 > n {
		n = len(c.mant) + 2
	}
	tp, up := getNat(n), getNat(n)
	defer putNat(tp)
	defer putNat(up)
	t, u := *tp, *up

	k := n - len(b.mant)
	clear(t[:k])
	copy(t[k:], b.mant)
	sticky := shrInto(u, c.mant, d)
	subVV(t, t, u)
	if sticky {
		// t-u-1 = floor(D) has the same bit length as D
		subVW(t, t, 1)
	}

	i := n - 1
	for t[i] == 0 {
		i--
	}
	return sign, uint64(n-1-i)*_W + uint64(nlz(t[i]))
}
