// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

// usub sets z to sign(x)*(|x|-|y|) rounded to z.prec bits and returns the
// accuracy of z. x and y must be finite and non-zero, z.prec > 0. z may alias
// x or y.
func (e *Env) usub(z, x, y *Float, mode RoundingMode) Accuracy {
	sign, cancel := cmp2(x, y)
	if sign == 0 {
		z.form = zero
		z.neg = mode == ToNegativeInf
		return Exact
	}

	b, c, neg := x, y, x.neg
	if sign < 0 {
		b, c, neg = y, x, !x.neg
	}
	bexp, cexp := int64(b.exp), int64(c.exp)

	if cexp <= bexp-int64(umax32(z.prec, b.prec))-2 {
		return e.subTiny(z, b, neg, mode)
	}

	d := uint64(bexp - cexp)
	an := wordsFor(z.prec)

	// align b on the grid of z, shifted right by (-cancel) mod _W
	bm, bn := b.mant, len(b.mant)
	shiftB := uint((_W - cancel%_W) % _W)
	cancel1 := int((cancel + uint64(shiftB)) / _W)
	var bp nat
	if shiftB == 0 {
		bp = bm
		if alias(z.mant, bm) {
			t := getNat(bn)
			defer putNat(t)
			bp = *t
			copy(bp, bm)
		}
	} else {
		t := getNat(bn + 1)
		defer putNat(t)
		bp = *t
		bp[0] = shrVU(bp[1:], bm, shiftB)
		bn++
	}

	// align c, shifted right by (d-cancel) mod _W
	cm, cn := c.mant, len(c.mant)
	shiftC := uint((d%_W + _W - cancel%_W) % _W)
	var cp nat
	if shiftC == 0 {
		cp = cm
		if alias(z.mant, cm) {
			t := getNat(cn)
			defer putNat(t)
			cp = *t
			copy(cp, cm)
		}
	} else {
		t := getNat(cn + 1)
		defer putNat(t)
		cp = *t
		cp[0] = shrVU(cp[1:], cm, shiftC)
		cn++
	}
	// the high cancel2 words of cp are above the window (may be negative)
	cancel2 := int((int64(cancel) - int64(d) + int64(shiftC)) / _W)

	z.mant = z.mant.make(an)
	ap := z.mant

	// ap = high(b), the an words of bp below the cancel1 top words
	switch {
	case an+cancel1 <= bn:
		copy(ap, bp[bn-(an+cancel1):bn-cancel1])
	case cancel1 < bn:
		k := an + cancel1 - bn
		clear(ap[:k])
		copy(ap[k:], bp[:bn-cancel1])
	default:
		clear(ap)
	}

	// ap -= high(c); a borrow out of the top word is dropped
	if hi := an + cancel2; hi > 0 {
		if cancel2 >= 0 {
			if hi <= cn {
				subVV(ap, ap, cp[cn-hi:cn-cancel2])
			} else if cn > cancel2 {
				k := hi - cn
				subVV(ap[k:], ap[k:], cp[:cn-cancel2])
			}
		} else {
			var borrow Word
			if hi <= cn {
				borrow = subVV(ap[:hi], ap[:hi], cp[cn-hi:cn])
			} else {
				k := hi - cn
				borrow = subVV(ap[k:hi], ap[k:hi], cp[:cn])
			}
			subVW(ap[hi:], ap[hi:], borrow)
		}
	}

	sh := uint(an)*_W - uint(z.prec)
	rc := ap[0] & lowMask(sh)
	ap[0] &^= rc
	odd := ap[0]>>sh&1 != 0

	rmode := mode
	if mode != ToNearestEven {
		rmode = AwayFromZero
		if mode.towardZero(neg) {
			rmode = ToZero
		}
	}
	tail := subTail{bp: bp, cp: cp, bn: bn - (an + cancel1), cn: cn - (an + cancel2), cn0: cn}
	act, inex := decide(rmode, sh, rc, odd, &tail)

	exp := bexp - int64(cancel)
	switch act {
	case subULP:
		subVW(ap, ap, Word(1)<<sh)
	case addULP:
		if addVW(ap, ap, Word(1)<<sh) != 0 {
			// 0.111...1 + ulp
			ap[an-1] = msb
			exp++
		}
	}
	if act != subULP && ap[an-1]&msb == 0 {
		// the window wrapped around: the truncated difference is 1-epsilon
		ap[an-1] = msb
		exp++
	}

	z.form = finite
	z.neg = neg
	return e.commit(z, exp, ternary(inex, neg), mode)
}

// subTiny sets z to sign*|b| - |c| when |c| is too small to affect anything
// but the rounding of b at z.prec bits. The result is never exact.
func (e *Env) subTiny(z, b *Float, neg bool, mode RoundingMode) Accuracy {
	exp := int64(b.exp)
	var r rounding
	z.mant, r = rndRaw(z.mant, b.mant, z.prec, neg, mode)
	z.form = finite
	z.neg = neg
	e.raise(Inexact)

	acc := ternary(r.dir(), neg)
	switch {
	case r.tie && r.inc:
		// b was a midpoint rounded up; b-c is below it.
		if r.carry {
			z.mant.setOnes(z.prec)
		} else {
			subVW(z.mant, z.mant, Word(1)<<(uint(len(z.mant))*_W-uint(z.prec)))
		}
		acc = ternary(-1, neg)
	case r.carry:
		exp++
	case !r.inexact:
		acc = ternary(1, neg)
		if mode.towardZero(neg) {
			z.exp = int32(exp)
			e.nextToZero(z)
			if z.form == zero {
				return ternary(-1, neg)
			}
			exp = int64(z.exp)
			acc = ternary(-1, neg)
		}
	}
	return e.commit(z, exp, acc, mode)
}
