// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import "fmt"

// Add sets z to the rounded sum x+y and returns the accuracy of z. Rounding
// is performed according to z's precision and the given mode. If z's
// precision is 0, it is changed to the larger of x's or y's precision before
// the operation. Results outside of e's exponent range overflow or
// underflow. z.Acc() is set to the returned accuracy.
//
// Add panics with ErrNaN if x and y are infinities with opposite signs.
// The value of z is undefined in that case.
func (e *Env) Add(z, x, y *Float, mode RoundingMode) Accuracy {
	return e.addSub(z, x, y, y.neg, mode, "add", "addition of infinities with opposite signs")
}

// Sub sets z to the rounded difference x-y and returns the accuracy of z.
// Precision, rounding and range are handled as for Add.
//
// Sub panics with ErrNaN if x and y are infinities with equal signs.
// The value of z is undefined in that case.
func (e *Env) Sub(z, x, y *Float, mode RoundingMode) Accuracy {
	return e.addSub(z, x, y, !y.neg, mode, "sub", "subtraction of infinities with equal signs")
}

// addSub sets z to x + (-1)**yneg * |y|.
func (e *Env) addSub(z, x, y *Float, yneg bool, mode RoundingMode, op, nanMsg string) Accuracy {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}
	e.log.Trace().Str("op", op).Stringer("x", x).Stringer("y", y).
		Uint32("prec", z.prec).Stringer("mode", mode).Msg("enter")

	var acc Accuracy
	switch {
	case x.form == finite && y.form == finite:
		if x.neg == yneg {
			// x + y == sign(x)*(|x|+|y|)
			acc = e.uadd(z, x, y, x.neg, mode)
		} else {
			// x + y == sign(x)*(|x|-|y|)
			acc = e.usub(z, x, y, mode)
		}

	case x.form == inf && y.form == inf && x.neg != yneg:
		// +Inf + -Inf
		// -Inf + +Inf
		e.raise(NaN)
		z.acc = Exact
		z.form = zero
		z.neg = false
		panic(ErrNaN{nanMsg})

	case x.form == zero && y.form == zero:
		// ±0 + ±0
		z.form = zero
		z.neg = x.neg && yneg // -0 + -0 == -0
		if x.neg != yneg {
			z.neg = mode == ToNegativeInf
		}

	case x.form == inf || y.form == zero:
		// ±Inf + y
		// x + ±0
		acc = e.setRounded(z, x, x.neg, mode)

	default:
		// ±0 + y
		// x + ±Inf
		acc = e.setRounded(z, y, yneg, mode)
	}

	z.acc = acc
	if debugFloat {
		z.validate()
	}
	e.log.Trace().Str("op", op).Stringer("z", z).Stringer("acc", acc).Msg("exit")
	return acc
}

// setRounded sets z to ±|x| (negative if neg) rounded to z.prec bits.
// x must not be zero.
func (e *Env) setRounded(z, x *Float, neg bool, mode RoundingMode) Accuracy {
	if x.form == inf {
		z.form = inf
		z.neg = neg
		return Exact
	}
	return e.roundTo(z, x.mant, int64(x.exp), neg, mode)
}

// Float64Sub sets z to the rounded difference x-y and returns the accuracy
// of z. x is converted exactly at 53 bits of precision. The difference is
// computed with the widest exponent range, and the result is then checked
// against e's range.
//
// Float64Sub panics with ErrNaN if x is a NaN or if the subtraction of
// x and y is undefined.
func (e *Env) Float64Sub(z *Float, x float64, y *Float, mode RoundingMode) Accuracy {
	var d Float
	d.SetPrec(53).SetFloat64(x)
	if d.acc != Exact {
		panic(fmt.Sprintf("inexact conversion of %g to 53 bits", x))
	}

	w := e.wide()
	acc := w.Sub(z, &d, y, mode)
	if z.form != finite {
		e.raise(w.Flags())
	}
	return e.CheckRange(z, acc, mode)
}

// Add sets z to the rounded sum x+y and returns z. If z's precision is 0,
// it is changed to the larger of x's or y's precision before the operation.
// Rounding is performed according to z's precision and rounding mode; and
// z's accuracy reports the result error relative to the exact (not rounded)
// result. Add panics with ErrNaN if x and y are infinities with opposite
// signs. The value of z is undefined in that case.
//
// Add uses DefaultEnv.
func (z *Float) Add(x, y *Float) *Float {
	DefaultEnv.Add(z, x, y, z.mode)
	return z
}

// Sub sets z to the rounded difference x-y and returns z.
// Precision, rounding, and accuracy reporting are as for Add.
// Sub panics with ErrNaN if x and y are infinities with equal
// signs. The value of z is undefined in that case.
func (z *Float) Sub(x, y *Float) *Float {
	DefaultEnv.Sub(z, x, y, z.mode)
	return z
}

// Float64Sub sets z to the rounded difference x-y and returns z.
// It uses DefaultEnv and z's rounding mode.
func (z *Float) Float64Sub(x float64, y *Float) *Float {
	DefaultEnv.Float64Sub(z, x, y, z.mode)
	return z
}
