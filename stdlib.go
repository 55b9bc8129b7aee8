// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file mirrors types and constants from math/big.

package mpfloat

import (
	"math"

	"github.com/zeebo/errs"
)

// Error is the error class of errors returned by this package.
var Error = errs.Class("mpfloat")

// Exponent and precision limits.
const (
	MaxExp  = math.MaxInt32  // largest supported exponent
	MinExp  = math.MinInt32  // smallest supported exponent
	MaxPrec = math.MaxUint32 // largest (theoretically) supported precision; likely memory-limited
	MinPrec = 2              // smallest non-zero precision
)

// Internal representation: The mantissa bits x.mant of a nonzero finite
// Float x are stored in a nat slice of exactly ceil(x.prec/_W) words. The
// most significant bit of the last word is set, and bits beyond x.prec are
// zero. The value of x is 0.mant * 2**x.exp.
//
// A zero or non-finite Float x ignores x.mant and x.exp.
//
// x                 form      neg      mant         exp
// ----------------------------------------------------------
// ±0                zero      sign     -            -
// 0 < |x| < +Inf    finite    sign     mantissa     exponent
// ±Inf              inf       sign     -            -

// A form value describes the internal representation.
type form byte

// The form value order is relevant - do not change!
const (
	zero form = iota
	finite
	inf
)

// RoundingMode determines how a Float value is rounded to the
// desired precision. Rounding may change the Float value; the
// rounding error is described by the Float's Accuracy.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

//go:generate stringer -type=RoundingMode

// towardZero reports whether rounding a value of the given sign with mode
// moves it toward zero.
func (mode RoundingMode) towardZero(neg bool) bool {
	switch mode {
	case ToZero:
		return true
	case ToPositiveInf:
		return neg
	case ToNegativeInf:
		return !neg
	}
	return false
}

// Accuracy describes the rounding error produced by the most recent
// operation that generated a Float value, relative to the exact value.
type Accuracy int8

// Constants describing the Accuracy of a Float.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

//go:generate stringer -type=Accuracy

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

// ternary converts a rounding direction in magnitude (<0 truncated, >0
// rounded away from zero) into an Accuracy for a value of the given sign.
func ternary(inex int, neg bool) Accuracy {
	if inex == 0 {
		return Exact
	}
	return makeAcc((inex > 0) != neg)
}

// magnitude is the inverse of ternary.
func (acc Accuracy) magnitude(neg bool) int {
	if neg {
		return -int(acc)
	}
	return int(acc)
}

// An ErrNaN panic is raised by a Float operation that would lead to
// a NaN under IEEE-754 rules. An ErrNaN implements the error interface.
type ErrNaN struct {
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}

func umax32(x, y uint32) uint32 {
	if x > y {
		return x
	}
	return y
}

func same(x, y []Word) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// wordsFor returns the number of words needed to hold prec bits.
func wordsFor(prec uint32) int {
	return int((uint64(prec) + _W - 1) / _W)
}
