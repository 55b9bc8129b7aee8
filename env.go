// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Flags records exceptional conditions raised by operations on an Env.
type Flags uint32

// Exception flags.
const (
	Underflow Flags = 1 << iota
	Overflow
	Inexact
	NaN
)

// An Env is the numeric environment of Float operations: the exponent range
// [Emin, Emax] that every finite result must fit into, sticky exception
// flags and a trace logger.
//
// The exponent range of an Env is fixed at creation. Flags are updated
// atomically, so that an Env can be shared by concurrent operations on
// distinct operands.
type Env struct {
	emin, emax int64
	flags      atomic.Uint32
	log        zerolog.Logger
}

// DefaultEnv is the Env used by the methods of Float. Its exponent range is
// [MinExp, MaxExp].
var DefaultEnv = newEnv(MinExp, MaxExp, zerolog.Nop())

func newEnv(emin, emax int64, log zerolog.Logger) *Env {
	return &Env{emin: emin, emax: emax, log: log}
}

// NewEnv returns a new Env with exponent range [emin, emax] and a disabled
// logger.
func NewEnv(emin, emax int) (*Env, error) {
	if emin > emax {
		return nil, Error.New("invalid exponent range: emin %d > emax %d", emin, emax)
	}
	if emin < MinExp || emax > MaxExp {
		return nil, Error.New("exponent range [%d, %d] exceeds [%d, %d]", emin, emax, MinExp, MaxExp)
	}
	return newEnv(int64(emin), int64(emax), zerolog.Nop()), nil
}

// WithLogger returns a copy of e with clear flags that logs to l.
// Operations are logged at trace level.
func (e *Env) WithLogger(l zerolog.Logger) *Env {
	return newEnv(e.emin, e.emax, l)
}

// Emin returns the smallest exponent of a finite value in e.
func (e *Env) Emin() int { return int(e.emin) }

// Emax returns the largest exponent of a finite value in e.
func (e *Env) Emax() int { return int(e.emax) }

// Flags returns the flags raised since e was created or since the last call
// to ClearFlags.
func (e *Env) Flags() Flags {
	return Flags(e.flags.Load())
}

// ClearFlags clears all flags of e.
func (e *Env) ClearFlags() {
	e.flags.Store(0)
}

func (e *Env) raise(f Flags) {
	for {
		old := e.flags.Load()
		if old&uint32(f) == uint32(f) || e.flags.CompareAndSwap(old, old|uint32(f)) {
			return
		}
	}
}

// wide returns a fresh Env with the widest exponent range.
func (e *Env) wide() *Env {
	return newEnv(MinExp, MaxExp, e.log)
}

// overflow sets z to the overflowed value of sign neg: ±Inf, or the largest
// finite value if mode rounds toward zero.
func (e *Env) overflow(z *Float, mode RoundingMode, neg bool) Accuracy {
	e.raise(Overflow | Inexact)
	z.neg = neg
	if mode.towardZero(neg) {
		z.form = finite
		z.exp = int32(e.emax)
		z.mant = z.mant.setOnes(z.prec)
		return ternary(-1, neg)
	}
	z.form = inf
	return ternary(1, neg)
}

// underflow sets z to the underflowed value of sign neg: ±0 if mode rounds
// toward zero, the smallest finite value 0.1*2**emin otherwise.
// ToNearestEven rounds away; callers that need round to nearest must switch
// to ToZero when the exact value is at most half the smallest value.
func (e *Env) underflow(z *Float, mode RoundingMode, neg bool) Accuracy {
	e.raise(Underflow | Inexact)
	z.neg = neg
	if mode.towardZero(neg) {
		z.form = zero
		return ternary(-1, neg)
	}
	z.form = finite
	z.exp = int32(e.emin)
	z.mant = z.mant.make(wordsFor(z.prec))
	clear(z.mant)
	z.mant[len(z.mant)-1] = msb
	return ternary(1, neg)
}

// underflowMode returns the mode to pass to underflow for a value rounded to
// exponent exp < emin. pow2 reports whether the mantissa is a power of two and
// inex is the rounding direction in magnitude.
func (e *Env) underflowMode(mode RoundingMode, exp int64, pow2 bool, inex int) RoundingMode {
	if mode == ToNearestEven && (exp < e.emin-1 || (pow2 && inex >= 0)) {
		return ToZero
	}
	return mode
}

// commit sets the exponent of the finite z to exp if it is in range and
// applies the overflow/underflow policy otherwise. acc is the accuracy of the
// rounding that produced z.
func (e *Env) commit(z *Float, exp int64, acc Accuracy, mode RoundingMode) Accuracy {
	switch {
	case exp < e.emin:
		mode = e.underflowMode(mode, exp, z.mant.isPow2(), acc.magnitude(z.neg))
		return e.underflow(z, mode, z.neg)
	case exp > e.emax:
		return e.overflow(z, mode, z.neg)
	}
	z.exp = int32(exp)
	if acc != Exact {
		e.raise(Inexact)
	}
	return acc
}

// CheckRange applies e's exponent range to z, a value already rounded with
// mode and accuracy acc, and returns the resulting accuracy. A z outside the
// range is replaced by its overflowed or underflowed value.
func (e *Env) CheckRange(z *Float, acc Accuracy, mode RoundingMode) Accuracy {
	if z.form == finite {
		acc = e.commit(z, int64(z.exp), acc, mode)
	} else if acc != Exact {
		e.raise(Inexact)
	}
	z.acc = acc
	return acc
}

// roundTo sets z to ±m*2**exp rounded to z.prec bits, m being an
// MSB-normalized mantissa, and applies e's exponent range.
func (e *Env) roundTo(z *Float, m nat, exp int64, neg bool, mode RoundingMode) Accuracy {
	var r rounding
	z.mant, r = rndRaw(z.mant, m, z.prec, neg, mode)
	z.form = finite
	z.neg = neg
	if r.carry {
		exp++
	}
	return e.commit(z, exp, ternary(r.dir(), neg), mode)
}

// nextToZero replaces the finite z by its neighbour toward zero at z's
// precision. The result may be zero.
func (e *Env) nextToZero(z *Float) {
	n := len(z.mant)
	sh := uint(n)*_W - uint(z.prec)
	subVW(z.mant, z.mant, Word(1)<<sh)
	if z.mant[n-1]&msb != 0 {
		return
	}
	// z was a power of two
	if int64(z.exp) <= e.emin {
		z.form = zero
		e.raise(Underflow)
		return
	}
	z.exp--
	z.mant.setOnes(z.prec)
}
