// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for Floats.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *mpfloat.Float
//
// create a new mpfloat.Float set to the value of x, and rounded using c's
// precision and rounding mode.
//
// Operators that set a receiver z to function of other Float arguments like:
//
//	func (c *Context) UnaryOp(z, x *mpfloat.Float) *mpfloat.Float
//	func (c *Context) BinaryOp(z, x, y *mpfloat.Float) *mpfloat.Float
//
// set z to the result of the operation, rounded using the c's precision and
// rounding mode, with results range checked by c's Env, and return z.
//
// A Context catches NaN errors: if an operation generates a NaN, the operation
// will silently succeed with an undefined result. Further operations with the
// context will be no-ops (they simply return the receiver z) until
// (*Context).Err is called to check for errors.
package context

import (
	"errors"
	"math/big"

	"github.com/db47h/mpfloat"
)

// DefaultPrec is the precision used by New when given a zero precision.
const DefaultPrec = 53

// A Context is a wrapper around Floats that facilitates management of
// rounding modes, precision, exponent range and error handling.
type Context struct {
	prec uint32
	mode mpfloat.RoundingMode
	env  *mpfloat.Env
	err  error
}

// New creates a new context with the given precision and rounding mode, using
// mpfloat.DefaultEnv. If prec is 0, it will be set to DefaultPrec.
func New(prec uint, mode mpfloat.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec).SetEnv(mpfloat.DefaultEnv)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() mpfloat.RoundingMode {
	return c.mode
}

// Prec returns the mantissa precision of c in bits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// Env returns the numeric environment of c.
func (c *Context) Env() *mpfloat.Env {
	return c.env
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode mpfloat.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec == 0, it is set to
// DefaultPrec. A prec below MinPrec is set to MinPrec.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = DefaultPrec
	}
	// general case
	if prec > mpfloat.MaxPrec {
		prec = mpfloat.MaxPrec
	}
	if prec < mpfloat.MinPrec {
		prec = mpfloat.MinPrec
	}
	c.prec = uint32(prec)
	return c
}

// SetEnv sets the numeric environment of c and returns c. A nil env selects
// mpfloat.DefaultEnv.
func (c *Context) SetEnv(env *mpfloat.Env) *Context {
	if env == nil {
		env = mpfloat.DefaultEnv
	}
	c.env = env
	return c
}

// New returns a new mpfloat.Float with value 0, precision and rounding mode
// set to c's precision and rounding mode.
func (c *Context) New() *mpfloat.Float {
	return new(mpfloat.Float).SetMode(c.mode).SetPrec(uint(c.prec))
}

// NewInt64 returns a new *mpfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewInt64(x int64) *mpfloat.Float {
	return c.New().SetInt64(x)
}

// NewUint64 returns a new *mpfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewUint64(x uint64) *mpfloat.Float {
	return c.New().SetUint64(x)
}

// NewFloat returns a new *mpfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewFloat(x *big.Float) *mpfloat.Float {
	return c.New().SetFloat(x)
}

// NewFloat64 returns a new *mpfloat.Float set to the (possibly rounded) value
// of x. A NaN x is recorded as an error and the returned value is nil.
func (c *Context) NewFloat64(x float64) (r *mpfloat.Float) {
	defer c.catch(func() { r = nil })
	return c.New().SetFloat64(x)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// catch recovers an mpfloat.ErrNaN panic into c.err and calls done. Other
// panics are propagated.
func (c *Context) catch(done func()) {
	r := recover()
	if r == nil {
		return
	}
	var nan mpfloat.ErrNaN
	if err, ok := r.(error); !ok || !errors.As(err, &nan) {
		panic(r)
	}
	c.err = nan
	done()
}

// Round sets z's to the value of x and returns z rounded using c's precision
// and rounding mode, and range checked by c's Env.
func (c *Context) Round(z, x *mpfloat.Float) *mpfloat.Float {
	if c.err != nil {
		return z
	}
	z.Copy(x).SetMode(c.mode).SetPrec(uint(c.prec))
	c.env.CheckRange(z, z.Acc(), c.mode)
	return z
}

// dest returns a Float with c's precision and rounding mode to hold the
// result of an operation on ops to be stored in z. This is z itself unless
// changing the precision of z would alter one of the operands.
func (c *Context) dest(z *mpfloat.Float, ops ...*mpfloat.Float) *mpfloat.Float {
	if z.Prec() == uint(c.prec) {
		return z.SetMode(c.mode)
	}
	for _, x := range ops {
		if x == z {
			return c.New()
		}
	}
	return z.SetMode(c.mode).SetPrec(0).SetPrec(uint(c.prec))
}

// store moves the result t of an operation into z.
func store(z, t *mpfloat.Float) *mpfloat.Float {
	if t != z {
		z.Copy(t)
	}
	return z
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *mpfloat.Float) (r *mpfloat.Float) {
	if c.err != nil {
		return z
	}
	defer c.catch(func() { r = z })
	t := c.dest(z, x, y)
	c.env.Add(t, x, y, c.mode)
	return store(z, t)
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *mpfloat.Float) (r *mpfloat.Float) {
	if c.err != nil {
		return z
	}
	defer c.catch(func() { r = z })
	t := c.dest(z, x, y)
	c.env.Sub(t, x, y, c.mode)
	return store(z, t)
}

// Float64Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Float64Sub(z *mpfloat.Float, x float64, y *mpfloat.Float) (r *mpfloat.Float) {
	if c.err != nil {
		return z
	}
	defer c.catch(func() { r = z })
	t := c.dest(z, y)
	c.env.Float64Sub(t, x, y, c.mode)
	return store(z, t)
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (c *Context) Neg(z, x *mpfloat.Float) *mpfloat.Float {
	if c.err != nil {
		return z
	}
	return store(z, c.dest(z, x).Neg(x))
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (c *Context) Abs(z, x *mpfloat.Float) *mpfloat.Float {
	if c.err != nil {
		return z
	}
	return store(z, c.dest(z, x).Abs(x))
}
