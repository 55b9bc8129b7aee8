// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mpfloat implements correctly rounded arbitrary-precision binary
floating-point addition and subtraction.

The API follows that of *big.Float. Unlike big.Float, the mantissa of a Float
is always stored in exactly ceil(prec/W) words with the most significant bit
set, and the exponent range of results is a property of an explicit numeric
environment, the Env, instead of being fixed.

The zero value for a Float corresponds to 0. Thus, new values can be declared
in the usual ways and denote 0 without further initialization:

	x := new(Float)  // x is a *Float of value 0

Alternatively, new Float values can be allocated and initialized with the
function:

	func NewFloat(f float64) *Float

More flexibility is provided with explicit setters, for instance:

	z := new(Float).SetPrec(200).SetUint64(123)    // z := 123.0

Operations on an Env take the destination, the operands and a rounding mode,
and return the accuracy of the result with respect to the exact value:

	env, _ := mpfloat.NewEnv(-1000, 1000)
	acc := env.Sub(z, x, y, mpfloat.ToZero)    // z = x - y, rounded toward zero

A result whose exponent falls outside of the Env's range overflows to ±Inf
(or the largest finite value when rounding toward zero) or underflows to ±0
(or the smallest finite value when rounding away from zero). Each Env keeps
sticky Underflow, Overflow, Inexact and NaN flags.

The methods of Float, such as

	func (z *Float) Sub(x, y *Float) *Float    // z = x - y

use DefaultEnv and the rounding mode of z.

For binary operations, the result is the receiver (usually named z in that
case); if it is one of the operands x or y it may be safely overwritten (and
its memory reused).

Operations that would produce a NaN under IEEE-754 rules, like subtracting
+Inf from +Inf, panic with an ErrNaN. The context subpackage wraps these
operations and turns such panics into errors.
*/
package mpfloat
