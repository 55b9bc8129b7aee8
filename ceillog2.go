// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// CeilLog2 returns ⌈log2(n)⌉, the number of bits needed to represent n-1.
// CeilLog2(1) == 0. It panics if n == 0.
func CeilLog2[T constraints.Unsigned](n T) int {
	if n == 1 {
		return 0
	}
	if n == 0 {
		panic("mpfloat: CeilLog2 of zero")
	}
	return bits.Len64(uint64(n - 1))
}
