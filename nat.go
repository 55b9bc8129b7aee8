// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import "sync"

// nat is the significand of a Float, a fraction of the form
//
//   x = (x[n-1]*_B^(n-1) + ... + x[1]*_B + x[0]) / _B^n
//
// with _B = 2**_W. The most significant word is x[n-1]. Unlike big.nat, a
// nat holding a finite value is MSB-normalized: the top bit of x[n-1] is set.
type nat []Word

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most nats start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// setUint64 sets z to the words of x, least significant first.
func (z nat) setUint64(x uint64) nat {
	if w := Word(x); uint64(w) == x {
		z = z.make(1)
		z[0] = w
		return z
	}
	z = z.make(2)
	z[1] = Word(x >> 32)
	z[0] = Word(x)
	return z
}

// isPow2 reports whether x is exactly 0.1000...0 in binary.
func (x nat) isPow2() bool {
	n := len(x)
	if n == 0 || x[n-1] != msb {
		return false
	}
	for _, w := range x[:n-1] {
		if w != 0 {
			return false
		}
	}
	return true
}

// setOnes sets z to the largest mantissa of prec bits, 0.111...1.
func (z nat) setOnes(prec uint32) nat {
	z = z.make(wordsFor(prec))
	for i := range z {
		z[i] = _M
	}
	z[0] &^= lowMask(uint(len(z))*_W - uint(prec))
	return z
}

func (x nat) nonZero() bool {
	for _, w := range x {
		if w != 0 {
			return true
		}
	}
	return false
}

// shrInto sets z to the bits of x shifted s bits to the right, with the top
// of x aligned with the top of z before shifting. Bits falling off the low
// end of z are dropped; shrInto reports whether any of them was set.
func shrInto(z, x nat, s uint64) (sticky bool) {
	clear(z)
	m, nx := len(z), len(x)
	if s >= uint64(m)*_W {
		return x.nonZero()
	}
	ws, bs := int(s/_W), uint(s%_W)
	tp := getNat(nx + 1)
	defer putNat(tp)
	t := *tp
	t[0] = shrVU(t[1:], x, bs)
	// t[nx] lands in z[m-1-ws]
	off := m - 1 - nx - ws
	for j, w := range t {
		if k := off + j; k >= 0 {
			z[k] = w
		} else if w != 0 {
			sticky = true
		}
	}
	return sticky
}

// bytes writes the words of x into buf in big-endian order, most significant
// word first. buf must hold len(x)*_S bytes.
func (x nat) bytes(buf []byte) {
	i := 0
	for j := len(x) - 1; j >= 0; j-- {
		w := x[j]
		for k := _S - 1; k >= 0; k-- {
			buf[i+k] = byte(w)
			w >>= 8
		}
		i += _S
	}
}

// setBytes interprets buf as big-endian words, most significant first.
// len(buf) must be a multiple of _S.
func (z nat) setBytes(buf []byte) nat {
	n := len(buf) / _S
	z = z.make(n)
	for j := 0; j < n; j++ {
		var w Word
		for _, b := range buf[j*_S : (j+1)*_S] {
			w = w<<8 | Word(b)
		}
		z[n-1-j] = w
	}
	return z
}

// Scratch nats are pooled by size class: class c holds nats of capacity 1<<c.
var natPools [_W]sync.Pool

// getNat returns a *nat of len n > 0. The contents may not be zero.
// The pools hold *nat to avoid allocation when converting to interface{}.
func getNat(n int) *nat {
	c := CeilLog2(uint(n))
	var z *nat
	if v := natPools[c].Get(); v != nil {
		z = v.(*nat)
	}
	if z == nil {
		z = new(nat)
		*z = make(nat, n, 1<<c)
	}
	*z = (*z)[:n]
	return z
}

func putNat(x *nat) {
	natPools[CeilLog2(uint(cap(*x)))].Put(x)
}
