// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	type pair [2]Word
	for i, tc := range []struct {
		mode RoundingMode
		sh   uint
		rc   Word
		odd  bool
		tail []pair // (bb, cc), most significant first
		act  roundAction
		inex int
	}{
		{ToNearestEven, 3, 5, false, nil, addULP, 1},
		{ToNearestEven, 3, 3, false, nil, truncate, -1},
		{ToNearestEven, 3, 4, true, nil, addULP, 1},
		{ToNearestEven, 3, 4, false, nil, truncate, -1},
		{ToNearestEven, 3, 4, true, []pair{{0, 1}}, truncate, -1},
		{ToNearestEven, 3, 4, false, []pair{{1, 0}}, addULP, 1},
		{ToNearestEven, 3, 0, false, []pair{{1, 0}}, truncate, -1},
		{ToNearestEven, 3, 0, false, []pair{{0, 1}}, truncate, 1},
		{ToNearestEven, 3, 0, true, []pair{{7, 7}, {0, 0}}, truncate, 0},
		// no masked bits: the first tail word holds the rounding bit
		{ToNearestEven, 0, 0, true, []pair{{msb, 0}}, addULP, 1},
		{ToNearestEven, 0, 0, false, []pair{{msb, 0}}, truncate, -1},
		{ToNearestEven, 0, 0, true, []pair{{0, msb}}, subULP, -1},
		{ToNearestEven, 0, 0, false, []pair{{0, msb}}, truncate, 1},
		{ToNearestEven, 0, 0, false, []pair{{msb, 0}, {1, 0}}, addULP, 1},
		{ToNearestEven, 0, 0, false, []pair{{msb, 0}, {0, 1}}, truncate, -1},
		{ToNearestEven, 0, 0, false, []pair{{msb + 1, 0}}, addULP, 1},
		{ToNearestEven, 0, 0, false, []pair{{msb - 1, 0}}, truncate, -1},
		{ToNearestEven, 0, 0, false, []pair{{0, msb + 1}}, subULP, -1},
		{ToNearestEven, 0, 0, false, []pair{{0, msb - 1}}, truncate, 1},
		{ToNearestEven, 0, 0, false, []pair{{5, 5}, {0, 1}}, truncate, 1},
		{ToNearestEven, 0, 0, false, []pair{{5, 5}, {1, 0}}, truncate, -1},
		{ToNearestEven, 0, 0, false, []pair{{5, 5}}, truncate, 0},
		{ToZero, 3, 1, false, nil, truncate, -1},
		{AwayFromZero, 3, 1, false, nil, addULP, 1},
		{ToZero, 3, 0, false, []pair{{0, 1}}, subULP, -1},
		{AwayFromZero, 3, 0, false, []pair{{0, 1}}, truncate, 1},
		{ToZero, 0, 0, false, []pair{{0, 0}, {1, 0}}, truncate, -1},
		{AwayFromZero, 0, 0, false, []pair{{0, 0}, {1, 0}}, addULP, 1},
		{ToZero, 0, 0, false, nil, truncate, 0},
		{AwayFromZero, 5, 0, false, []pair{{3, 3}}, truncate, 0},
	} {
		var tail subTail
		n := len(tc.tail)
		tail.bp, tail.cp = make(nat, n), make(nat, n)
		for j, p := range tc.tail {
			tail.bp[n-1-j], tail.cp[n-1-j] = p[0], p[1]
		}
		tail.bn, tail.cn, tail.cn0 = n, n, n
		act, inex := decide(tc.mode, tc.sh, tc.rc, tc.odd, &tail)
		require.Equal(t, tc.act, act, "#%d", i)
		require.Equal(t, tc.inex, inex, "#%d", i)
	}
}

func TestSubTail(t *testing.T) {
	// c has one implicit zero word above its data
	tail := subTail{bp: nat{1, 2, 3}, cp: nat{4, 5}, bn: 3, cn: 3, cn0: 2}
	var got [][2]Word
	for tail.more() {
		bb, cc := tail.next()
		got = append(got, [2]Word{bb, cc})
	}
	require.Equal(t, [][2]Word{{3, 0}, {2, 5}, {1, 4}}, got)

	// b runs out first
	tail = subTail{bp: nat{9}, cp: nat{4, 5}, bn: 1, cn: 2, cn0: 2}
	got = got[:0]
	for tail.more() {
		bb, cc := tail.next()
		got = append(got, [2]Word{bb, cc})
	}
	require.Equal(t, [][2]Word{{9, 5}, {0, 4}}, got)
}
