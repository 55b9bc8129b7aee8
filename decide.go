// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

// roundAction is the final step applied to a truncated difference.
type roundAction byte

const (
	truncate roundAction = iota // keep the truncated value
	addULP                      // add one unit in the last place
	subULP                      // subtract one unit in the last place
)

// subTail iterates over the words of the aligned operands b and c that lie
// below the destination window, most significant first. Missing words read
// as zero.
type subTail struct {
	bp, cp nat
	bn     int // words of bp below the window
	cn     int // words of cp below the window, may exceed len(cp)
	cn0    int // len(cp)
}

func (t *subTail) more() bool {
	return t.bn > 0 || t.cn > 0
}

func (t *subTail) next() (bb, cc Word) {
	if t.bn > 0 {
		t.bn--
		bb = t.bp[t.bn]
	}
	if t.cn > 0 {
		t.cn--
		if t.cn < t.cn0 {
			cc = t.cp[t.cn]
		}
	}
	return bb, cc
}

// decide chooses how to round the truncated difference high(b)-high(c).
// mode is ToNearestEven, ToZero or AwayFromZero (directed modes must be
// resolved against the sign of the result beforehand). rc holds the sh bits
// masked off the low word of the window and odd is the lowest retained bit.
// The returned inex is the direction of the final result with respect to the
// exact difference, in magnitude.
func decide(mode RoundingMode, sh uint, rc Word, odd bool, t *subTail) (act roundAction, inex int) {
	exact, down := true, false
	if mode == ToNearestEven {
		if sh > 0 {
			half := Word(1) << (sh - 1)
			// undecided when rc == half, or when rc == 0 for the accuracy
			exact = rc == 0
			down = rc < half
			if rc > half {
				return addULP, 1
			}
			if rc > 0 && down {
				return truncate, -1
			}
		}
	} else if rc != 0 {
		if mode == ToZero {
			return truncate, -1
		}
		return addULP, 1
	}

	for k := 0; t.more(); k = 1 {
		bb, cc := t.next()
		if k == 0 && !down {
			// low(b) < low(c); later words only refine the comparison
			// against half an ulp
			down = bb < cc
		}
		if mode == ToNearestEven && sh == 0 && k == 0 {
			// No masked bits: compare low(b)-low(c) against half an ulp
			// straddling the word boundary.
			exact = bb == cc
			if down {
				if cc >= msb {
					cc -= msb
				} else {
					bb += msb
				}
			} else {
				if cc < msb {
					cc += msb
				} else {
					bb -= msb
				}
			}
		}
		switch {
		case bb < cc:
			switch mode {
			case ToZero:
				return subULP, -1
			case AwayFromZero:
				return truncate, 1
			}
			switch {
			case exact && sh == 0:
				// low(b) == low(c) + half so far
				if k != 0 {
					return truncate, 1
				}
			case down && sh == 0:
				return subULP, -1
			case exact:
				return truncate, 1
			default:
				return truncate, -1
			}
		case bb > cc:
			switch mode {
			case ToZero:
				return truncate, -1
			case AwayFromZero:
				return addULP, 1
			}
			switch {
			case exact:
				return truncate, -1
			case down:
				return truncate, 1
			default:
				return addULP, 1
			}
		}
	}

	if mode == ToNearestEven && !exact {
		// tie
		if odd {
			if down {
				return subULP, -1
			}
			return addULP, 1
		}
		if down {
			return truncate, 1
		}
		return truncate, -1
	}
	return truncate, 0
}
