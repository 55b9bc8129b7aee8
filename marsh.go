// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Floats.

package mpfloat

import "encoding/binary"

// Gob codec version. Permits backward-compatible changes to the encoding.
const floatGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
// The Float value and all its attributes (precision,
// rounding mode, accuracy) are marshaled.
func (x *Float) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}

	// determine max. space (bytes) required for encoding
	sz := 1 + 1 + 4 // version + mode|acc|form|neg (3+2+2+1bit) + prec
	n := 0          // number of mantissa words
	if x.form == finite {
		n = wordsFor(x.prec)
		sz += 4 + n*_S // exp + mant
	}
	buf := make([]byte, sz)

	buf[0] = floatGobVersion
	b := byte(x.mode&7)<<5 | byte((x.acc+1)&3)<<3 | byte(x.form&3)<<1
	if x.neg {
		b |= 1
	}
	buf[1] = b
	binary.BigEndian.PutUint32(buf[2:], x.prec)

	if x.form == finite {
		binary.BigEndian.PutUint32(buf[6:], uint32(x.exp))
		x.mant[len(x.mant)-n:].bytes(buf[10:])
	}

	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
// The result is rounded per the precision and rounding mode of
// z unless z's precision is 0, in which case z is set exactly
// to the decoded value.
func (z *Float) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Float{}
		return nil
	}
	if len(buf) < 6 {
		return Error.New("Float.GobDecode: buffer too small (%d bytes)", len(buf))
	}

	if buf[0] != floatGobVersion {
		return Error.New("Float.GobDecode: encoding version %d not supported", buf[0])
	}

	b := buf[1]
	mode := RoundingMode((b >> 5) & 7)
	acc := Accuracy((b>>3)&3) - 1
	fm := form((b >> 1) & 3)
	prec := binary.BigEndian.Uint32(buf[2:])
	switch {
	case mode > ToPositiveInf:
		return Error.New("Float.GobDecode: invalid rounding mode %d", mode)
	case acc > Above:
		return Error.New("Float.GobDecode: invalid accuracy")
	case fm > inf:
		return Error.New("Float.GobDecode: invalid form %d", fm)
	}

	var x Float
	x.mode, x.acc, x.form, x.neg, x.prec = mode, acc, fm, b&1 != 0, prec
	if fm == finite {
		n := wordsFor(prec)
		if prec < MinPrec || len(buf) != 10+n*_S {
			return Error.New("Float.GobDecode: bad mantissa length %d for precision %d", len(buf)-10, prec)
		}
		x.exp = int32(binary.BigEndian.Uint32(buf[6:]))
		x.mant = x.mant.setBytes(buf[10:])
		if x.mant[n-1]&msb == 0 || x.mant[0]&lowMask(uint(n)*_W-uint(prec)) != 0 {
			return Error.New("Float.GobDecode: mantissa not normalized")
		}
	}

	if z.prec == 0 {
		*z = x
		return nil
	}
	z.Set(&x)
	return nil
}
