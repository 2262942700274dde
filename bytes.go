// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Byte import/export (§4.7). The wire format is always two's-complement
// unless isUnsigned is set, in which case the bytes are a plain
// big-magnitude encoding and negative values cannot be exported at all.

// SetBytes decodes data into a BigInt. isUnsigned selects plain-magnitude
// decoding over two's-complement; isBigEndian selects the byte order data
// is given in. An empty slice decodes to Zero.
func SetBytes(data []byte, isUnsigned, isBigEndian bool) BigInt {
	if len(data) == 0 {
		return Zero
	}
	buf := append([]byte(nil), data...)
	if isBigEndian {
		reverseBytes(buf)
	}
	if isUnsigned {
		return normalize(false, limbsFromLEBytes(buf))
	}

	neg := buf[len(buf)-1]&0x80 != 0
	if pad := (4 - len(buf)%4) % 4; pad != 0 {
		padByte := byte(0x00)
		if neg {
			padByte = 0xFF
		}
		for i := 0; i < pad; i++ {
			buf = append(buf, padByte)
		}
	}
	limbs := limbsFromLEBytes(buf)
	if neg {
		twosComplementInPlace(limbs)
		return normalize(true, limbs)
	}
	return normalize(false, limbs)
}

// Bytes encodes x. With isUnsigned set, a negative x reports
// ErrOverflow. The result is the minimal-length encoding: plain magnitude
// for unsigned, minimal two's-complement for signed (including a leading
// pad byte when needed so a positive value with its top bit set is not
// mistaken for negative).
func (x BigInt) Bytes(isUnsigned, isBigEndian bool) ([]byte, error) {
	if isUnsigned && x.IsNegative() {
		return nil, errOverflow("bigint.Bytes", "cannot encode a negative value as unsigned bytes")
	}
	if x.IsZero() {
		return []byte{0}, nil
	}

	neg, mag := x.signMag()
	var buf []byte
	if isUnsigned {
		buf = trimHighZeroBytes(leBytesFromLimbs(trim(mag)))
		if len(buf) == 0 {
			buf = []byte{0}
		}
	} else {
		n := len(trim(mag)) + 1
		limbs := twosComplementBuf(x, n)
		buf = minimalSignedBytes(leBytesFromLimbs(limbs), neg)
	}
	if isBigEndian {
		reverseBytes(buf)
	}
	return buf, nil
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// limbsFromLEBytes groups little-endian bytes into little-endian limbs,
// zero-padding the final partial limb. len(buf) need not be a multiple of
// four.
func limbsFromLEBytes(buf []byte) []uint32 {
	n := (len(buf) + 3) / 4
	limbs := make([]uint32, n)
	for i := 0; i < len(buf); i++ {
		limbs[i/4] |= uint32(buf[i]) << (8 * uint(i%4))
	}
	return limbs
}

// leBytesFromLimbs expands little-endian limbs into little-endian bytes.
func leBytesFromLimbs(limbs []uint32) []byte {
	buf := make([]byte, len(limbs)*4)
	for i, l := range limbs {
		buf[4*i] = byte(l)
		buf[4*i+1] = byte(l >> 8)
		buf[4*i+2] = byte(l >> 16)
		buf[4*i+3] = byte(l >> 24)
	}
	return buf
}

// trimHighZeroBytes drops trailing (most-significant, in little-endian
// order) zero bytes.
func trimHighZeroBytes(buf []byte) []byte {
	n := len(buf)
	for n > 0 && buf[n-1] == 0 {
		n--
	}
	return buf[:n]
}

// minimalSignedBytes trims redundant high bytes from a little-endian
// two's-complement buffer without changing its value: all-0xFF bytes while
// the next byte down still carries the sign bit (negative), or all-0x00
// bytes while the next byte down does not (non-negative). At least one
// byte is always kept.
func minimalSignedBytes(buf []byte, neg bool) []byte {
	n := len(buf)
	if neg {
		for n > 1 && buf[n-1] == 0xFF && buf[n-2]&0x80 != 0 {
			n--
		}
	} else {
		for n > 1 && buf[n-1] == 0x00 && buf[n-2]&0x80 == 0 {
			n--
		}
	}
	return buf[:n]
}
