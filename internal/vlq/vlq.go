// Package vlq implements [Variable-length quantity] encoding as used in MIDI or
// BER. A VLQ is essentially a base-128 representation of an unsigned integer
// with the addition of the eighth bit to mark continuation of bytes. VLQ is
// identical to [LEB128] except in endianness.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
// [LEB128]: https://en.wikipedia.org/wiki/LEB128
package vlq

import (
	"errors"
	"io"
	"math/bits"
	"unsafe"
)

// ErrOverflow indicates that a VLQ does not fit into the target type.
var ErrOverflow = errors.New("vlq too large for target type")

// Read parses an unsigned VLQ from r. It returns the value and the number of
// bytes that make up the VLQ. The maximum allowed value is limited by the size
// of T. Leading zeros (encoded as 0x80 bytes) are accepted.
//
// Read will only read bytes belonging to the encoded VLQ. If r returns io.EOF
// on the first read, the returned error will be io.EOF as well. If r ends
// before the last byte of the VLQ, io.ErrUnexpectedEOF is returned.
//
// If the value does not fit into T, Read still consumes the entire VLQ and
// returns [ErrOverflow] along with the number of bytes read. This allows
// callers to continue reading after an oversized value.
func Read[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](r io.ByteReader) (ret T, n int, err error) {
	b, err := r.ReadByte()
	if err != nil {
		// io.EOF stays io.EOF
		return 0, 0, err
	}
	n = 1

	ret = T(b & 0x7f)
	numBits := bits.Len8(b & 0x7f)
	overflow := false

	for b&0x80 != 0 {
		if b, err = r.ReadByte(); err != nil {
			break
		}
		n++
		if overflow {
			continue
		}
		ret <<= 7
		ret |= T(b & 0x7f)

		if numBits == 0 {
			numBits = bits.Len8(b & 0x7f)
		} else {
			numBits += 7
		}
		if numBits > int(unsafe.Sizeof(ret)*8) {
			overflow = true
		}
	}
	if err == io.EOF {
		return 0, n, io.ErrUnexpectedEOF
	}
	if err != nil {
		return 0, n, err
	}
	if overflow {
		return 0, n, ErrOverflow
	}
	return ret, n, nil
}

// Length returns the number of bytes needed to encode n as a VLQ.
func Length[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](n T) int {
	if n == 0 {
		return 1
	}
	l := 0
	for i := n; i > 0; i >>= 7 {
		l++
	}
	return l
}

// Write encodes i as a VLQ into w. Any error returned by w is returned by this
// function.
func Write[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](w io.ByteWriter, i T) (n int, err error) {
	l := Length(i)

	j := l - 1
	for ; j >= 0 && err == nil; j-- {
		b := byte(i>>(j*7)) & 0x7f
		if j > 0 {
			b |= 0x80
		}
		err = w.WriteByte(b)
	}

	return l - 1 - j, err
}
