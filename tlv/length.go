package tlv

import (
	"fmt"
)

// ReadLength decodes the length octets of a TLV at the current position of c
// and advances c past them. The short form, the long form with up to
// [MaxLengthOctets] subsequent octets and the indefinite form are supported.
// For the indefinite form [LengthIndefinite] is returned.
//
// Long-form lengths with more length octets produce an [ErrUnsupportedLength]
// error rather than being truncated. Errors are of type [*SyntaxError].
func ReadLength(c *Cursor) (int, error) {
	start := c.Pos()
	b, err := c.ReadByte()
	if err != nil {
		return 0, err
	}
	if b&0x80 == 0 {
		// The length is encoded in the bottom 7 bits.
		return int(b), nil
	}
	if b == 0x80 {
		return LengthIndefinite, nil
	}
	// Bottom 7 bits give the number of length bytes to follow.
	numBytes := int(b & 0x7f)
	if numBytes > MaxLengthOctets {
		return 0, &SyntaxError{
			Err:        fmt.Errorf("%w: %d length octets", ErrUnsupportedLength, numBytes),
			ByteOffset: int64(start),
		}
	}
	var l uint32
	for ; numBytes > 0; numBytes-- {
		if b, err = c.ReadByte(); err != nil {
			return 0, err
		}
		l = l<<8 | uint32(b)
	}
	return int(l), nil
}
