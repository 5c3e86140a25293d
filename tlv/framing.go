package tlv

import (
	"codello.dev/asn1tree"
)

// Encapsulates decides whether the data value with identifier tag and content
// length should be decoded as a container. c must be positioned at the first
// content octet. c is passed by value and is never advanced.
//
// Constructed data values are always containers. A primitive BIT STRING or
// OCTET STRING is treated as a container iff its content is exactly one
// complete TLV: the prospective inner header must belong to the universal or
// context-specific class and its length must account for every remaining
// content octet. For a BIT STRING the leading unused-bits octet is skipped
// before probing. All other primitive data values are never containers.
//
// This is a heuristic. Binary content can coincidentally look like a nested
// encoding, but it rarely satisfies the exact byte accounting.
func Encapsulates(tag asn1tree.Tag, length int, c Cursor) bool {
	if tag.Constructed() {
		return true
	}
	if !tag.Is(asn1tree.TagBitString) && !tag.Is(asn1tree.TagOctetString) {
		return false
	}
	if length == LengthIndefinite {
		return false
	}
	start := c.Pos()
	if tag.Is(asn1tree.TagBitString) {
		if _, err := c.ReadByte(); err != nil { // unused bits
			return false
		}
	}
	b, err := c.ReadByte()
	if err != nil {
		return false
	}
	if sub := asn1tree.Tag(b).Class(); sub != asn1tree.ClassUniversal && sub != asn1tree.ClassContextSpecific {
		return false
	}
	subLength, err := ReadLength(&c)
	if err != nil || subLength == LengthIndefinite {
		return false
	}
	return c.Pos()-start+subLength == length
}
