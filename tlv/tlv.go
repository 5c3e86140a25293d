// Package tlv decodes the tag-length-value (TLV) format used by the Basic
// Encoding Rules (BER) and related encoding rules as specified in
// [Rec. ITU-T X.690] into a tree of [Node] values.
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// The decoder in this package is permissive. It does not know the ASN.1
// definitions of its input and only validates that the nesting of data value
// encodings is consistent. It is intended for inspecting encodings such as
// certificates or keys whose structure is not known ahead of time.
//
// # Headers and Values
//
// In BER each value is encoded using a tag-length-value format. The tag and
// length (we call them a header) are represented by the [Header] type. Values
// can use the primitive or constructed encoding. Values using the constructed
// encoding are followed by more BER-encoded values and can either end
// implicitly (when using definite-length encoding) or explicitly (indefinite
// length, terminated by an end-of-contents marker).
//
// # Encapsulation
//
// Many formats wrap complete encodings inside a primitive BIT STRING or OCTET
// STRING (for example the public key of a certificate). The decoder detects
// this case heuristically (see [Encapsulates]) and decodes the wrapped
// encoding as children of the primitive node.
//
// # Limitations
//
//   - Tag numbers are limited to a single identifier octet.
//   - Length fields are limited to three length octets (lengths below 16 MiB).
//   - The decoder does not impose a nesting limit unless [Decoder.MaxDepth] is
//     set.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package tlv

import (
	"math"
	"strconv"

	"codello.dev/asn1tree"
)

// TagEndOfContents is the identifier octet of the end-of-contents marker that
// terminates an indefinite-length constructed element.
const TagEndOfContents asn1tree.Tag = 0x00

// LengthIndefinite when used as a magic number for the length of a [Header]
// indicates that the data value is encoded using the constructed
// indefinite-length format.
const LengthIndefinite = -1

// MaxLengthOctets is the maximum number of length octets supported by
// [ReadLength].
const MaxLengthOctets = 3

// CombinedLength returns the length of a data value encoding (not including its
// header) consisting of data value encodings of the specified lengths. If any
// of the passed lengths are [LengthIndefinite] or the result does not fit into
// the int type, the result is [LengthIndefinite].
func CombinedLength(ls ...int) int {
	sum := 0
	for _, l := range ls {
		if l == LengthIndefinite {
			return LengthIndefinite
		}
		if l > math.MaxInt-sum { // overflow
			return LengthIndefinite
		}
		sum += l
	}
	return sum
}

// Header represents a TLV header. The [Header.Length] may be [LengthIndefinite]
// if an indefinite-length encoding is used.
type Header struct {
	Tag    asn1tree.Tag
	Length int
}

// String returns a string representation of h.
func (h Header) String() string {
	if h == (Header{}) {
		return "EndOfContents"
	}
	s := h.Tag.String()
	if h.Length == LengthIndefinite {
		return s + ":indefinite"
	}
	return s + ":" + strconv.Itoa(h.Length)
}

// requireKeyedLiterals can be embedded in a struct to require keyed literals.
type requireKeyedLiterals struct{}

// nonComparable can be embedded in a struct to prevent comparability.
type nonComparable [0]func()
