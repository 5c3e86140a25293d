package tlv

import (
	"fmt"
	"iter"
	"strconv"

	"codello.dev/asn1tree"
)

// Node is a single decoded data value. Nodes form a tree that mirrors the
// nesting of the input. A Node refers to the buffer it was decoded from but
// does not copy it, so the buffer must not be modified while the tree is in
// use.
//
// Children is nil for primitive data values. For constructed data values and
// for encapsulating primitives (see [Encapsulates]) Children is non-nil,
// although it may be empty. Children are ordered by their position in the
// input.
//
// Nodes are created by a [Decoder] and not modified afterward. It is safe to
// inspect a tree from multiple goroutines.
type Node struct {
	Start        int          `json:"start"`  // offset of the identifier octet
	HeaderLength int          `json:"header"` // number of identifier and length octets
	Tag          asn1tree.Tag `json:"tag"`

	// Length is the number of content octets. If the data value uses the
	// indefinite-length encoding, Length is the number of octets between the
	// header and the end-of-contents marker.
	Length     int  `json:"length"`
	Indefinite bool `json:"indefinite,omitempty"`

	Children []*Node `json:"children"`

	trailer int // length of the end-of-contents marker
	buf     []byte
}

// Header returns the TLV header of n as it was encoded.
func (n *Node) Header() Header {
	if n.Indefinite {
		return Header{Tag: n.Tag, Length: LengthIndefinite}
	}
	return Header{Tag: n.Tag, Length: n.Length}
}

// TypeName returns the ASN.1 type name of n. See [asn1tree.Tag.TypeName].
func (n *Node) TypeName() string { return n.Tag.TypeName() }

// Constructed reports whether n uses the constructed encoding.
func (n *Node) Constructed() bool { return n.Tag.Constructed() }

// Encapsulates reports whether n is a primitive data value whose content was
// decoded as a nested encoding.
func (n *Node) Encapsulates() bool { return !n.Constructed() && n.Children != nil }

// ContentStart returns the offset of the first content octet of n.
func (n *Node) ContentStart() int { return n.Start + n.HeaderLength }

// End returns the offset of the first byte after n. For indefinite-length
// encodings this includes the end-of-contents marker.
func (n *Node) End() int { return n.ContentStart() + n.Length + n.trailer }

// Content returns the content octets of n. The returned slice shares memory
// with the decoded buffer.
func (n *Node) Content() []byte {
	return n.buf[n.ContentStart() : n.ContentStart()+n.Length : n.ContentStart()+n.Length]
}

// Raw returns the complete encoding of n including its header. The returned
// slice shares memory with the decoded buffer.
func (n *Node) Raw() []byte {
	return n.buf[n.Start:n.End():n.End()]
}

// HexDump formats the bytes of the decoded buffer in the range [start, end) as
// upper case hex pairs separated by spaces. The range is clamped to the
// buffer.
func (n *Node) HexDump(start, end int) string {
	start = max(start, 0)
	end = min(end, len(n.buf))
	if start >= end {
		return ""
	}
	return fmt.Sprintf("% X", n.buf[start:end])
}

// All returns an iterator over n and all of its descendants in pre-order,
// which is the order in which they appear in the input.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// String returns a short description of n in the form
// TYPE@start[header:h,length:l,sub:s] where s is the number of children or
// null for primitives.
func (n *Node) String() string {
	b := []byte(n.TypeName())
	b = strconv.AppendInt(append(b, '@'), int64(n.Start), 10)
	b = strconv.AppendInt(append(b, "[header:"...), int64(n.HeaderLength), 10)
	b = strconv.AppendInt(append(b, ",length:"...), int64(n.Length), 10)
	b = append(b, ",sub:"...)
	if n.Children == nil {
		b = append(b, "null"...)
	} else {
		b = strconv.AppendInt(b, int64(len(n.Children)), 10)
	}
	return string(append(b, ']'))
}
