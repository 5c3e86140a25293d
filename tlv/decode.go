package tlv

import (
	"fmt"

	"codello.dev/asn1tree"
)

// Decoder decodes BER-encoded data values into trees of [Node] values. The zero
// value is ready to use and imposes no nesting limit.
//
// A Decoder holds no state between calls and can be used concurrently.
type Decoder struct {
	// MaxDepth limits the number of nested containers below a top-level data
	// value. Nesting deeper than this produces an [ErrDepthExceeded] error. A
	// value of 0 disables the limit.
	MaxDepth int
}

// Decode decodes the first data value in buf. Any data following the first
// data value is ignored.
func Decode(buf []byte) (*Node, error) {
	return new(Decoder).Decode(NewCursor(buf, 0))
}

// DecodeAll decodes consecutive data values from buf until all of buf has been
// consumed.
func DecodeAll(buf []byte) ([]*Node, error) {
	return new(Decoder).DecodeAll(NewCursor(buf, 0))
}

// Decode decodes a single data value at the current position of c and
// advances c to the end of that data value. If the input is not a consistent
// TLV structure an error of type [*SyntaxError] is returned. There is no
// partial result. The position of c is unspecified if an error occurs.
func (d *Decoder) Decode(c *Cursor) (*Node, error) {
	return d.decode(c, 0)
}

// DecodeAll decodes data values at the position of c until the end of the
// input is reached.
func (d *Decoder) DecodeAll(c *Cursor) ([]*Node, error) {
	var nodes []*Node
	for c.Len() > 0 {
		n, err := d.decode(c, 0)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (d *Decoder) decode(c *Cursor, depth int) (*Node, error) {
	start := c.Pos()
	b, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	n := &Node{Start: start, Tag: asn1tree.Tag(b), buf: c.Bytes()}
	if n.Length, err = ReadLength(c); err != nil {
		return nil, err
	}
	n.HeaderLength = c.Pos() - start

	if !Encapsulates(n.Tag, n.Length, *c) {
		if n.Length == LengthIndefinite {
			return nil, &SyntaxError{
				Err:        fmt.Errorf("%w: indefinite-length primitive data value", ErrUnsupportedLength),
				ByteOffset: int64(start),
			}
		}
		if err = c.Skip(n.Length); err != nil {
			return nil, err
		}
		return n, nil
	}

	if d.MaxDepth > 0 && depth >= d.MaxDepth {
		return nil, &SyntaxError{Err: ErrDepthExceeded, ByteOffset: int64(start)}
	}
	h := n.Header()
	contentStart := c.Pos()
	n.Children = make([]*Node, 0, 4)
	if n.Tag.Is(asn1tree.TagBitString) {
		// unused bits, not part of the encapsulated data value
		if _, err = c.ReadByte(); err != nil {
			return nil, within(err, h)
		}
	}

	if n.Length != LengthIndefinite {
		end := contentStart + n.Length
		for c.Pos() < end {
			child, err := d.decode(c, depth+1)
			if err != nil {
				return nil, within(err, h)
			}
			n.Children = append(n.Children, child)
		}
		if c.Pos() != end {
			return nil, &SyntaxError{Err: ErrContainerOverflow, ByteOffset: int64(start), Header: h}
		}
		return n, nil
	}

	for {
		child, err := d.decode(c, depth+1)
		if err != nil {
			return nil, within(err, h)
		}
		if child.Tag == TagEndOfContents {
			n.Indefinite = true
			n.Length = child.Start - contentStart
			n.trailer = child.End() - child.Start
			return n, nil
		}
		n.Children = append(n.Children, child)
	}
}
