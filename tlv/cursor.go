package tlv

import (
	"errors"
)

// Cursor provides sequential, bounds-checked read access to a byte slice. A
// Cursor is a small value: copying it creates an independent read position over
// the same data, which is how lookahead without side effects is done.
//
// The zero Cursor is an empty input.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a new Cursor reading buf beginning at offset. NewCursor
// panics if offset is not within buf.
func NewCursor(buf []byte, offset int) *Cursor {
	if offset < 0 || offset > len(buf) {
		panic("tlv: cursor offset out of range")
	}
	return &Cursor{buf: buf, pos: offset}
}

// Pos returns the current read position of c, relative to the start of the
// buffer.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the number of unread bytes.
func (c *Cursor) Len() int { return len(c.buf) - c.pos }

// Bytes returns the entire underlying buffer of c, including bytes that have
// already been read. The buffer must not be modified.
func (c *Cursor) Bytes() []byte { return c.buf }

// ReadByte returns the byte at the current position and advances c by one
// byte. If c is at the end of its buffer, an [ErrOutOfBounds] error is
// returned. ReadByte implements [io.ByteReader].
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, &SyntaxError{Err: ErrOutOfBounds, ByteOffset: int64(c.pos)}
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// Skip advances c by n bytes. If fewer than n bytes remain, c is not modified
// and an [ErrOutOfBounds] error for the first missing byte is returned.
func (c *Cursor) Skip(n int) error {
	if n < 0 {
		return errors.New("tlv: negative count")
	}
	if n > c.Len() {
		return &SyntaxError{Err: ErrOutOfBounds, ByteOffset: int64(len(c.buf))}
	}
	c.pos += n
	return nil
}
