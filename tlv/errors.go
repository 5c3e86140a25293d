package tlv

import (
	"errors"
	"strconv"
)

var (
	// ErrOutOfBounds indicates that a read was attempted at or past the end of
	// the input.
	ErrOutOfBounds = errors.New("read past end of data")

	// ErrUnsupportedLength indicates a length field that cannot be decoded,
	// either because it uses more than MaxLengthOctets length octets or because
	// a primitive element claims the indefinite length.
	ErrUnsupportedLength = errors.New("unsupported length")

	// ErrContainerOverflow indicates that the children of a definite-length
	// constructed element did not end exactly at the end of its content.
	ErrContainerOverflow = errors.New("content overflowed the constructed container")

	// ErrDepthExceeded indicates that the input is nested deeper than
	// [Decoder.MaxDepth] allows.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")
)

// SyntaxError represents an error in the TLV encoding. The error value contains
// the location of the error within the input as well as the [Header] of the
// surrounding constructed data value, if there is one.
type SyntaxError struct {
	requireKeyedLiterals
	nonComparable

	Err error // underlying error

	// ByteOffset is the location of the error. For bounds errors this is the
	// offset of the failed read. Otherwise it is the start of the TLV header
	// containing the error.
	ByteOffset int64

	// Header is the TLV header of the constructed TLV whose value contained the
	// malformed data. It is the zero Header for errors at the top level.
	Header Header
}

func (e *SyntaxError) Unwrap() error { return e.Err }
func (e *SyntaxError) Error() string {
	b := []byte("tlv: syntax error")
	if e.Header != (Header{}) {
		b = append(b, " within "...)
		b = append(b, e.Header.String()...)
	}
	//goland:noinspection GoDirectComparisonOfErrors
	if e.Err == ErrOutOfBounds {
		b = strconv.AppendInt(append(b, " at offset "...), e.ByteOffset, 10)
	} else {
		b = strconv.AppendInt(append(b, " for TLV beginning at offset "...), e.ByteOffset, 10)
	}
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}

// within records h as the surrounding header of err if err is a *SyntaxError
// that does not have one yet. The innermost container wins.
func within(err error, h Header) error {
	var sErr *SyntaxError
	if errors.As(err, &sErr) && sErr.Header == (Header{}) {
		sErr.Header = h
	}
	return err
}
