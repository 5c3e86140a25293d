package tlv

import (
	"errors"
	"testing"
)

func TestReadLength(t *testing.T) {
	tests := map[string]struct {
		data    []byte
		want    int
		pos     int
		wantErr error
	}{
		"Short":         {[]byte{0x27}, 0x27, 1, nil},
		"ShortZero":     {[]byte{0x00, 0xff}, 0, 1, nil},
		"ShortMax":      {[]byte{0x7f}, 0x7f, 1, nil},
		"Indefinite":    {[]byte{0x80, 0x02}, LengthIndefinite, 1, nil},
		"OneOctet":      {[]byte{0x81, 0xc9}, 0xc9, 2, nil},
		"TwoOctets":     {[]byte{0x82, 0x01, 0x00, 0x30}, 0x100, 3, nil},
		"ThreeOctets":   {[]byte{0x83, 0xfe, 0xdc, 0xba}, 0xfedcba, 4, nil},
		"LeadingZeros":  {[]byte{0x83, 0x00, 0x00, 0x03}, 3, 4, nil},
		"FourOctets":    {[]byte{0x84, 0x00, 0x00, 0x00, 0x01}, 0, 0, ErrUnsupportedLength},
		"Reserved":      {[]byte{0xff}, 0, 0, ErrUnsupportedLength},
		"Empty":         {[]byte{}, 0, 0, ErrOutOfBounds},
		"TruncatedLong": {[]byte{0x82, 0x01}, 0, 0, ErrOutOfBounds},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCursor(tc.data, 0)
			got, err := ReadLength(c)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ReadLength(%# x) error = %v, wantErr %v", tc.data, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if got != tc.want {
				t.Errorf("ReadLength(%# x) = %d, want %d", tc.data, got, tc.want)
			}
			if c.Pos() != tc.pos {
				t.Errorf("ReadLength(%# x) advanced to %d, want %d", tc.data, c.Pos(), tc.pos)
			}
		})
	}
}

func TestReadLength_ShortForm(t *testing.T) {
	for b := 0; b < 0x80; b++ {
		c := NewCursor([]byte{byte(b), 0xff}, 0)
		got, err := ReadLength(c)
		if err != nil {
			t.Fatalf("ReadLength(%#02x) returned an unexpected error: %s", b, err)
		}
		if got != b || c.Pos() != 1 {
			t.Errorf("ReadLength(%#02x) = %d at position %d, want %d at position 1", b, got, c.Pos(), b)
		}
	}
}

func TestReadLength_ErrorOffset(t *testing.T) {
	c := NewCursor([]byte{0x30, 0x85, 0x01, 0x02, 0x03, 0x04, 0x05}, 1)
	_, err := ReadLength(c)
	var sErr *SyntaxError
	if !errors.As(err, &sErr) {
		t.Fatalf("ReadLength() error = %v, want *SyntaxError", err)
	}
	if sErr.ByteOffset != 1 {
		t.Errorf("ReadLength() error offset = %d, want 1", sErr.ByteOffset)
	}
}
