package tlv

import (
	"testing"

	"codello.dev/asn1tree"
)

func TestEncapsulates(t *testing.T) {
	tests := map[string]struct {
		data []byte // complete TLV
		want bool
	}{
		"Constructed":             {[]byte{0x30, 0x00}, true},
		"ConstructedContext":      {[]byte{0xa0, 0x03, 0x02, 0x01, 0x01}, true},
		"Integer":                 {[]byte{0x02, 0x03, 0x02, 0x01, 0x01}, false},
		"ContextPrimitive":        {[]byte{0x83, 0x03, 0x02, 0x01, 0x01}, false},
		"OctetString":             {[]byte{0x04, 0x03, 0x02, 0x01, 0x05}, true},
		"OctetStringContext":      {[]byte{0x04, 0x02, 0x80, 0x00}, true},
		"OctetStringApplication":  {[]byte{0x04, 0x03, 0x42, 0x01, 0x05}, false},
		"OctetStringPrivate":      {[]byte{0x04, 0x03, 0xc2, 0x01, 0x05}, false},
		"OctetStringShort":        {[]byte{0x04, 0x04, 0x02, 0x01, 0x05, 0x06}, false},
		"OctetStringLong":         {[]byte{0x04, 0x02, 0x02, 0x01, 0x05}, false},
		"OctetStringEmpty":        {[]byte{0x04, 0x00}, false},
		"OctetStringBadLength":    {[]byte{0x04, 0x06, 0x02, 0x84, 0x00, 0x00, 0x00, 0x00}, false},
		"OctetStringInnerIndef":   {[]byte{0x04, 0x01, 0x30, 0x80}, false},
		"OctetStringLongForm":     {[]byte{0x04, 0x04, 0x04, 0x81, 0x01, 0xaa}, true},
		"BitString":               {[]byte{0x03, 0x04, 0x00, 0x02, 0x01, 0x15}, true},
		"BitStringNoUnusedOctet":  {[]byte{0x03, 0x03, 0x02, 0x01, 0x15}, false},
		"BitStringBinary":         {[]byte{0x03, 0x04, 0x00, 0xff, 0xff, 0xff}, false},
		"BitStringMismatch":       {[]byte{0x03, 0x05, 0x00, 0x02, 0x01, 0x15, 0x16}, false},
		"BitStringTruncatedProbe": {[]byte{0x03, 0x01, 0x00}, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCursor(tc.data, 0)
			b, _ := c.ReadByte()
			l, err := ReadLength(c)
			if err != nil {
				t.Fatalf("ReadLength() returned an unexpected error: %s", err)
			}
			pos := c.Pos()
			if got := Encapsulates(asn1tree.Tag(b), l, *c); got != tc.want {
				t.Errorf("Encapsulates(%# x) = %t, want %t", tc.data, got, tc.want)
			}
			if c.Pos() != pos {
				t.Errorf("Encapsulates() moved the cursor from %d to %d", pos, c.Pos())
			}
		})
	}
}
