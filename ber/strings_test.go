// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"testing"
	"unicode/utf8"
)

func TestDecodeISO(t *testing.T) {
	tests := map[string]struct {
		content []byte
		want    string
	}{
		"Empty":   {nil, ""},
		"ASCII":   {[]byte("Test User 1"), "Test User 1"},
		"Latin1":  {[]byte{0x47, 0x72, 0xfc, 0xdf, 0x65}, "Grüße"},
		"Control": {[]byte{0x00, 0x7f}, "\x00\x7f"},
		"High":    {[]byte{0x80, 0xff}, "\u0080ÿ"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := DecodeISO(tc.content)
			if got != tc.want {
				t.Errorf("DecodeISO(%# x) = %q, want %q", tc.content, got, tc.want)
			}
			if utf8.RuneCountInString(got) != len(tc.content) {
				t.Errorf("DecodeISO(%# x) produced %d code points, want %d", tc.content, utf8.RuneCountInString(got), len(tc.content))
			}
		})
	}
}

func TestDecodeUTF8(t *testing.T) {
	tests := map[string]struct {
		content []byte
		want    string
	}{
		"Empty":      {nil, ""},
		"ASCII":      {[]byte("abc"), "abc"},
		"TwoOctets":  {[]byte{0xc3, 0xa4}, "ä"},
		"ThreeOctet": {[]byte{0xe2, 0x82, 0xac}, "€"},
		"FourOctets": {[]byte{0xf0, 0x9f, 0x98, 0x80}, "😀"},
		"Invalid":    {[]byte{0x61, 0xff, 0x62}, "a�b"},
		"Truncated":  {[]byte{0x61, 0xe2}, "a�"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := DecodeUTF8(tc.content)
			if got != tc.want {
				t.Errorf("DecodeUTF8(%# x) = %q, want %q", tc.content, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("DecodeUTF8(%# x) = %q is not valid UTF-8", tc.content, got)
			}
		})
	}
}
