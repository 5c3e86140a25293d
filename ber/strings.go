// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DecodeISO decodes content as ISO 8859-1, mapping every octet to the code
// point with the same value. It is used for the ASN.1 string and time types
// based on ISO/IEC 646 and ISO/IEC 2022 character sets.
func DecodeISO(content []byte) string {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		// ISO 8859-1 assigns every octet so decoding does not fail.
		return string(content)
	}
	return string(s)
}

// DecodeUTF8 decodes content as UTF-8. Ill-formed sequences, including
// sequences truncated at the end of content, are replaced by U+FFFD.
func DecodeUTF8(content []byte) string {
	s, err := unicode.UTF8.NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(s)
}
