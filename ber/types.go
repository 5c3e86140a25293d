// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

// MaxIntegerLength is the maximum number of content octets of an INTEGER that
// can be decoded by [ParseInteger].
const MaxIntegerLength = 4

//region [UNIVERSAL 1] BOOLEAN

// ParseBoolean decodes the content octets of a BOOLEAN. Only the first octet is
// considered. Zero is false and any other value is true, although DER only
// permits 0xFF. If content is empty, ok is false.
func ParseBoolean(content []byte) (v bool, ok bool) {
	if len(content) == 0 {
		return false, false
	}
	return content[0] != 0x00, true
}

//endregion

//region [UNIVERSAL 2] INTEGER

// ParseInteger decodes the content octets of an INTEGER as an unsigned
// big-endian number. The sign bit is not interpreted, so negative integers
// yield their two's complement magnitude. If content is longer than
// [MaxIntegerLength] octets, ok is false. Empty content decodes as 0.
func ParseInteger(content []byte) (v uint32, ok bool) {
	if len(content) > MaxIntegerLength {
		return 0, false
	}
	for _, b := range content {
		v = v<<8 | uint32(b)
	}
	return v, true
}

//endregion
