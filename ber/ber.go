// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber interprets the content octets of primitive data values decoded
// by the [codello.dev/asn1tree/tlv] package according to the ASN.1 Basic
// Encoding Rules (BER). The Basic Encoding Rules are defined in
// [Rec. ITU-T X.690].
//
// Only some universal types have a scalar interpretation:
//
//   - BOOLEAN is decoded as a Go bool. Any non-zero content octet is true.
//   - INTEGER is decoded as an unsigned uint32. Integers with more than four
//     content octets cannot be decoded and the sign bit is not interpreted.
//   - OBJECT IDENTIFIER is decoded into its dot-separated notation. Arcs that
//     need 31 or more bits are rendered as "big".
//   - UTF8String is decoded as UTF-8.
//   - NumericString, PrintableString, TeletexString, VideotexString,
//     IA5String, UTCTime, GeneralizedTime and VisibleString are decoded one
//     code point per octet (ISO 8859-1).
//
// All other data values have no scalar value. This is not an error. Values
// are only decoded on request, decoding a tree does not decode any values.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package ber

import (
	"strconv"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/tlv"
)

// Value decodes the content of n into a Go value. The type of the returned
// value is bool, uint32 or string depending on the type of n (see the package
// documentation). If n has no scalar interpretation, the second return value
// is false.
//
// Only primitive data values of the universal class that do not encapsulate
// other data values are decoded.
func Value(n *tlv.Node) (any, bool) {
	if n.Tag.Class() != asn1tree.ClassUniversal || n.Tag.Constructed() || n.Children != nil {
		return nil, false
	}
	content := n.Content()
	switch n.Tag.Number() {
	case asn1tree.TagBoolean:
		return nonNil(ParseBoolean(content))
	case asn1tree.TagInteger:
		return nonNil(ParseInteger(content))
	case asn1tree.TagOID:
		return nonNil(ParseObjectIdentifier(content))
	case asn1tree.TagUTF8String:
		return DecodeUTF8(content), true
	case asn1tree.TagNumericString,
		asn1tree.TagPrintableString,
		asn1tree.TagTeletexString,
		asn1tree.TagVideotexString,
		asn1tree.TagIA5String,
		asn1tree.TagUTCTime,
		asn1tree.TagGeneralizedTime,
		asn1tree.TagVisibleString:
		return DecodeISO(content), true
	}
	return nil, false
}

// nonNil converts the result of a parse function into the result of Value.
func nonNil[T any](v T, ok bool) (any, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}

// Content returns the display form of the value of n as returned by [Value].
// Booleans are rendered as "true" or "false", integers in decimal notation.
func Content(n *tlv.Node) (string, bool) {
	v, ok := Value(n)
	if !ok {
		return "", false
	}
	switch v := v.(type) {
	case bool:
		return strconv.FormatBool(v), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case string:
		return v, true
	}
	return "", false
}
