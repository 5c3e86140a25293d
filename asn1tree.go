// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1tree decodes BER and DER encoded data of unknown structure into
// a tree of nodes that can be inspected. This package defines the
// classification of identifier octets. Decoding the tag-length-value
// structure is implemented in the [codello.dev/asn1tree/tlv] package and the
// interpretation of primitive content octets in [codello.dev/asn1tree/ber].
//
// # Identifier Octets
//
// Every data value encoding starts with a single identifier octet represented
// by the [Tag] type. The two most significant bits hold the [Class], bit 6
// indicates the constructed encoding and the low five bits hold the tag
// number. Tag numbers that require the high-tag-number form (31 and above)
// are not supported, the number 31 is reported as is.
//
// Tag numbers of the [ClassUniversal] namespace map to the ASN.1 type names
// returned by [Tag.TypeName]. These names are only meant for presentation.
//
// [Rec. ITU-T X.680]: https://www.itu.int/rec/T-REC-X.680
package asn1tree

import (
	"strconv"
)

// Class holds the class part of an ASN.1 tag. The class acts as a namespace for
// the tag number. A Class value is an unsigned 2-bit integer. Class values
// whose value exceeds 2 bits are invalid.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// These are the tag numbers defined in the [ClassUniversal] namespace that fit
// into a single identifier octet. The assignments are defined in Rec. ITU-T
// X.680, Section 8, Table 1.
const (
	TagEndOfContents    uint8 = 0
	TagBoolean          uint8 = 1
	TagInteger          uint8 = 2
	TagBitString        uint8 = 3
	TagOctetString      uint8 = 4
	TagNull             uint8 = 5
	TagOID              uint8 = 6
	TagObjectDescriptor uint8 = 7
	TagExternal         uint8 = 8
	TagReal             uint8 = 9
	TagEnumerated       uint8 = 10
	TagEmbeddedPDV      uint8 = 11
	TagUTF8String       uint8 = 12
	TagRelativeOID      uint8 = 13
	TagTime             uint8 = 14
	TagSequence         uint8 = 16
	TagSet              uint8 = 17
	TagNumericString    uint8 = 18
	TagPrintableString  uint8 = 19
	TagTeletexString    uint8 = 20
	TagT61String              = TagTeletexString
	TagVideotexString   uint8 = 21
	TagIA5String        uint8 = 22
	TagUTCTime          uint8 = 23
	TagGeneralizedTime  uint8 = 24
	TagGraphicString    uint8 = 25
	TagVisibleString    uint8 = 26
	TagISO646String           = TagVisibleString
	TagGeneralString    uint8 = 27
	TagUniversalString  uint8 = 28
	TagCharacterString  uint8 = 29
	TagBMPString        uint8 = 30
)

// Tag is a single BER identifier octet. It combines the [Class], the
// constructed flag and the tag number.
type Tag byte

// Class returns the class encoded in the top two bits of t.
func (t Tag) Class() Class {
	return Class(t >> 6)
}

// Constructed reports whether t indicates the constructed encoding.
func (t Tag) Constructed() bool {
	return t&0x20 == 0x20
}

// Number returns the tag number in the low five bits of t.
func (t Tag) Number() uint8 {
	return uint8(t & 0x1f)
}

// Is reports whether t is the primitive universal tag with the given number.
func (t Tag) Is(number uint8) bool {
	return t.Class() == ClassUniversal && !t.Constructed() && t.Number() == number
}

var universalNames = [...]string{
	TagEndOfContents:    "EOC",
	TagBoolean:          "BOOLEAN",
	TagInteger:          "INTEGER",
	TagBitString:        "BIT_STRING",
	TagOctetString:      "OCTET_STRING",
	TagNull:             "NULL",
	TagOID:              "OBJECT_IDENTIFIER",
	TagObjectDescriptor: "ObjectDescriptor",
	TagExternal:         "EXTERNAL",
	TagReal:             "REAL",
	TagEnumerated:       "ENUMERATED",
	TagEmbeddedPDV:      "EMBEDDED_PDV",
	TagUTF8String:       "UTF8String",
	TagSequence:         "SEQUENCE",
	TagSet:              "SET",
	TagNumericString:    "NumericString",
	TagPrintableString:  "PrintableString",
	TagTeletexString:    "TeletexString",
	TagVideotexString:   "VideotexString",
	TagIA5String:        "IA5String",
	TagUTCTime:          "UTCTime",
	TagGeneralizedTime:  "GeneralizedTime",
	TagGraphicString:    "GraphicString",
	TagVisibleString:    "VisibleString",
	TagGeneralString:    "GeneralString",
	TagUniversalString:  "UniversalString",
	TagCharacterString:  "CHARACTER_STRING",
	TagBMPString:        "BMPString",
}

// TypeName returns the name of the ASN.1 type identified by t. Universal tags
// without a well-known name are rendered as Universal_<hex>, application and
// private tags as Application_<hex> and Private_<hex> respectively. Context
// specific tags use the ASN.1 notation [<n>].
func (t Tag) TypeName() string {
	n := t.Number()
	switch t.Class() {
	case ClassUniversal:
		if int(n) < len(universalNames) && universalNames[n] != "" {
			return universalNames[n]
		}
		return "Universal_" + strconv.FormatUint(uint64(n), 16)
	case ClassApplication:
		return "Application_" + strconv.FormatUint(uint64(n), 16)
	case ClassContextSpecific:
		return "[" + strconv.FormatUint(uint64(n), 10) + "]"
	default:
		return "Private_" + strconv.FormatUint(uint64(n), 16)
	}
}

// String returns a string representation of t consisting of its type name and
// a /c or /p suffix for the constructed or primitive encoding.
func (t Tag) String() string {
	if t.Constructed() {
		return t.TypeName() + "/c"
	}
	return t.TypeName() + "/p"
}
