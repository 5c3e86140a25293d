// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"codello.dev/asn1tree/internal/vlq"
)

// maxArcBits is the number of bits (seven per content octet) from which an arc
// is no longer rendered numerically.
const maxArcBits = 31

// bigArc is rendered in place of arcs that need maxArcBits or more bits.
const bigArc = "big"

// ParseObjectIdentifier decodes the content octets of an OBJECT IDENTIFIER into
// its dot-separated notation.
//
// The first arc value n encodes the first two components as n/40 and n%40.
// Subsequent arcs that occupy five or more octets (31 or more bits) are
// rendered as "big". An incomplete arc at the end of content is ignored. If
// content contains no complete arc, ok is false.
func ParseObjectIdentifier(content []byte) (s string, ok bool) {
	var sb strings.Builder
	sb.Grow(32)
	r := bytes.NewReader(content)
	for first := true; r.Len() > 0; first = false {
		arc, n, err := vlq.Read[uint64](r)
		if err != nil && !errors.Is(err, vlq.ErrOverflow) {
			break // incomplete
		}
		big := err != nil || n*7 >= maxArcBits
		switch {
		case first && err != nil:
			sb.WriteString(bigArc)
		case first:
			sb.WriteString(strconv.FormatUint(arc/40, 10))
			sb.WriteByte('.')
			sb.WriteString(strconv.FormatUint(arc%40, 10))
		case big:
			sb.WriteByte('.')
			sb.WriteString(bigArc)
		default:
			sb.WriteByte('.')
			sb.WriteString(strconv.FormatUint(arc, 10))
		}
		ok = true
	}
	return sb.String(), ok
}
