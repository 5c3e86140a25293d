package tlv

import (
	"fmt"
	"math"

	"codello.dev/asn1tree"
)

func ExampleCombinedLength() {
	fmt.Println(CombinedLength(2, 3, 5))
	fmt.Println(CombinedLength(42, LengthIndefinite))
	fmt.Println(CombinedLength(math.MaxInt, 2))

	// Output:
	// 10
	// -1
	// -1
}

func ExampleHeader_String() {
	fmt.Println(Header{Tag: 0x30, Length: 3})
	fmt.Println(Header{Tag: 0x24, Length: LengthIndefinite})
	fmt.Println(Header{Tag: asn1tree.Tag(asn1tree.TagInteger), Length: 1})
	fmt.Println(Header{})

	// Output:
	// SEQUENCE/c:3
	// OCTET_STRING/c:indefinite
	// INTEGER/p:1
	// EndOfContents
}
