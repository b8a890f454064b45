package generator

import (
	"fmt"
	"strings"
)

// hexCols is the number of byte entries emitted per line. The wrapping is
// purely for human readability; nothing about the emitted literal's
// correctness depends on it.
const hexCols = 12

// ByteLiteral renders data as the inside of a C array initializer:
// comma-separated two-digit uppercase hex literals, hexCols entries per
// line, every line prefixed with indent. A terminating 0x00 is always
// appended after the data, whether or not the content already ends in
// zero, so the compiled array is usable as a null-terminated string. The
// terminator is never counted in the reported size; for binary content
// with interior zero bytes the pointer/length pair stays the authoritative
// way to read it.
func ByteLiteral(data []byte, indent string) string {
	var b strings.Builder
	// 6 bytes per entry plus wrapping overhead, close enough.
	b.Grow((len(data) + 1) * 6)
	b.WriteString(indent)
	for i, c := range data {
		fmt.Fprintf(&b, "0x%02X, ", c)
		if (i+1)%hexCols == 0 {
			b.WriteString("\n")
			b.WriteString(indent)
		}
	}
	b.WriteString("0x00")
	return b.String()
}
