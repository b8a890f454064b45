package generator

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexEntry = regexp.MustCompile(`0x[0-9A-F]{2}`)

// decodeLiteral parses the bytes back out of an emitted hex literal. It
// deliberately ignores all whitespace and line structure: correctness of a
// literal must not depend on the readability wrapping.
func decodeLiteral(t *testing.T, literal string) []byte {
	t.Helper()
	var out []byte
	for _, m := range hexEntry.FindAllString(literal, -1) {
		v, err := strconv.ParseUint(m[2:], 16, 8)
		require.NoError(t, err)
		out = append(out, byte(v))
	}
	return out
}

func TestByteLiteralRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"single", []byte{0x41}},
		{"text", []byte("hello world")},
		{"binary with interior zeros", []byte{0x00, 0xFF, 0x00, 0x7F, 0x00}},
		{"already zero terminated", []byte{0x61, 0x62, 0x00}},
		{"exactly one row", bytes.Repeat([]byte{0xAB}, 12)},
		{"just over one row", bytes.Repeat([]byte{0xCD}, 13)},
		{"several rows", bytes.Repeat([]byte{0x10, 0x20, 0x30}, 100)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			literal := ByteLiteral(tc.data, "\t\t")
			decoded := decodeLiteral(t, literal)

			// Exact content plus exactly one appended terminator.
			require.Len(t, decoded, len(tc.data)+1)
			assert.Equal(t, tc.data, decoded[:len(tc.data)])
			assert.EqualValues(t, 0, decoded[len(tc.data)])
		})
	}
}

func TestByteLiteralFormatting(t *testing.T) {
	literal := ByteLiteral([]byte("hi"), "\t\t")
	assert.Equal(t, "\t\t0x68, 0x69, 0x00", literal)

	// Every line carries the indent and at most hexCols entries.
	long := ByteLiteral(bytes.Repeat([]byte{0x00}, 40), "    ")
	for _, line := range strings.Split(long, "\n") {
		assert.True(t, strings.HasPrefix(line, "    "), "line %q missing indent", line)
		assert.LessOrEqual(t, len(hexEntry.FindAllString(line, -1)), hexCols)
	}
}

func TestByteLiteralEmpty(t *testing.T) {
	// An empty input still yields the lone terminator.
	assert.Equal(t, "\t0x00", ByteLiteral(nil, "\t"))
}
