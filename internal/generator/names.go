package generator

import (
	"os"
	"strings"
)

// LookupKey resolves the key a file will be retrievable by at runtime.
// When preserve is true the raw path is used unchanged; otherwise the key
// is everything after the last platform path separator, or the whole
// string when no separator occurs. No cleaning of "." or ".." segments,
// no case folding, no separator translation between conventions.
func LookupKey(path string, preserve bool) string {
	if preserve {
		return path
	}
	if i := strings.LastIndexByte(path, os.PathSeparator); i >= 0 {
		return path[i+1:]
	}
	return path
}

// GuardName derives an include-guard token from a header file path:
// letters are upper-cased, every other byte (digits included) becomes an
// underscore. Makes no attempt to deal with character encoding. Callers
// embedding multiple generated headers into one translation unit must pick
// distinct header names to keep the guards distinct.
func GuardName(headerPath string) string {
	var b strings.Builder
	b.Grow(len(headerPath))
	for i := 0; i < len(headerPath); i++ {
		c := headerPath[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
