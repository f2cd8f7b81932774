package values

import "unicode/utf16"

// Utf8ToUtf16 decodes a Go (UTF-8) string into UTF-16 code units.
func Utf8ToUtf16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// Utf16ToUtf8 encodes UTF-16 code units (including lone surrogates,
// replaced with U+FFFD) back into a Go UTF-8 string.
func Utf16ToUtf8(units []uint16) string {
	return string(utf16.Decode(units))
}
