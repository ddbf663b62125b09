// Package charclass implements the Unicode scalar predicates the stream
// tokenizer needs: whitespace, identifier start/continue, hex digits,
// control characters and line terminators. It ships sorted range tables
// for the non-ASCII cases and binary-searches them, the same shape the
// tokenizer's other tables use.
package charclass

import "sort"

const (
	noBreakSpace        rune = 0x00A0
	byteOrderMark        rune = 0xFEFF
	lineSeparator        rune = 0x2028
	paragraphSeparator    rune = 0x2029
	zeroWidthNonJoiner    rune = 0x200C
	zeroWidthJoiner       rune = 0x200D
)

// IsWhitespace reports whether c is JSON whitespace. When json5 is true,
// the JSON5 extension to the whitespace production is also accepted
// (additional ASCII controls, NBSP, BOM, and the Unicode Zs category).
func IsWhitespace(c rune, json5 bool) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	if !json5 {
		return false
	}
	switch c {
	case '\v', '\f', noBreakSpace, byteOrderMark:
		return true
	}
	return isUnicodeSpaceSeparator(c)
}

// IsLineTerminator reports whether c ends a line for string
// line-continuation and single-line-comment purposes: LF, CR, and the
// Unicode line/paragraph separators.
func IsLineTerminator(c rune) bool {
	switch c {
	case '\n', '\r', lineSeparator, paragraphSeparator:
		return true
	}
	return false
}

// IsControl reports whether c is a control character forbidden inside an
// unescaped JSON string (U+0000 through U+001F).
func IsControl(c rune) bool {
	return c < 0x20
}

// IsHexDigit reports whether c is one of 0-9, a-f, A-F.
func IsHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// HexDigitValue returns the numeric value of a hex digit. The caller must
// have already checked IsHexDigit.
func HexDigitValue(c rune) uint16 {
	switch {
	case c >= '0' && c <= '9':
		return uint16(c - '0')
	case c >= 'a' && c <= 'f':
		return uint16(c-'a') + 10
	default:
		return uint16(c-'A') + 10
	}
}

// IsDecimalDigit reports whether c is 0-9.
func IsDecimalDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// IsOctalDigit reports whether c is 0-7.
func IsOctalDigit(c rune) bool {
	return c >= '0' && c <= '7'
}

// IsBinaryDigit reports whether c is 0 or 1.
func IsBinaryDigit(c rune) bool {
	return c == '0' || c == '1'
}

// IsIdentifierStart reports whether c may begin a JSON5 unquoted
// identifier key: Unicode ID_Start, plus '$' and '_'.
func IsIdentifierStart(c rune) bool {
	switch c {
	case '$', '_':
		return true
	}
	return inRanges(c, idStartRanges)
}

// IsIdentifierPart reports whether c may continue a JSON5 unquoted
// identifier key: Unicode ID_Continue, plus '$', '_', ZWNJ and ZWJ.
func IsIdentifierPart(c rune) bool {
	switch c {
	case '$', '_', zeroWidthNonJoiner, zeroWidthJoiner:
		return true
	}
	return inRanges(c, idStartRanges) || inRanges(c, idContinueExtraRanges)
}

type runeRange struct{ lo, hi rune }

func inRanges(c rune, ranges []runeRange) bool {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].hi >= c })
	return i < len(ranges) && ranges[i].lo <= c
}

// idStartRanges approximates Unicode ID_Start: ASCII letters plus the
// common supplementary letter blocks. It is not a byte-for-byte copy of
// the Unicode Character Database; it is sufficient for the JSON5
// identifier grammar, which only needs a conservative letter predicate.
var idStartRanges = []runeRange{
	{'A', 'Z'}, {'a', 'z'},
	{0x00AA, 0x00AA}, {0x00B5, 0x00B5}, {0x00BA, 0x00BA},
	{0x00C0, 0x00D6}, {0x00D8, 0x00F6}, {0x00F8, 0x02C1},
	{0x0370, 0x0374}, {0x0376, 0x0377}, {0x037A, 0x037D}, {0x037F, 0x037F},
	{0x0400, 0x0481}, {0x048A, 0x052F},
	{0x0531, 0x0556}, {0x0561, 0x0587},
	{0x05D0, 0x05EA}, {0x0620, 0x064A},
	{0x0900, 0x0939},
	{0x1E00, 0x1F15},
	{0x2118, 0x211D}, {0x212A, 0x2133},
	{0x3041, 0x3096}, {0x30A1, 0x30FA},
	{0x3400, 0x4DBF}, {0x4E00, 0x9FFF},
	{0xAC00, 0xD7A3},
	{0xF900, 0xFA6D},
	{0x10000, 0x1000B},
	{0x20000, 0x2A6DF},
}

// idContinueExtraRanges adds the characters ID_Continue has beyond
// ID_Start: decimal digits, combining marks, connector punctuation.
var idContinueExtraRanges = []runeRange{
	{'0', '9'},
	{0x0300, 0x036F},
	{0x0483, 0x0487},
	{0x0591, 0x05BD},
	{0x203F, 0x2040},
}

// spaceSeparatorRanges covers the Unicode General Category Zs, used by
// JSON5's whitespace production.
var spaceSeparatorRanges = []runeRange{
	{0x0020, 0x0020}, {0x00A0, 0x00A0}, {0x1680, 0x1680},
	{0x2000, 0x200A}, {0x202F, 0x202F}, {0x205F, 0x205F}, {0x3000, 0x3000},
}

func isUnicodeSpaceSeparator(c rune) bool {
	return inRanges(c, spaceSeparatorRanges)
}
