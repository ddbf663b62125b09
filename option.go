package efjson

// Option is a bit set of independent parser feature toggles. The zero
// Option is strict RFC 8259 JSON. Each bit widens the accepted grammar;
// options never narrow it, so Option(a) | Option(b) accepts the union of
// what a and b accept on their own.
type Option uint32

const (
	// JSON5Whitespace accepts the JSON5 whitespace production (adds
	// vertical tab, form feed, NBSP, BOM and Unicode space separators
	// to plain ASCII space/tab/CR/LF).
	JSON5Whitespace Option = 1 << iota
	// TrailingCommaInArray accepts a single trailing comma before ']',
	// e.g. "[1,]".
	TrailingCommaInArray
	// TrailingCommaInObject accepts a single trailing comma before '}',
	// e.g. `{"a":1,}`.
	TrailingCommaInObject
	// IdentifierKey accepts an unquoted identifier as an object key,
	// e.g. "{a:1}".
	IdentifierKey
	// SingleQuote accepts single-quoted strings, e.g. "'a'".
	SingleQuote
	// MultilineString accepts a backslash-newline line continuation
	// inside a string.
	MultilineString
	// JSON5StringEscape accepts the JSON5 string escapes \v, \0, \', and
	// the \xNN two-digit hex escape, in addition to the JSON escapes.
	JSON5StringEscape
	// PositiveSign accepts a leading '+' on a number.
	PositiveSign
	// EmptyFraction accepts a number with no digits after the decimal
	// point, e.g. "1.".
	EmptyFraction
	// EmptyInteger accepts a number with no digits before the decimal
	// point, e.g. ".1".
	EmptyInteger
	// NaN accepts the literal NaN as a number.
	NaN
	// Infinity accepts the literal Infinity (optionally signed) as a
	// number.
	Infinity
	// HexadecimalInteger accepts "0x"-prefixed integers.
	HexadecimalInteger
	// OctalInteger accepts "0o"-prefixed integers.
	OctalInteger
	// BinaryInteger accepts "0b"-prefixed integers.
	BinaryInteger
	// SingleLineComment accepts "//" comments.
	SingleLineComment
	// MultiLineComment accepts "/* */" comments.
	MultiLineComment
	// AllowEmptyValue accepts a completely empty document (only
	// whitespace/comments, no value at all) without an error. The
	// tokenizer still requires the terminating NUL.
	AllowEmptyValue
)

// Strict is the empty option set: plain RFC 8259 JSON.
const Strict Option = 0

// JSONC accepts JSON plus "//" and "/* */" comments, nothing else.
const JSONC Option = SingleLineComment | MultiLineComment

// JSON5 accepts the full JSON5 grammar, minus octal and binary integers
// (which JSON5 itself does not define; they are this parser's own
// extension on top of JSON5, gated separately).
const JSON5 Option = SingleLineComment |
	MultiLineComment |
	JSON5Whitespace |
	TrailingCommaInArray |
	TrailingCommaInObject |
	IdentifierKey |
	SingleQuote |
	MultilineString |
	JSON5StringEscape |
	PositiveSign |
	EmptyFraction |
	EmptyInteger |
	NaN |
	Infinity |
	HexadecimalInteger

// Has reports whether every bit set in want is also set in o.
func (o Option) Has(want Option) bool {
	return o&want == want
}
