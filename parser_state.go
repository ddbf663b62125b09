package efjson

// valueStateKind tags which lexical atom the parser is currently inside.
// Go has no payload-carrying enum, so valueState below pairs this tag
// with the handful of scratch fields the different kinds need; which
// fields are meaningful is documented per kind.
type valueStateKind uint8

const (
	vsEmpty valueStateKind = iota
	vsNull
	vsTrue
	vsFalse
	vsString
	vsStringEscape
	vsStringUnicode
	vsNumber
	vsNumberFraction
	vsNumberExponent
	vsStringMultilineCr
	vsStringEscapeHex
	vsNumberInfinity
	vsNumberNaN
	vsNumberHex
	vsNumberOct
	vsNumberBin
	vsCommentMayStart
	vsCommentSingleLine
	vsCommentMultiLine
	vsCommentMultiLineMayEnd
	vsIdentifier
	vsIdentifierEscape
)

type numberSignState uint8

const (
	numSign numberSignState = iota
	numZero
	numDigit
)

type exponentState uint8

const (
	expDesire exponentState = iota
	expSign
	expDigit
)

// valueState is the parser's lexical state within the current atom.
type valueState struct {
	kind valueStateKind

	// singleQuote applies to vsString, vsStringEscape, vsStringUnicode,
	// vsStringMultilineCr, vsStringEscapeHex: whether the enclosing
	// string was opened with ' rather than ".
	singleQuote bool

	// idx is the progress counter for vsNull/vsTrue/vsFalse/
	// vsNumberNaN/vsNumberInfinity (which keyword character comes
	// next) and for vsStringUnicode/vsStringEscapeHex/
	// vsIdentifierEscape (how many hex digits seen so far).
	idx uint8

	// acc accumulates the hex value for vsStringUnicode,
	// vsStringEscapeHex and vsIdentifierEscape.
	acc uint16

	// numSign applies to vsNumber: Sign (just saw the optional
	// sign)/Zero (integer part is a single "0")/Digit (integer part is
	// a nonzero run of digits).
	numSign numberSignState

	// seenDigit applies to vsNumberFraction, vsNumberHex, vsNumberOct,
	// vsNumberBin: whether at least one digit of that part has been
	// seen yet.
	seenDigit bool

	// exp applies to vsNumberExponent: Desire (nothing seen
	// yet)/Sign (saw +/-)/Digit (saw at least one digit).
	exp exponentState

	// escPrefix applies to vsIdentifierEscape: whether the mandatory
	// "u" after the backslash has been consumed yet.
	escPrefix bool
}
