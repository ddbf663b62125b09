package efjson

import "github.com/efjson-go/efjson/internal/charclass"

// stepString is the string body handler: every character that is not the
// closing quote, a backslash, or a bare control character is accepted
// verbatim as string content.
func (p *Parser) stepString(c rune) (Token, error) {
	sq := p.state.singleQuote
	loc := p.loc.public()
	switch {
	case (c == '"' && !sq) || (c == '\'' && sq):
		p.loc = p.loc.next()
		p.state = valueState{kind: vsEmpty}
		return Token{Char: c, Info: TokenInfo{Kind: KindStringEnd}, Location: loc}, nil
	case c == '\\':
		p.state = valueState{kind: vsStringEscape, singleQuote: sq}
		return Token{Char: c, Info: TokenInfo{Kind: KindStringEscapeStart}, Location: loc}, nil
	case c == 0:
		return Token{}, p.throw(c, ErrEof)
	case charclass.IsControl(c):
		return Token{}, p.throw(c, ErrControlCharacterForbiddenInString)
	default:
		return Token{Char: c, Info: TokenInfo{Kind: KindStringNormal}, Location: loc}, nil
	}
}

// stepStringMultilineCr is entered right after a backslash-CR line
// continuation, to merge a following LF into the same continuation. Any
// other character falls through to the ordinary string body handling,
// and critically also reverts the state to vsString first: without that
// reversion a later unescaped line terminator elsewhere in the string
// would be misread as a second line-continuation instead of the control
// character it actually is.
func (p *Parser) stepStringMultilineCr(c rune) (Token, error) {
	sq := p.state.singleQuote
	if c == '\n' {
		p.state = valueState{kind: vsString, singleQuote: sq}
		return Token{Char: c, Info: TokenInfo{Kind: KindStringNextLine}, Location: p.loc.public()}, nil
	}
	p.state = valueState{kind: vsString, singleQuote: sq}
	return p.stepString(c)
}

// stepStringEscape handles the character right after a backslash: a
// \uXXXX escape start, a simple one-character escape, a JSON5
// backslash-newline continuation, a JSON5 \xNN escape, or an error.
func (p *Parser) stepStringEscape(c rune) (Token, error) {
	sq := p.state.singleQuote
	loc := p.loc.public()
	json5 := p.option.Has(JSON5StringEscape)

	if c == 'u' {
		p.state = valueState{kind: vsStringUnicode, singleQuote: sq}
		return Token{Char: c, Info: TokenInfo{Kind: KindStringEscapeUnicodeStart}, Location: loc}, nil
	}
	if escaped, ok := simpleEscape(c, json5); ok {
		p.state = valueState{kind: vsString, singleQuote: sq}
		return Token{Char: c, Info: TokenInfo{Kind: KindStringEscape, Char: escaped, HasChar: true}, Location: loc}, nil
	}
	if p.option.Has(MultilineString) && charclass.IsLineTerminator(c) {
		if c == '\r' {
			p.state = valueState{kind: vsStringMultilineCr, singleQuote: sq}
		} else {
			p.state = valueState{kind: vsString, singleQuote: sq}
		}
		return Token{Char: c, Info: TokenInfo{Kind: KindStringNextLine}, Location: loc}, nil
	}
	if json5 && c == 'x' {
		p.state = valueState{kind: vsStringEscapeHex, singleQuote: sq}
		return Token{Char: c, Info: TokenInfo{Kind: KindStringEscapeHexStart}, Location: loc}, nil
	}
	return Token{}, p.throw(c, ErrBadEscapeInString)
}

// simpleEscape maps a one-character escape body to the scalar it
// produces. The JSON5-only escapes (\', \v, \0) are only accepted when
// json5 is true.
func simpleEscape(c rune, json5 bool) (rune, bool) {
	switch c {
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case '/':
		return '/', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '\'':
		return '\'', json5
	case 'v':
		return '\v', json5
	case '0':
		return 0, json5
	default:
		return 0, false
	}
}

// stepStringUnicode accumulates the four hex digits of a \uXXXX escape.
// The assembled code unit is handed back raw, even if it is a lone UTF-16
// surrogate half: surrogate-pair merging and validation is the
// deserializer layer's job, not the tokenizer's.
func (p *Parser) stepStringUnicode(c rune) (Token, error) {
	if !charclass.IsHexDigit(c) {
		return Token{}, p.throw(c, ErrBadUnicodeEscapeInString)
	}
	loc := p.loc.public()
	idx := p.state.idx
	acc := p.state.acc<<4 | charclass.HexDigitValue(c)
	idx++
	if idx == 4 {
		sq := p.state.singleQuote
		p.state = valueState{kind: vsString, singleQuote: sq}
		return Token{Char: c, Info: TokenInfo{Kind: KindStringEscapeUnicode, Index: 4, Done: true, Char: rune(acc), HasChar: true}, Location: loc}, nil
	}
	p.state = valueState{kind: vsStringUnicode, singleQuote: p.state.singleQuote, idx: idx, acc: acc}
	return Token{Char: c, Info: TokenInfo{Kind: KindStringEscapeUnicode, Index: idx - 1}, Location: loc}, nil
}

// stepStringEscapeHex accumulates the two hex digits of a JSON5 \xNN
// escape.
func (p *Parser) stepStringEscapeHex(c rune) (Token, error) {
	if !charclass.IsHexDigit(c) {
		return Token{}, p.throw(c, ErrBadHexEscapeInString)
	}
	loc := p.loc.public()
	idx := p.state.idx
	acc := p.state.acc<<4 | charclass.HexDigitValue(c)
	idx++
	if idx == 2 {
		sq := p.state.singleQuote
		p.state = valueState{kind: vsString, singleQuote: sq}
		return Token{Char: c, Info: TokenInfo{Kind: KindStringEscapeHex, Index: 2, Done: true, Char: rune(acc), HasChar: true}, Location: loc}, nil
	}
	p.state = valueState{kind: vsStringEscapeHex, singleQuote: p.state.singleQuote, idx: idx, acc: acc}
	return Token{Char: c, Info: TokenInfo{Kind: KindStringEscapeHex, Index: 0}, Location: loc}, nil
}
