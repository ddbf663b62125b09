package efjson

import "github.com/efjson-go/efjson/internal/charclass"

// stepIdentifier continues an unquoted JSON5 object key.
func (p *Parser) stepIdentifier(c rune) (Token, error) {
	switch {
	case c == ':':
		p.loc = stValueStart
		p.state = valueState{kind: vsEmpty}
		return Token{Char: c, Info: TokenInfo{Kind: KindObjectValueStart}, Location: LocationObject}, nil
	case charclass.IsWhitespace(c, p.option.Has(JSON5Whitespace)):
		p.loc = stKeyEnd
		p.state = valueState{kind: vsEmpty}
		return Token{Char: c, Info: TokenInfo{Kind: KindWhitespace}, Location: LocationKey}, nil
	case charclass.IsIdentifierPart(c):
		return Token{Char: c, Info: TokenInfo{Kind: KindIdentifierNormal}, Location: LocationKey}, nil
	default:
		return Token{}, p.throw(c, ErrInvalidIdentifier)
	}
}

// stepIdentifierEscape handles a "\uXXXX" escape standing in as an
// entire unquoted key: the mandatory "u" first, then its four hex
// digits. Completing the escape ends the key outright, the same way a
// single bare identifier character would; it cannot be mixed with
// further normal identifier characters.
func (p *Parser) stepIdentifierEscape(c rune) (Token, error) {
	if !p.state.escPrefix {
		if c != 'u' {
			return Token{}, p.throw(c, ErrBadIdentifierEscape)
		}
		p.state = valueState{kind: vsIdentifierEscape, escPrefix: true}
		return Token{Char: c, Info: TokenInfo{Kind: KindIdentifierEscapeStart, Index: 1}, Location: LocationKey}, nil
	}
	if !charclass.IsHexDigit(c) {
		return Token{}, p.throw(c, ErrInvalidIdentifierEscape)
	}
	idx := p.state.idx
	acc := p.state.acc<<4 | charclass.HexDigitValue(c)
	idx++
	if idx == 4 {
		p.loc = p.loc.next()
		p.state = valueState{kind: vsEmpty}
		return Token{Char: c, Info: TokenInfo{Kind: KindIdentifierEscape, Index: 4, Done: true, Char: rune(acc), HasChar: true}, Location: LocationKey}, nil
	}
	p.state = valueState{kind: vsIdentifierEscape, escPrefix: true, idx: idx, acc: acc}
	return Token{Char: c, Info: TokenInfo{Kind: KindIdentifierEscape, Index: idx - 1}, Location: LocationKey}, nil
}
