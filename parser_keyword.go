package efjson

// stepKeyword advances through a fixed-length keyword literal ("null",
// "true", "false"). state.idx is how many characters have already been
// matched; since the keyword's length is known in advance, the moment the
// final character matches the parser can advance location immediately,
// unlike number lexemes whose end is only discovered by seeing a
// following separator.
func (p *Parser) stepKeyword(c rune, word string, kind Kind) (Token, error) {
	idx := p.state.idx
	if c != rune(word[idx]) {
		return Token{}, p.throw(c, ErrUnexpected)
	}
	loc := p.loc.public()
	idx++
	if int(idx) == len(word) {
		p.loc = p.loc.next()
		p.state = valueState{kind: vsEmpty}
		return Token{Char: c, Info: TokenInfo{Kind: kind, Index: idx - 1, Done: true}, Location: loc}, nil
	}
	p.state = valueState{kind: p.state.kind, idx: idx}
	return Token{Char: c, Info: TokenInfo{Kind: kind, Index: idx - 1, Done: false}, Location: loc}, nil
}

// stepNumberKeyword is stepKeyword's counterpart for the NaN and Infinity
// number literals: same fixed-length matching, but on failure (anything
// other than a full match) the error is the generic "unexpected in
// number" rather than "unexpected character", since these atoms can only
// be reached while already inside a number value.
func (p *Parser) stepNumberKeyword(c rune, word string, kind Kind) (Token, error) {
	idx := p.state.idx
	if c != rune(word[idx]) {
		return Token{}, p.throw(c, ErrUnexpectedInNumber)
	}
	loc := p.loc.public()
	idx++
	if int(idx) == len(word) {
		p.loc = p.loc.next()
		p.state = valueState{kind: vsEmpty}
		return Token{Char: c, Info: TokenInfo{Kind: kind, Index: idx - 1, Done: true}, Location: loc}, nil
	}
	p.state = valueState{kind: p.state.kind, idx: idx}
	return Token{Char: c, Info: TokenInfo{Kind: kind, Index: idx - 1, Done: false}, Location: loc}, nil
}
