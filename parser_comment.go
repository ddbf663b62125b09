package efjson

import "github.com/efjson-go/efjson/internal/charclass"

// Comments never advance location: a comment can appear anywhere
// whitespace can, arbitrarily often, so unlike every other atom it does
// not correspond to a syntactic slot of its own.

func (p *Parser) stepCommentMayStart(c rune) (Token, error) {
	loc := p.loc.public()
	switch {
	case c == '/' && p.option.Has(SingleLineComment):
		p.state = valueState{kind: vsCommentSingleLine}
		return Token{Char: c, Info: TokenInfo{Kind: KindCommentSingleLine}, Location: loc}, nil
	case c == '*' && p.option.Has(MultiLineComment):
		p.state = valueState{kind: vsCommentMultiLine}
		return Token{Char: c, Info: TokenInfo{Kind: KindCommentMultiLine}, Location: loc}, nil
	default:
		return Token{}, p.throw(c, ErrCommentForbidden)
	}
}

// stepCommentSingleLine reads until a line terminator or end-of-input;
// either one closes the comment. End-of-input is then handled exactly as
// it would be outside the comment (KindEOF, or an error if the document
// is incomplete).
func (p *Parser) stepCommentSingleLine(c rune) (Token, error) {
	loc := p.loc.public()
	if c == 0 {
		info, err := p.handleEOF()
		if err != nil {
			return Token{}, err
		}
		p.state = valueState{kind: vsEmpty}
		return Token{Char: c, Info: info, Location: loc}, nil
	}
	if charclass.IsLineTerminator(c) {
		p.state = valueState{kind: vsEmpty}
	}
	return Token{Char: c, Info: TokenInfo{Kind: KindCommentSingleLine}, Location: loc}, nil
}

func (p *Parser) stepCommentMultiLine(c rune) (Token, error) {
	loc := p.loc.public()
	if c == 0 {
		return Token{}, p.throw(c, ErrCommentNotClosed)
	}
	if c == '*' {
		p.state = valueState{kind: vsCommentMultiLineMayEnd}
	}
	return Token{Char: c, Info: TokenInfo{Kind: KindCommentMultiLine}, Location: loc}, nil
}

func (p *Parser) stepCommentMultiLineMayEnd(c rune) (Token, error) {
	loc := p.loc.public()
	switch c {
	case 0:
		return Token{}, p.throw(c, ErrCommentNotClosed)
	case '/':
		p.state = valueState{kind: vsEmpty}
		return Token{Char: c, Info: TokenInfo{Kind: KindCommentMultiLineEnd}, Location: loc}, nil
	case '*':
		return Token{Char: c, Info: TokenInfo{Kind: KindCommentMultiLine}, Location: loc}, nil
	default:
		p.state = valueState{kind: vsCommentMultiLine}
		return Token{Char: c, Info: TokenInfo{Kind: KindCommentMultiLine}, Location: loc}, nil
	}
}
