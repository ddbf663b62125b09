// Package efjson implements an incremental, push-driven JSON/JSON5/JSONC
// tokenizer: Parser accepts one Unicode scalar value at a time and
// returns a classified Token describing that character's role in the
// evolving document, without ever buffering more than the current atom's
// in-progress scratch state. Higher-level typed decoding lives in the
// sibling deserialize package; a stacked-receiver event API lives in
// event.
package efjson

// Stage reports the coarse phase of a Parser's lifecycle.
type Stage uint8

const (
	// NotStarted means the root value has not begun yet: only whitespace
	// and complete comments have been fed.
	NotStarted Stage = iota
	// Parsing means the root value (or a comment) is in progress.
	Parsing
	// Ended means the root value has been fully read, whether or not the
	// NUL end-of-input marker has been accepted yet.
	Ended
)

// Parser is the stream tokenizer: a single-threaded, synchronous state
// machine driven one scalar at a time by FeedOne. It holds no buffered
// input; its entire state is the handful of counters and small stacks
// described in spec.md §3.
type Parser struct {
	position int
	line     int
	column   int
	meetCR   bool

	loc   locationState
	state valueState
	stack []locationState

	option Option
}

// New creates a Parser configured with the given Option bit set.
func New(option Option) *Parser {
	return &Parser{
		loc:    stRootStart,
		state:  valueState{kind: vsEmpty},
		option: option,
	}
}

// Position returns the number of scalars successfully accepted so far.
func (p *Parser) Position() int { return p.position }

// Line returns the zero-based line of the next character to be fed.
// Right after a CR it still reports the CR's line: the line advance is
// applied when the next character arrives, so that CRLF counts once.
func (p *Parser) Line() int { return p.line }

// Column returns the zero-based column of the next character to be fed.
// Right after a CR it reports the column past the CR on the CR's line.
func (p *Parser) Column() int { return p.column }

// Location reports the public syntactic slot the parser currently
// occupies.
func (p *Parser) Location() Location { return p.loc.public() }

// Stage reports the parser's coarse lifecycle phase.
func (p *Parser) Stage() Stage {
	if p.state.kind != vsEmpty {
		return Parsing
	}
	switch p.loc {
	case stRootStart:
		return NotStarted
	case stRootEnd, stEOF:
		return Ended
	default:
		return Parsing
	}
}

func (p *Parser) throw(c rune, kind ErrorKind) error {
	return &StreamError{
		Position:  p.position,
		Line:      p.line,
		Column:    p.column,
		Character: c,
		Kind:      kind,
	}
}

// FeedOne advances the parser by exactly one Unicode scalar value and
// returns the Token it produced. Feeding the sentinel NUL (U+0000)
// signals end-of-input; feeding any non-whitespace scalar after that is
// an error. On error, the parser's state is exactly as it was before
// this call: the caller may simply stop, or may keep feeding at its own
// risk.
func (p *Parser) FeedOne(c rune) (Token, error) {
	line, column, meetCR := p.line, p.column, p.meetCR
	if p.meetCR {
		if c != '\n' {
			p.line++
			p.column = 0
		}
		p.meetCR = false
	}

	if p.position == intMax {
		err := p.throw(c, ErrPositionOverflow)
		p.line, p.column, p.meetCR = line, column, meetCR
		return Token{}, err
	}

	tok, err := p.step(c)
	if err != nil {
		p.line, p.column, p.meetCR = line, column, meetCR
		return Token{}, err
	}
	p.position++

	switch {
	case c == '\r':
		p.column++
		p.meetCR = true
	case isParserLineTerminator(c):
		p.line++
		p.column = 0
	case c != 0:
		p.column++
	}

	return tok, nil
}

const intMax = int(^uint(0) >> 1)

// isParserLineTerminator matches the same set as charclass.IsLineTerminator
// (LF, CR, LS, PS). FeedOne handles CR before consulting it, deferring
// the line advance via meetCR so that CR and CRLF both advance exactly
// one line.
func isParserLineTerminator(c rune) bool {
	switch c {
	case '\n', '\r', 0x2028, 0x2029:
		return true
	}
	return false
}

// FeedMany feeds every rune of s in order, stopping at the first error.
// It does not feed the NUL terminator; call FeedOne(0) separately (or
// use Parse) to signal end-of-input.
func (p *Parser) FeedMany(s []rune) ([]Token, error) {
	tokens := make([]Token, 0, len(s))
	for _, c := range s {
		tok, err := p.FeedOne(c)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Parse tokenizes a complete string under option, including the implicit
// end-of-input terminator, and returns every token produced.
func Parse(option Option, s string) ([]Token, error) {
	p := New(option)
	tokens, err := p.FeedMany([]rune(s))
	if err != nil {
		return nil, err
	}
	end, err := p.FeedOne(0)
	if err != nil {
		return nil, err
	}
	return append(tokens, end), nil
}
