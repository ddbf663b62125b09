package deserialize

import "github.com/efjson-go/efjson"

// Raw captures the verbatim source text of the next JSON value without
// building a typed representation of it, for callers that want to
// defer decoding a sub-document (a JSON Schema "additionalProperties"
// blob, a plugin-defined payload) until later. It validates that the
// span is well-formed JSON by driving a JSONValue underneath and simply
// recording every token's character alongside it.
type Raw struct {
	value   *JSONValue
	buf     []rune
	started bool
}

func NewRaw() *Raw { return &Raw{value: NewJSONValue()} }

func (d *Raw) Feed(tok efjson.Token) (Outcome[string], error) {
	outcome, err := d.value.Feed(tok)
	if err != nil {
		return Outcome[string]{}, err
	}
	if !outcome.IsComplete() {
		if d.started || !tok.IsSpace() {
			d.started = true
			d.buf = append(d.buf, tok.Char)
		}
		return Continue[string](), nil
	}
	if outcome.Rollback() {
		return CompleteWithRollback(string(d.buf)), nil
	}
	d.buf = append(d.buf, tok.Char)
	return Complete(string(d.buf)), nil
}

func (d *Raw) Close() { d.value.Close() }

// RawToken captures the classified token sequence of the next JSON
// value instead of its raw characters, for callers that want to
// re-drive the same span through a different Deserializer later
// without re-tokenizing the source text.
type RawToken struct {
	value   *JSONValue
	buf     []efjson.Token
	started bool
}

func NewRawToken() *RawToken { return &RawToken{value: NewJSONValue()} }

func (d *RawToken) Feed(tok efjson.Token) (Outcome[[]efjson.Token], error) {
	outcome, err := d.value.Feed(tok)
	if err != nil {
		return Outcome[[]efjson.Token]{}, err
	}
	if !outcome.IsComplete() {
		if d.started || !tok.IsSpace() {
			d.started = true
			d.buf = append(d.buf, tok)
		}
		return Continue[[]efjson.Token](), nil
	}
	if outcome.Rollback() {
		return CompleteWithRollback(d.buf), nil
	}
	d.buf = append(d.buf, tok)
	return Complete(d.buf), nil
}

func (d *RawToken) Close() { d.value.Close() }
