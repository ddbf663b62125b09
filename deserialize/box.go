package deserialize

import "github.com/efjson-go/efjson"

// Box decodes a value with Inner and always completes with a non-nil
// *T, the Go analogue of the grounding crate's Box<T> deserializer for
// recursive types that need an indirection to be representable at all.
type Box[T any] struct {
	Inner func() Deserializer[T]

	inner   Deserializer[T]
	started bool
}

func NewBox[T any](inner func() Deserializer[T]) *Box[T] {
	return &Box[T]{Inner: inner}
}

func (d *Box[T]) Feed(tok efjson.Token) (Outcome[*T], error) {
	if !d.started {
		if tok.IsSpace() {
			return Continue[*T](), nil
		}
		d.inner = d.Inner()
		d.started = true
	}
	outcome, err := d.inner.Feed(tok)
	if err != nil {
		return Outcome[*T]{}, err
	}
	if !outcome.IsComplete() {
		return Continue[*T](), nil
	}
	v := outcome.Value()
	if outcome.Rollback() {
		return CompleteWithRollback(&v), nil
	}
	return Complete(&v), nil
}

func (d *Box[T]) Close() {
	if d.inner != nil {
		if c, ok := d.inner.(Cancelable); ok {
			c.Close()
		}
	}
}
