package deserialize

import "github.com/efjson-go/efjson"

// Option wraps the result of an Optional deserializer: Present is false
// when the JSON value was null.
type Option[T any] struct {
	Present bool
	Value   T
}

// Optional decodes either JSON null, or delegates to a deserializer
// built by Inner once the first token proves the value is not null.
type Optional[T any] struct {
	Inner func() Deserializer[T]

	started bool
	isNull  bool
	null    *Null
	inner   Deserializer[T]
}

func NewOptional[T any](inner func() Deserializer[T]) *Optional[T] {
	return &Optional[T]{Inner: inner}
}

func (d *Optional[T]) Feed(tok efjson.Token) (Outcome[Option[T]], error) {
	if !d.started {
		if tok.IsSpace() {
			return Continue[Option[T]](), nil
		}
		d.started = true
		if tok.Info.Kind == efjson.KindNull {
			d.isNull = true
			d.null = NewNull()
		} else {
			d.inner = d.Inner()
		}
	}
	if d.isNull {
		outcome, err := d.null.Feed(tok)
		if err != nil {
			return Outcome[Option[T]]{}, err
		}
		if !outcome.IsComplete() {
			return Continue[Option[T]](), nil
		}
		zeroOpt := Option[T]{}
		if outcome.Rollback() {
			return CompleteWithRollback(zeroOpt), nil
		}
		return Complete(zeroOpt), nil
	}
	outcome, err := d.inner.Feed(tok)
	if err != nil {
		return Outcome[Option[T]]{}, err
	}
	if !outcome.IsComplete() {
		return Continue[Option[T]](), nil
	}
	wrapped := Option[T]{Present: true, Value: outcome.Value()}
	if outcome.Rollback() {
		return CompleteWithRollback(wrapped), nil
	}
	return Complete(wrapped), nil
}

func (d *Optional[T]) Close() {
	if d.inner != nil {
		if c, ok := d.inner.(Cancelable); ok {
			c.Close()
		}
	}
}
