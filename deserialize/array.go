package deserialize

import "github.com/efjson-go/efjson"

type sliceStage uint8

const (
	sliceNotStarted sliceStage = iota
	sliceWaitElement
	sliceElement
	sliceElementEnd
	sliceDone
)

// Slice decodes a JSON array into []T, constructing a fresh element
// deserializer for each slot the way the grounding crate's
// ArrayReceiverDeserializer stage machine does, re-feeding a rollback
// token to itself rather than ever buffering one.
type Slice[T any] struct {
	Elem func() Deserializer[T]

	stage   sliceStage
	current Deserializer[T]
	values  []T
}

func NewSlice[T any](elem func() Deserializer[T]) *Slice[T] {
	return &Slice[T]{Elem: elem}
}

func (d *Slice[T]) Feed(tok efjson.Token) (Outcome[[]T], error) {
	switch d.stage {
	case sliceNotStarted:
		if tok.IsSpace() {
			return Continue[[]T](), nil
		}
		if tok.Info.Kind != efjson.KindArrayStart {
			return Outcome[[]T]{}, &DeserializeError{GoType: "slice", Reason: "expected an array"}
		}
		d.stage = sliceWaitElement
		return Continue[[]T](), nil
	case sliceWaitElement:
		if tok.IsSpace() {
			return Continue[[]T](), nil
		}
		if tok.Info.Kind == efjson.KindArrayEnd {
			d.stage = sliceDone
			return Complete(d.values), nil
		}
		d.current = d.Elem()
		d.stage = sliceElement
		return d.feedElement(tok)
	case sliceElement:
		return d.feedElement(tok)
	case sliceElementEnd:
		if tok.IsSpace() {
			return Continue[[]T](), nil
		}
		switch tok.Info.Kind {
		case efjson.KindArrayNext:
			d.stage = sliceWaitElement
			return Continue[[]T](), nil
		case efjson.KindArrayEnd:
			d.stage = sliceDone
			return Complete(d.values), nil
		default:
			return Outcome[[]T]{}, &DeserializeError{GoType: "slice", Reason: "expected , or ] after array element"}
		}
	default:
		return Outcome[[]T]{}, &DeserializeError{GoType: "slice", Reason: "fed after completion"}
	}
}

func (d *Slice[T]) feedElement(tok efjson.Token) (Outcome[[]T], error) {
	outcome, err := d.current.Feed(tok)
	if err != nil {
		return Outcome[[]T]{}, err
	}
	if !outcome.IsComplete() {
		return Continue[[]T](), nil
	}
	d.values = append(d.values, outcome.Value())
	d.current = nil
	d.stage = sliceElementEnd
	if outcome.Rollback() {
		return d.Feed(tok)
	}
	return Continue[[]T](), nil
}

func (d *Slice[T]) Close() {
	if d.current != nil {
		if c, ok := d.current.(Cancelable); ok {
			c.Close()
		}
	}
}

// FixedArray decodes a JSON array of exactly N elements into a Go
// array. It is a thin wrapper over Slice that validates length at
// completion.
type FixedArray[T any] struct {
	slice *Slice[T]
	n     int
}

func NewFixedArray[T any](n int, elem func() Deserializer[T]) *FixedArray[T] {
	return &FixedArray[T]{slice: NewSlice(elem), n: n}
}

func (d *FixedArray[T]) Feed(tok efjson.Token) (Outcome[[]T], error) {
	outcome, err := d.slice.Feed(tok)
	if err != nil {
		return Outcome[[]T]{}, err
	}
	if !outcome.IsComplete() {
		return Continue[[]T](), nil
	}
	values := outcome.Value()
	if len(values) != d.n {
		return Outcome[[]T]{}, &DeserializeError{GoType: "array", Reason: "array length mismatch"}
	}
	if outcome.Rollback() {
		return CompleteWithRollback(values), nil
	}
	return Complete(values), nil
}

func (d *FixedArray[T]) Close() { d.slice.Close() }
