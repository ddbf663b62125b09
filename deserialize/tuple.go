package deserialize

import "github.com/efjson-go/efjson"

type tupleStage uint8

const (
	tupleNotStarted tupleStage = iota
	tupleWaitElement
	tupleElement
	tupleElementEnd
	tupleDone
)

// Pair is the result of Tuple2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Tuple2 decodes a fixed two-element JSON array into a typed Pair,
// validating arity (neither a short nor an over-long array is
// accepted) the way the grounding crate's tuple deserializers do before
// delegating each slot to its own deserializer.
type Tuple2[A, B any] struct {
	First  func() Deserializer[A]
	Second func() Deserializer[B]

	stage tupleStage
	idx   int
	a     A
	b     B
	curA  Deserializer[A]
	curB  Deserializer[B]
}

func NewTuple2[A, B any](first func() Deserializer[A], second func() Deserializer[B]) *Tuple2[A, B] {
	return &Tuple2[A, B]{First: first, Second: second}
}

func (d *Tuple2[A, B]) Feed(tok efjson.Token) (Outcome[Pair[A, B]], error) {
	switch d.stage {
	case tupleNotStarted:
		if tok.IsSpace() {
			return Continue[Pair[A, B]](), nil
		}
		if tok.Info.Kind != efjson.KindArrayStart {
			return Outcome[Pair[A, B]]{}, &DeserializeError{GoType: "tuple2", Reason: "expected an array"}
		}
		d.stage = tupleWaitElement
		return Continue[Pair[A, B]](), nil
	case tupleWaitElement:
		if tok.IsSpace() {
			return Continue[Pair[A, B]](), nil
		}
		if tok.Info.Kind == efjson.KindArrayEnd {
			return Outcome[Pair[A, B]]{}, &DeserializeError{GoType: "tuple2", Reason: "array too short for tuple"}
		}
		switch d.idx {
		case 0:
			d.curA = d.First()
		case 1:
			d.curB = d.Second()
		}
		d.stage = tupleElement
		return d.feedElement(tok)
	case tupleElement:
		return d.feedElement(tok)
	case tupleElementEnd:
		if tok.IsSpace() {
			return Continue[Pair[A, B]](), nil
		}
		switch tok.Info.Kind {
		case efjson.KindArrayNext:
			if d.idx >= 2 {
				return Outcome[Pair[A, B]]{}, &DeserializeError{GoType: "tuple2", Reason: "array too long for tuple"}
			}
			d.stage = tupleWaitElement
			return Continue[Pair[A, B]](), nil
		case efjson.KindArrayEnd:
			if d.idx != 2 {
				return Outcome[Pair[A, B]]{}, &DeserializeError{GoType: "tuple2", Reason: "array too short for tuple"}
			}
			d.stage = tupleDone
			return Complete(Pair[A, B]{First: d.a, Second: d.b}), nil
		default:
			return Outcome[Pair[A, B]]{}, &DeserializeError{GoType: "tuple2", Reason: "expected , or ] after tuple element"}
		}
	default:
		return Outcome[Pair[A, B]]{}, &DeserializeError{GoType: "tuple2", Reason: "fed after completion"}
	}
}

func (d *Tuple2[A, B]) feedElement(tok efjson.Token) (Outcome[Pair[A, B]], error) {
	var done, rollback bool
	switch d.idx {
	case 0:
		outcome, err := d.curA.Feed(tok)
		if err != nil {
			return Outcome[Pair[A, B]]{}, err
		}
		if outcome.IsComplete() {
			d.a = outcome.Value()
			d.curA = nil
			done, rollback = true, outcome.Rollback()
		}
	case 1:
		outcome, err := d.curB.Feed(tok)
		if err != nil {
			return Outcome[Pair[A, B]]{}, err
		}
		if outcome.IsComplete() {
			d.b = outcome.Value()
			d.curB = nil
			done, rollback = true, outcome.Rollback()
		}
	}
	if !done {
		return Continue[Pair[A, B]](), nil
	}
	d.idx++
	d.stage = tupleElementEnd
	if rollback {
		return d.Feed(tok)
	}
	return Continue[Pair[A, B]](), nil
}

func (d *Tuple2[A, B]) Close() {
	if d.curA != nil {
		if c, ok := d.curA.(Cancelable); ok {
			c.Close()
		}
	}
	if d.curB != nil {
		if c, ok := d.curB.(Cancelable); ok {
			c.Close()
		}
	}
}
