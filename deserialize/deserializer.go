package deserialize

import (
	"fmt"

	"github.com/efjson-go/efjson"
)

// Deserializer is fed one token at a time and eventually produces a T.
// Implementations must be safe to abandon mid-stream: a caller that
// stops feeding a Deserializer because the surrounding document turned
// out to be malformed elsewhere does not need to keep feeding it to
// "finish" it, it can simply drop the reference (see Cancelable for
// implementations that hold onto pooled resources and need an explicit
// release instead of just letting the garbage collector reclaim them).
type Deserializer[T any] interface {
	Feed(tok efjson.Token) (Outcome[T], error)
}

// Cancelable is implemented by container deserializers (array, object,
// tuple, struct helper) that keep a partially-built child deserializer
// between calls to Feed. Close releases that child without requiring it
// to ever see a completing token, for callers that abandon a document
// mid-parse.
type Cancelable interface {
	Close()
}

// DeserializeError reports that decoding failed: either the underlying
// token stream was malformed (Cause is a *efjson.StreamError) or a
// Deserializer rejected a well-formed token for type-specific reasons
// (a wrong JSON kind for the target type, an out-of-range number, a
// duplicate struct field).
type DeserializeError struct {
	// GoType names the Go type being decoded into, e.g. "int32".
	GoType string
	// Reason is a human-readable description of what went wrong.
	Reason string
	// Cause, if non-nil, is the token-stream error that triggered this.
	Cause error
}

func (e *DeserializeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("efjson: decoding into %s: %s: %v", e.GoType, e.Reason, e.Cause)
	}
	return fmt.Sprintf("efjson: decoding into %s: %s", e.GoType, e.Reason)
}

func (e *DeserializeError) Unwrap() error { return e.Cause }

func (e *DeserializeError) Is(target error) bool { return target == efjson.Error }

// Deserialize drives d with every token, including whitespace, comments
// and the trailing EOF marker: these are not filtered out here because a
// number or keyword lexeme can only tell it has ended when one of them
// arrives, so each built-in Deserializer is responsible for skipping the
// ones it sees before it has started. Deserialize returns as soon as d
// completes and does not require tokens to be exhausted: trailing input
// after the value is not inspected, mirroring the grammar's own "one
// value, stream keeps going" model rather than the all-input-must-be-
// consumed contract a one-shot Unmarshal would have.
func Deserialize[T any](d Deserializer[T], tokens []efjson.Token) (T, error) {
	var zero T
	for _, tok := range tokens {
		outcome, err := d.Feed(tok)
		if err != nil {
			return zero, err
		}
		if outcome.IsComplete() {
			return outcome.Value(), nil
		}
	}
	return zero, &DeserializeError{Reason: "input ended before value completed"}
}

// DeserializeString tokenizes s under option and decodes it with d, in
// one call.
func DeserializeString[T any](d Deserializer[T], option efjson.Option, s string) (T, error) {
	var zero T
	tokens, err := efjson.Parse(option, s)
	if err != nil {
		return zero, &DeserializeError{Reason: "tokenizing input", Cause: err}
	}
	return Deserialize(d, tokens)
}
