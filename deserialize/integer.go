package deserialize

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/efjson-go/efjson"
)

type signedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer decodes a JSON number lexeme with no fraction or exponent into
// a signed Go integer type, tracking the raw digit text and radix the
// way the grounding crate's IntegerDeserializer does rather than
// building a full float64 first. A number is only known to have ended
// once a non-digit token arrives (whitespace, a comment, EOF, or a
// structural character the tokenizer let through as a separator), so
// completion is always reported via CompleteWithRollback.
type Integer[T signedInteger] struct {
	digits   []byte
	negative bool
	radix    int
	started  bool
}

func NewInteger[T signedInteger]() *Integer[T] { return &Integer[T]{radix: 10} }

func (d *Integer[T]) Feed(tok efjson.Token) (Outcome[T], error) {
	switch tok.Info.Kind {
	case efjson.KindNumberIntegerSign:
		d.started = true
		d.negative = tok.Char == '-'
		return Continue[T](), nil
	case efjson.KindNumberIntegerDigit:
		d.started = true
		d.digits = append(d.digits, byte(tok.Char))
		return Continue[T](), nil
	case efjson.KindNumberHexStart:
		d.started, d.radix, d.digits = true, 16, d.digits[:0]
		return Continue[T](), nil
	case efjson.KindNumberOctStart:
		d.started, d.radix, d.digits = true, 8, d.digits[:0]
		return Continue[T](), nil
	case efjson.KindNumberBinStart:
		d.started, d.radix, d.digits = true, 2, d.digits[:0]
		return Continue[T](), nil
	case efjson.KindNumberHex, efjson.KindNumberOct, efjson.KindNumberBin:
		d.digits = append(d.digits, byte(tok.Char))
		return Continue[T](), nil
	case efjson.KindNumberFractionStart, efjson.KindNumberExponentStart:
		return Outcome[T]{}, &DeserializeError{GoType: goTypeName[T](), Reason: "expected an integer, got a fraction or exponent"}
	default:
		if !d.started {
			if tok.IsSpace() {
				return Continue[T](), nil
			}
			return Outcome[T]{}, &DeserializeError{GoType: goTypeName[T](), Reason: fmt.Sprintf("expected an integer, got token kind %d", tok.Info.Kind)}
		}
		v, err := d.finish()
		if err != nil {
			return Outcome[T]{}, err
		}
		return CompleteWithRollback(v), nil
	}
}

func (d *Integer[T]) finish() (T, error) {
	var zero T
	if len(d.digits) == 0 {
		return zero, &DeserializeError{GoType: goTypeName[T](), Reason: "empty integer literal"}
	}
	s := string(d.digits)
	if d.negative {
		s = "-" + s
	}
	n, err := strconv.ParseInt(s, d.radix, reflect.TypeOf(zero).Bits())
	if err != nil {
		return zero, &DeserializeError{GoType: goTypeName[T](), Reason: "integer out of range", Cause: err}
	}
	return T(n), nil
}

// Unsigned decodes a non-negative JSON integer lexeme into an unsigned
// Go integer type. A leading minus sign is rejected outright rather
// than silently wrapping.
type Unsigned[T unsignedInteger] struct {
	digits  []byte
	radix   int
	started bool
}

func NewUnsigned[T unsignedInteger]() *Unsigned[T] { return &Unsigned[T]{radix: 10} }

func (d *Unsigned[T]) Feed(tok efjson.Token) (Outcome[T], error) {
	switch tok.Info.Kind {
	case efjson.KindNumberIntegerSign:
		d.started = true
		if tok.Char == '-' {
			return Outcome[T]{}, &DeserializeError{GoType: goTypeName[T](), Reason: "negative number for an unsigned integer"}
		}
		return Continue[T](), nil
	case efjson.KindNumberIntegerDigit:
		d.started = true
		d.digits = append(d.digits, byte(tok.Char))
		return Continue[T](), nil
	case efjson.KindNumberHexStart:
		d.started, d.radix, d.digits = true, 16, d.digits[:0]
		return Continue[T](), nil
	case efjson.KindNumberOctStart:
		d.started, d.radix, d.digits = true, 8, d.digits[:0]
		return Continue[T](), nil
	case efjson.KindNumberBinStart:
		d.started, d.radix, d.digits = true, 2, d.digits[:0]
		return Continue[T](), nil
	case efjson.KindNumberHex, efjson.KindNumberOct, efjson.KindNumberBin:
		d.digits = append(d.digits, byte(tok.Char))
		return Continue[T](), nil
	case efjson.KindNumberFractionStart, efjson.KindNumberExponentStart:
		return Outcome[T]{}, &DeserializeError{GoType: goTypeName[T](), Reason: "expected an integer, got a fraction or exponent"}
	default:
		if !d.started {
			if tok.IsSpace() {
				return Continue[T](), nil
			}
			return Outcome[T]{}, &DeserializeError{GoType: goTypeName[T](), Reason: fmt.Sprintf("expected an integer, got token kind %d", tok.Info.Kind)}
		}
		v, err := d.finish()
		if err != nil {
			return Outcome[T]{}, err
		}
		return CompleteWithRollback(v), nil
	}
}

func (d *Unsigned[T]) finish() (T, error) {
	var zero T
	if len(d.digits) == 0 {
		return zero, &DeserializeError{GoType: goTypeName[T](), Reason: "empty integer literal"}
	}
	n, err := strconv.ParseUint(string(d.digits), d.radix, reflect.TypeOf(zero).Bits())
	if err != nil {
		return zero, &DeserializeError{GoType: goTypeName[T](), Reason: "integer out of range", Cause: err}
	}
	return T(n), nil
}

func goTypeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
