package deserialize

import (
	"fmt"
	"math"
	"strconv"

	"github.com/efjson-go/efjson"
)

type floatKind interface {
	~float32 | ~float64
}

// Float decodes any JSON number lexeme, including the JSON5 hex/octal/
// binary integer forms and the NaN/Infinity keywords, into a Go
// floating-point type. The decimal/exponent lexeme is accumulated
// verbatim and handed to strconv.ParseFloat once it is known to have
// ended; a non-decimal radix is parsed as an unsigned integer and
// converted, since the grammar never allows a fraction or exponent
// alongside a 0x/0o/0b prefix.
type Float[T floatKind] struct {
	lexeme   []byte
	digits   []byte
	radix    int
	negative bool
	started  bool
}

func NewFloat[T floatKind]() *Float[T] { return &Float[T]{radix: 10} }

func (d *Float[T]) Feed(tok efjson.Token) (Outcome[T], error) {
	switch tok.Info.Kind {
	case efjson.KindNumberIntegerSign:
		d.started = true
		d.negative = tok.Char == '-'
		d.lexeme = append(d.lexeme, byte(tok.Char))
		return Continue[T](), nil
	case efjson.KindNumberExponentSign,
		efjson.KindNumberIntegerDigit, efjson.KindNumberFractionDigit, efjson.KindNumberExponentDigit:
		d.started = true
		d.lexeme = append(d.lexeme, byte(tok.Char))
		return Continue[T](), nil
	case efjson.KindNumberFractionStart:
		d.started = true
		d.lexeme = append(d.lexeme, '.')
		return Continue[T](), nil
	case efjson.KindNumberExponentStart:
		d.started = true
		d.lexeme = append(d.lexeme, 'e')
		return Continue[T](), nil
	case efjson.KindNumberNaN:
		d.started = true
		if tok.Info.Done {
			return Complete[T](T(math.NaN())), nil
		}
		return Continue[T](), nil
	case efjson.KindNumberInfinity:
		d.started = true
		if tok.Info.Done {
			v := math.Inf(1)
			if d.negative {
				v = math.Inf(-1)
			}
			return Complete[T](T(v)), nil
		}
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
	default:
		if !d.started {
			if tok.IsSpace() {
				return Continue[T](), nil
			}
			return Outcome[T]{}, &DeserializeError{GoType: goTypeName[T](), Reason: fmt.Sprintf("expected a number, got token kind %d", tok.Info.Kind)}
		}
		v, err := d.finish()
		if err != nil {
			return Outcome[T]{}, err
		}
		return CompleteWithRollback(v), nil
	}
}

func (d *Float[T]) finish() (T, error) {
	var zero T
	if d.radix != 10 {
		if len(d.digits) == 0 {
			return zero, &DeserializeError{GoType: goTypeName[T](), Reason: "empty integer literal"}
		}
		n, err := strconv.ParseUint(string(d.digits), d.radix, 64)
		if err != nil {
			return zero, &DeserializeError{GoType: goTypeName[T](), Reason: "integer out of range", Cause: err}
		}
		v := float64(n)
		if d.negative {
			v = -v
		}
		return T(v), nil
	}
	if len(d.lexeme) == 0 {
		return zero, &DeserializeError{GoType: goTypeName[T](), Reason: "empty number literal"}
	}
	f, err := strconv.ParseFloat(string(d.lexeme), 64)
	if err != nil {
		return zero, &DeserializeError{GoType: goTypeName[T](), Reason: "invalid number literal", Cause: err}
	}
	return T(f), nil
}
