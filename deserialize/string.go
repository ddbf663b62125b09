package deserialize

import (
	"strings"
	"unicode/utf16"

	"github.com/efjson-go/efjson"
)

// String decodes a quoted JSON string, or an unquoted JSON5 object key,
// into a Go string. \uXXXX escapes are merged into full runes across
// surrogate pairs the same way encoding/json does; an unpaired
// surrogate half is rejected rather than passed through as-is.
type String struct {
	sb             strings.Builder
	started        bool
	pendingHigh    rune
	hasPendingHigh bool
}

func NewString() *String { return &String{} }

func (d *String) Feed(tok efjson.Token) (Outcome[string], error) {
	switch tok.Info.Kind {
	case efjson.KindStringStart:
		d.started = true
		return Continue[string](), nil
	case efjson.KindStringNormal, efjson.KindIdentifierNormal:
		d.started = true
		if err := d.appendScalar(tok.Char); err != nil {
			return Outcome[string]{}, err
		}
		return Continue[string](), nil
	case efjson.KindStringEscape:
		d.started = true
		if tok.Info.HasChar {
			if err := d.appendScalar(tok.Info.Char); err != nil {
				return Outcome[string]{}, err
			}
		}
		return Continue[string](), nil
	case efjson.KindStringEscapeUnicode, efjson.KindStringEscapeHex, efjson.KindIdentifierEscape:
		d.started = true
		if tok.Info.Done && tok.Info.HasChar {
			if err := d.appendUnit(tok.Info.Char); err != nil {
				return Outcome[string]{}, err
			}
		}
		if tok.Info.Kind == efjson.KindIdentifierEscape && tok.Info.Done {
			return Complete(d.sb.String()), nil
		}
		return Continue[string](), nil
	case efjson.KindStringEscapeStart, efjson.KindStringEscapeUnicodeStart, efjson.KindStringEscapeHexStart,
		efjson.KindStringNextLine, efjson.KindIdentifierEscapeStart:
		d.started = true
		return Continue[string](), nil
	case efjson.KindStringEnd:
		if d.hasPendingHigh {
			return Outcome[string]{}, &DeserializeError{GoType: "string", Reason: "incomplete surrogate pair at end of string"}
		}
		return Complete(d.sb.String()), nil
	case efjson.KindWhitespace:
		// An unquoted identifier key ends on the whitespace that
		// follows it; any other whitespace seen before a string or
		// identifier has started is insignificant leading space.
		if d.started {
			if d.hasPendingHigh {
				return Outcome[string]{}, &DeserializeError{GoType: "string", Reason: "incomplete surrogate pair at end of identifier"}
			}
			return CompleteWithRollback(d.sb.String()), nil
		}
		return Continue[string](), nil
	case efjson.KindObjectValueStart:
		// An unquoted identifier key can also end directly on the
		// colon that follows it, with no intervening whitespace.
		if d.started {
			if d.hasPendingHigh {
				return Outcome[string]{}, &DeserializeError{GoType: "string", Reason: "incomplete surrogate pair at end of identifier"}
			}
			return CompleteWithRollback(d.sb.String()), nil
		}
		return Outcome[string]{}, &DeserializeError{GoType: "string", Reason: "expected a string"}
	default:
		if tok.IsSpace() && !d.started {
			return Continue[string](), nil
		}
		return Outcome[string]{}, &DeserializeError{GoType: "string", Reason: "expected a string"}
	}
}

func (d *String) appendScalar(c rune) error {
	if d.hasPendingHigh {
		return &DeserializeError{GoType: "string", Reason: "incomplete surrogate pair"}
	}
	d.sb.WriteRune(c)
	return nil
}

func (d *String) appendUnit(u rune) error {
	switch {
	case u >= 0xD800 && u <= 0xDBFF:
		if d.hasPendingHigh {
			return &DeserializeError{GoType: "string", Reason: "incomplete surrogate pair"}
		}
		d.pendingHigh = u
		d.hasPendingHigh = true
		return nil
	case u >= 0xDC00 && u <= 0xDFFF:
		if !d.hasPendingHigh {
			return &DeserializeError{GoType: "string", Reason: "unpaired low surrogate"}
		}
		r := utf16.DecodeRune(d.pendingHigh, u)
		d.hasPendingHigh = false
		if r == 0xFFFD {
			return &DeserializeError{GoType: "string", Reason: "invalid surrogate pair"}
		}
		d.sb.WriteRune(r)
		return nil
	default:
		if d.hasPendingHigh {
			return &DeserializeError{GoType: "string", Reason: "incomplete surrogate pair"}
		}
		d.sb.WriteRune(u)
		return nil
	}
}
