package deserialize

import "github.com/efjson-go/efjson"

// mapped adapts a Deserializer[T] into a Deserializer[U] by transforming
// its completed value, the way Map transforms a single Outcome.
type mapped[T, U any] struct {
	inner Deserializer[T]
	f     func(T) U
}

func (m *mapped[T, U]) Feed(tok efjson.Token) (Outcome[U], error) {
	outcome, err := m.inner.Feed(tok)
	if err != nil {
		return Outcome[U]{}, err
	}
	return Map(outcome, m.f), nil
}

func (m *mapped[T, U]) Close() {
	if c, ok := m.inner.(Cancelable); ok {
		c.Close()
	}
}

type jsonValueStage uint8

const (
	jvNotStarted jsonValueStage = iota
	jvDelegated
)

// JSONValue decodes any well-formed JSON value into a JsonValue tree,
// dispatching on the first significant token's Category to pick the
// concrete sub-deserializer the same way the grounding crate's
// JsonDeserializer does, then forwarding every further token to it.
type JSONValue struct {
	stage jsonValueStage
	inner Deserializer[efjson.JsonValue]
}

func NewJSONValue() *JSONValue { return &JSONValue{} }

func (d *JSONValue) Feed(tok efjson.Token) (Outcome[efjson.JsonValue], error) {
	if d.stage == jvNotStarted {
		if tok.IsSpace() {
			return Continue[efjson.JsonValue](), nil
		}
		switch tok.Info.Kind.Category() {
		case efjson.CategoryNull:
			d.inner = &mapped[struct{}, efjson.JsonValue]{inner: NewNull(), f: func(struct{}) efjson.JsonValue { return efjson.Null() }}
		case efjson.CategoryBoolean:
			d.inner = &mapped[bool, efjson.JsonValue]{inner: NewBool(), f: func(b bool) efjson.JsonValue { return efjson.Bool(b) }}
		case efjson.CategoryNumber:
			d.inner = &mapped[float64, efjson.JsonValue]{inner: NewFloat[float64](), f: func(v float64) efjson.JsonValue { return efjson.Number(v) }}
		case efjson.CategoryString:
			d.inner = &mapped[string, efjson.JsonValue]{inner: NewString(), f: func(s string) efjson.JsonValue { return efjson.String(s) }}
		case efjson.CategoryArray:
			d.inner = &mapped[[]efjson.JsonValue, efjson.JsonValue]{
				inner: NewSlice(func() Deserializer[efjson.JsonValue] { return NewJSONValue() }),
				f:     func(v []efjson.JsonValue) efjson.JsonValue { return efjson.Array(v) },
			}
		case efjson.CategoryObject:
			d.inner = &mapped[*efjson.Object, efjson.JsonValue]{inner: newJSONObject(), f: func(o *efjson.Object) efjson.JsonValue { return efjson.ObjectValue(o) }}
		default:
			return Outcome[efjson.JsonValue]{}, &DeserializeError{GoType: "efjson.JsonValue", Reason: "unexpected token starting a value"}
		}
		d.stage = jvDelegated
	}
	return d.inner.Feed(tok)
}

func (d *JSONValue) Close() {
	if c, ok := d.inner.(Cancelable); ok {
		c.Close()
	}
}

// Value tokenizes and decodes s into an efjson.JsonValue tree in one
// call, the untyped escape hatch alongside DeserializeString's typed
// one.
func Value(option efjson.Option, s string) (efjson.JsonValue, error) {
	return DeserializeString[efjson.JsonValue](NewJSONValue(), option, s)
}
