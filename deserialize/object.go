package deserialize

import "github.com/efjson-go/efjson"

type objectStage uint8

const (
	objNotStarted objectStage = iota
	objWaitKey
	objKey
	objKeyEnd
	objWaitValue
	objValue
	objValueEnd
	objDone
)

// ObjectMap decodes a JSON object into map[string]T, delegating each value to
// a fresh deserializer from Elem. Keys are always read as plain Go
// strings; an unquoted JSON5 identifier key is accepted by the
// tokenizer and decoded the same way a quoted key would be, but a key
// that itself needs structure (nested objects as keys, for instance)
// is out of scope here the same way it is for encoding/json.
type ObjectMap[T any] struct {
	Elem func() Deserializer[T]

	stage   objectStage
	key     *String
	curKey  string
	current Deserializer[T]
	values  map[string]T
}

func NewObjectMap[T any](elem func() Deserializer[T]) *ObjectMap[T] {
	return &ObjectMap[T]{Elem: elem, values: make(map[string]T)}
}

func (d *ObjectMap[T]) Feed(tok efjson.Token) (Outcome[map[string]T], error) {
	switch d.stage {
	case objNotStarted:
		if tok.IsSpace() {
			return Continue[map[string]T](), nil
		}
		if tok.Info.Kind != efjson.KindObjectStart {
			return Outcome[map[string]T]{}, &DeserializeError{GoType: "map", Reason: "expected an object"}
		}
		d.stage = objWaitKey
		return Continue[map[string]T](), nil
	case objWaitKey:
		if tok.IsSpace() {
			return Continue[map[string]T](), nil
		}
		if tok.Info.Kind == efjson.KindObjectEnd {
			d.stage = objDone
			return Complete(d.values), nil
		}
		d.key = NewString()
		d.stage = objKey
		return d.feedKey(tok)
	case objKey:
		return d.feedKey(tok)
	case objKeyEnd:
		if tok.IsSpace() {
			return Continue[map[string]T](), nil
		}
		if tok.Info.Kind != efjson.KindObjectValueStart {
			return Outcome[map[string]T]{}, &DeserializeError{GoType: "map", Reason: "expected : after object key"}
		}
		d.stage = objWaitValue
		return Continue[map[string]T](), nil
	case objWaitValue:
		if tok.IsSpace() {
			return Continue[map[string]T](), nil
		}
		d.current = d.Elem()
		d.stage = objValue
		return d.feedValue(tok)
	case objValue:
		return d.feedValue(tok)
	case objValueEnd:
		if tok.IsSpace() {
			return Continue[map[string]T](), nil
		}
		switch tok.Info.Kind {
		case efjson.KindObjectNext:
			d.stage = objWaitKey
			return Continue[map[string]T](), nil
		case efjson.KindObjectEnd:
			d.stage = objDone
			return Complete(d.values), nil
		default:
			return Outcome[map[string]T]{}, &DeserializeError{GoType: "map", Reason: "expected , or } after object value"}
		}
	default:
		return Outcome[map[string]T]{}, &DeserializeError{GoType: "map", Reason: "fed after completion"}
	}
}

func (d *ObjectMap[T]) feedKey(tok efjson.Token) (Outcome[map[string]T], error) {
	outcome, err := d.key.Feed(tok)
	if err != nil {
		return Outcome[map[string]T]{}, err
	}
	if !outcome.IsComplete() {
		return Continue[map[string]T](), nil
	}
	d.curKey = outcome.Value()
	d.stage = objKeyEnd
	if outcome.Rollback() {
		return d.Feed(tok)
	}
	return Continue[map[string]T](), nil
}

func (d *ObjectMap[T]) feedValue(tok efjson.Token) (Outcome[map[string]T], error) {
	outcome, err := d.current.Feed(tok)
	if err != nil {
		return Outcome[map[string]T]{}, err
	}
	if !outcome.IsComplete() {
		return Continue[map[string]T](), nil
	}
	d.values[d.curKey] = outcome.Value()
	d.current = nil
	d.stage = objValueEnd
	if outcome.Rollback() {
		return d.Feed(tok)
	}
	return Continue[map[string]T](), nil
}

func (d *ObjectMap[T]) Close() {
	if d.current != nil {
		if c, ok := d.current.(Cancelable); ok {
			c.Close()
		}
	}
}

// jsonObject decodes a JSON object into *efjson.Object, preserving key
// insertion order the way JsonValue requires. It mirrors ObjectMap's stage
// machine but writes into the ordered container instead of a plain Go
// map.
type jsonObject struct {
	stage   objectStage
	key     *String
	curKey  string
	current Deserializer[efjson.JsonValue]
	obj     *efjson.Object
}

func newJSONObject() *jsonObject {
	return &jsonObject{obj: efjson.NewObject()}
}

func (d *jsonObject) Feed(tok efjson.Token) (Outcome[*efjson.Object], error) {
	switch d.stage {
	case objNotStarted:
		if tok.IsSpace() {
			return Continue[*efjson.Object](), nil
		}
		if tok.Info.Kind != efjson.KindObjectStart {
			return Outcome[*efjson.Object]{}, &DeserializeError{GoType: "efjson.Object", Reason: "expected an object"}
		}
		d.stage = objWaitKey
		return Continue[*efjson.Object](), nil
	case objWaitKey:
		if tok.IsSpace() {
			return Continue[*efjson.Object](), nil
		}
		if tok.Info.Kind == efjson.KindObjectEnd {
			d.stage = objDone
			return Complete(d.obj), nil
		}
		d.key = NewString()
		d.stage = objKey
		return d.feedKey(tok)
	case objKey:
		return d.feedKey(tok)
	case objKeyEnd:
		if tok.IsSpace() {
			return Continue[*efjson.Object](), nil
		}
		if tok.Info.Kind != efjson.KindObjectValueStart {
			return Outcome[*efjson.Object]{}, &DeserializeError{GoType: "efjson.Object", Reason: "expected : after object key"}
		}
		d.stage = objWaitValue
		return Continue[*efjson.Object](), nil
	case objWaitValue:
		if tok.IsSpace() {
			return Continue[*efjson.Object](), nil
		}
		d.current = NewJSONValue()
		d.stage = objValue
		return d.feedValue(tok)
	case objValue:
		return d.feedValue(tok)
	case objValueEnd:
		if tok.IsSpace() {
			return Continue[*efjson.Object](), nil
		}
		switch tok.Info.Kind {
		case efjson.KindObjectNext:
			d.stage = objWaitKey
			return Continue[*efjson.Object](), nil
		case efjson.KindObjectEnd:
			d.stage = objDone
			return Complete(d.obj), nil
		default:
			return Outcome[*efjson.Object]{}, &DeserializeError{GoType: "efjson.Object", Reason: "expected , or } after object value"}
		}
	default:
		return Outcome[*efjson.Object]{}, &DeserializeError{GoType: "efjson.Object", Reason: "fed after completion"}
	}
}

func (d *jsonObject) feedKey(tok efjson.Token) (Outcome[*efjson.Object], error) {
	outcome, err := d.key.Feed(tok)
	if err != nil {
		return Outcome[*efjson.Object]{}, err
	}
	if !outcome.IsComplete() {
		return Continue[*efjson.Object](), nil
	}
	d.curKey = outcome.Value()
	d.stage = objKeyEnd
	if outcome.Rollback() {
		return d.Feed(tok)
	}
	return Continue[*efjson.Object](), nil
}

func (d *jsonObject) feedValue(tok efjson.Token) (Outcome[*efjson.Object], error) {
	outcome, err := d.current.Feed(tok)
	if err != nil {
		return Outcome[*efjson.Object]{}, err
	}
	if !outcome.IsComplete() {
		return Continue[*efjson.Object](), nil
	}
	d.obj.Set(d.curKey, outcome.Value())
	d.current = nil
	d.stage = objValueEnd
	if outcome.Rollback() {
		return d.Feed(tok)
	}
	return Continue[*efjson.Object](), nil
}

func (d *jsonObject) Close() {
	if d.current != nil {
		if c, ok := d.current.(Cancelable); ok {
			c.Close()
		}
	}
}
