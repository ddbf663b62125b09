package deserialize

import "github.com/efjson-go/efjson"

// FieldSpec binds one JSON object key to a constructor for the
// Deserializer that decodes it, produced by Field or OptionalField.
type FieldSpec struct {
	Key      string
	Required bool
	New      func() Deserializer[struct{}]
}

// Field declares one required struct field for NewStructBuilder: key is
// the JSON object key, dst receives the decoded value directly (the
// derive-style contract StructBuilder is built around: no reflection,
// every assignment is a plain Go field write emitted by the call
// site), and newInner constructs a fresh Deserializer for the field's
// value each time key is seen. A document that closes without key ever
// appearing is an error.
func Field[T any](key string, dst *T, newInner func() Deserializer[T]) FieldSpec {
	return FieldSpec{Key: key, Required: true, New: fieldCtor(dst, newInner)}
}

// OptionalField declares a struct field that may be absent: dst simply
// keeps its zero value if key never appears.
func OptionalField[T any](key string, dst *T, newInner func() Deserializer[T]) FieldSpec {
	return FieldSpec{Key: key, Required: false, New: fieldCtor(dst, newInner)}
}

func fieldCtor[T any](dst *T, newInner func() Deserializer[T]) func() Deserializer[struct{}] {
	return func() Deserializer[struct{}] {
		return &mapped[T, struct{}]{inner: newInner(), f: func(v T) struct{} {
			*dst = v
			return struct{}{}
		}}
	}
}

// StructBuilder decodes a JSON object field by field into whatever
// destination variables its FieldSpecs close over. It is the shared
// machinery a generated Deserializer[T] implementation delegates to:
// the generated code only needs to declare its fields once and forward
// every Feed call, the way this package's own jsonObject and ObjectMap share
// the same object-stage machine instead of each reimplementing object
// punctuation handling. Keys with no matching FieldSpec are decoded as
// an ordinary JsonValue and discarded, the same forward-compatible
// default encoding/json applies to unknown fields.
type StructBuilder struct {
	fields   map[string]func() Deserializer[struct{}]
	required map[string]bool
	seen     map[string]bool

	stage   objectStage
	key     *String
	curKey  string
	current Deserializer[struct{}]
}

func NewStructBuilder(fields ...FieldSpec) *StructBuilder {
	m := make(map[string]func() Deserializer[struct{}], len(fields))
	required := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f.Key] = f.New
		if f.Required {
			required[f.Key] = true
		}
	}
	return &StructBuilder{fields: m, required: required, seen: make(map[string]bool, len(fields))}
}

func (d *StructBuilder) Feed(tok efjson.Token) (Outcome[struct{}], error) {
	switch d.stage {
	case objNotStarted:
		if tok.IsSpace() {
			return Continue[struct{}](), nil
		}
		if tok.Info.Kind != efjson.KindObjectStart {
			return Outcome[struct{}]{}, &DeserializeError{GoType: "struct", Reason: "expected an object"}
		}
		d.stage = objWaitKey
		return Continue[struct{}](), nil
	case objWaitKey:
		if tok.IsSpace() {
			return Continue[struct{}](), nil
		}
		if tok.Info.Kind == efjson.KindObjectEnd {
			if missing := d.missingRequired(); len(missing) > 0 {
				return Outcome[struct{}]{}, &DeserializeError{GoType: "struct", Reason: "missing required fields: " + joinKeys(missing)}
			}
			d.stage = objDone
			return Complete(struct{}{}), nil
		}
		d.key = NewString()
		d.stage = objKey
		return d.feedKey(tok)
	case objKey:
		return d.feedKey(tok)
	case objKeyEnd:
		if tok.IsSpace() {
			return Continue[struct{}](), nil
		}
		if tok.Info.Kind != efjson.KindObjectValueStart {
			return Outcome[struct{}]{}, &DeserializeError{GoType: "struct", Reason: "expected : after object key"}
		}
		d.stage = objWaitValue
		return Continue[struct{}](), nil
	case objWaitValue:
		if tok.IsSpace() {
			return Continue[struct{}](), nil
		}
		if d.seen[d.curKey] {
			return Outcome[struct{}]{}, &DeserializeError{GoType: "struct", Reason: "duplicate key " + d.curKey}
		}
		d.seen[d.curKey] = true
		if ctor, ok := d.fields[d.curKey]; ok {
			d.current = ctor()
		} else {
			d.current = &mapped[efjson.JsonValue, struct{}]{inner: NewJSONValue(), f: func(efjson.JsonValue) struct{} { return struct{}{} }}
		}
		d.stage = objValue
		return d.feedValue(tok)
	case objValue:
		return d.feedValue(tok)
	case objValueEnd:
		if tok.IsSpace() {
			return Continue[struct{}](), nil
		}
		switch tok.Info.Kind {
		case efjson.KindObjectNext:
			d.stage = objWaitKey
			return Continue[struct{}](), nil
		case efjson.KindObjectEnd:
			if missing := d.missingRequired(); len(missing) > 0 {
				return Outcome[struct{}]{}, &DeserializeError{GoType: "struct", Reason: "missing required fields: " + joinKeys(missing)}
			}
			d.stage = objDone
			return Complete(struct{}{}), nil
		default:
			return Outcome[struct{}]{}, &DeserializeError{GoType: "struct", Reason: "expected , or } after object value"}
		}
	default:
		return Outcome[struct{}]{}, &DeserializeError{GoType: "struct", Reason: "fed after completion"}
	}
}

func (d *StructBuilder) feedKey(tok efjson.Token) (Outcome[struct{}], error) {
	outcome, err := d.key.Feed(tok)
	if err != nil {
		return Outcome[struct{}]{}, err
	}
	if !outcome.IsComplete() {
		return Continue[struct{}](), nil
	}
	d.curKey = outcome.Value()
	d.stage = objKeyEnd
	if outcome.Rollback() {
		return d.Feed(tok)
	}
	return Continue[struct{}](), nil
}

func (d *StructBuilder) feedValue(tok efjson.Token) (Outcome[struct{}], error) {
	outcome, err := d.current.Feed(tok)
	if err != nil {
		return Outcome[struct{}]{}, err
	}
	if !outcome.IsComplete() {
		return Continue[struct{}](), nil
	}
	d.current = nil
	d.stage = objValueEnd
	if outcome.Rollback() {
		return d.Feed(tok)
	}
	return Continue[struct{}](), nil
}

// Close releases the field deserializer currently in flight, if any.
// Fields whose values already completed were assigned straight into
// the caller's destination variables as they completed, so there is
// nothing left for Close to drop there; only the one unfinished field
// (if the object was abandoned mid-value) holds a resource that needs
// releasing.
func (d *StructBuilder) Close() {
	if d.current != nil {
		if c, ok := d.current.(Cancelable); ok {
			c.Close()
		}
	}
}

func (d *StructBuilder) missingRequired() []string {
	var missing []string
	for key := range d.required {
		if !d.seen[key] {
			missing = append(missing, key)
		}
	}
	return missing
}

func joinKeys(keys []string) string {
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += k
	}
	return out
}
