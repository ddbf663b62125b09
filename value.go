package efjson

// ValueKind tags which alternative of JsonValue is populated.
type ValueKind uint8

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueNumber
	ValueString
	ValueArray
	ValueObject
)

// JsonValue is the tagged-union in-memory representation of a parsed
// JSON document: exactly one of its fields is meaningful, selected by
// Kind.
type JsonValue struct {
	Kind ValueKind

	Bool   bool
	Number float64
	String string
	Array  []JsonValue
	Object *Object
}

// Null constructs the JSON null value.
func Null() JsonValue { return JsonValue{Kind: ValueNull} }

// Bool constructs a JSON boolean value.
func Bool(b bool) JsonValue { return JsonValue{Kind: ValueBool, Bool: b} }

// Number constructs a JSON number value.
func Number(f float64) JsonValue { return JsonValue{Kind: ValueNumber, Number: f} }

// String constructs a JSON string value.
func String(s string) JsonValue { return JsonValue{Kind: ValueString, String: s} }

// Array constructs a JSON array value.
func Array(v []JsonValue) JsonValue { return JsonValue{Kind: ValueArray, Array: v} }

// ObjectValue constructs a JSON object value.
func ObjectValue(o *Object) JsonValue { return JsonValue{Kind: ValueObject, Object: o} }

// IsNull reports whether v is the JSON null value.
func (v JsonValue) IsNull() bool { return v.Kind == ValueNull }

// Object is an ordered string-keyed map: JSON object keys compare by
// string equality and a duplicate key overwrites the previous value
// (last write wins), but Object additionally remembers insertion order
// so that round-tripping a document preserves key order even though
// spec.md leaves ordering otherwise unspecified.
type Object struct {
	keys   []string
	values map[string]JsonValue
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]JsonValue)}
}

// Set inserts or overwrites key's value. A repeated key keeps its
// original position in Keys but adopts the new value.
func (o *Object) Set(key string, value JsonValue) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns key's value and whether key is present.
func (o *Object) Get(key string) (JsonValue, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len reports the number of distinct keys.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the object's keys in insertion order. The returned slice
// must not be mutated.
func (o *Object) Keys() []string { return o.keys }

// Range calls fn for every key/value pair in insertion order, stopping
// early if fn returns false.
func (o *Object) Range(fn func(key string, value JsonValue) bool) {
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}
