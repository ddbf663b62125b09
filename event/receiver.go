// Package event implements the summary-level consumer described
// alongside the tokenizer and deserializer framework: an Emitter drives
// a stack of Receivers off the same Token stream efjson.Parser produces,
// turning it into start/feed/save callbacks instead of a typed value.
// It exists for callers that want to react to a document incrementally
// (a streaming pretty-printer, a SAX-style validator) without paying
// for a JsonValue tree unless some ancestor receiver actually asked to
// see one: saving is demand-driven, not automatic.
package event

import "github.com/efjson-go/efjson"

// ObjectReceiver customizes how a Receiver handles the members of a
// JSON object it accepts.
type ObjectReceiver struct {
	// Set is called with each key/value pair as its value completes.
	Set func(key string, value efjson.JsonValue)
	// Next is called when a "," moves on to the next key.
	Next func()
	// KeyAppend is called with each scalar of the key as it streams in,
	// the same way Receiver.StringAppend works for an ordinary string.
	KeyAppend func(c rune)
	// KeySave is called once a key finishes, with the whole key text.
	KeySave func(key string)
	// SubReceiver, if set, supplies the Receiver used to decode the
	// value for key. Returning nil accepts everything via NewAll.
	SubReceiver func(key string) *Receiver
}

// ArrayReceiver customizes how a Receiver handles the elements of a
// JSON array it accepts.
type ArrayReceiver struct {
	// Set is called with each element's index and value as it completes.
	Set func(index int, value efjson.JsonValue)
	// Next is called, with the new index, when a "," moves to the next element.
	Next func(index int)
	// SubReceiver, if set, supplies the Receiver used to decode the
	// element at index. Returning nil accepts everything via NewAll.
	SubReceiver func(index int) *Receiver
}

// Receiver declares what one JSON value a position in the document may
// accept, and which callbacks the Emitter should invoke while decoding
// it. The zero value accepts nothing; use NewAll for "accept anything",
// NewEmpty is the same as the zero value and exists for symmetry.
type Receiver struct {
	// Start fires once, when the first token of the accepted value arrives.
	Start func()
	// End fires once, right before the value is popped off the stack.
	End func()
	// Feed fires for every token belonging to the value, including the
	// ones Start/End also fire for.
	Feed func(tok efjson.Token)
	// Save fires once, with the fully assembled value, if anything in
	// the receiver chain needs it (see Emitter's demand-driven saving).
	Save func(value efjson.JsonValue)
	// IntegerSave fires once, in addition to Save, when AcceptInteger is
	// set and the number lexeme is exactly representable as an int64.
	IntegerSave func(v int64)

	AcceptNull    bool
	AcceptBoolean bool
	AcceptInteger bool
	AcceptNumber  bool
	AcceptString  bool
	AcceptObject  bool
	AcceptArray   bool

	// StringAppend fires with each decoded scalar of an accepted string,
	// including an unquoted JSON5 object key decoded as a string.
	StringAppend func(c rune)
	Object       ObjectReceiver
	Array        ArrayReceiver
}

// NewEmpty returns a Receiver that accepts nothing: feeding it any
// value is an error.
func NewEmpty() *Receiver { return &Receiver{} }

// NewAll returns a Receiver that accepts every value kind and reports
// none of it: a placeholder used wherever a caller did not ask for a
// more specific sub-receiver.
func NewAll() *Receiver {
	return &Receiver{
		AcceptNull: true, AcceptBoolean: true, AcceptInteger: true,
		AcceptNumber: true, AcceptString: true, AcceptObject: true, AcceptArray: true,
	}
}
