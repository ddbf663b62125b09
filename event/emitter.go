package event

import (
	"fmt"
	"strconv"

	"github.com/efjson-go/efjson"
)

type subKind uint8

const (
	subNone subKind = iota
	subNull
	subBoolean
	subNumber
	subString
	subObject
	subArray
)

type objectState struct {
	child     efjson.JsonValue
	hasChild  bool
	key       string
	hasKey    bool
	saveKey   bool
	saveValue bool
	saveChild bool
	object    *efjson.Object
}

type arrayState struct {
	child     efjson.JsonValue
	hasChild  bool
	index     int
	saveChild bool
	array     []efjson.JsonValue
	saving    bool
}

type frame struct {
	receiver *Receiver
	kind     subKind

	numberBuf  []rune
	saveNumber bool

	stringBuf    []rune
	saveString   bool
	isIdentifier bool

	obj objectState
	arr arrayState
}

// EmitError reports that a Receiver rejected a value kind it was fed.
type EmitError struct {
	Reason string
}

func (e *EmitError) Error() string { return fmt.Sprintf("efjson/event: %s", e.Reason) }

func (e *EmitError) Is(target error) bool { return target == efjson.Error }

// Emitter drives a stack of Receivers, one per nesting level, off a
// Token stream. A fresh child Receiver is pushed on "{"/"[" (supplied
// by the parent's ObjectReceiver.SubReceiver/ArrayReceiver.SubReceiver,
// or NewAll if the parent didn't ask for anything specific) and popped
// once the matching "}"/"]" closes it.
type Emitter struct {
	stack []*frame
}

// NewEmitter starts an Emitter with receiver handling the top-level
// document value.
func NewEmitter(receiver *Receiver) *Emitter {
	return &Emitter{stack: []*frame{{receiver: receiver, kind: subNone}}}
}

// Feed drives the Emitter with a full token slice, stopping at the
// first error.
func (e *Emitter) Feed(tokens []efjson.Token) error {
	for _, tok := range tokens {
		if err := e.FeedOne(tok); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) top() *frame { return e.stack[len(e.stack)-1] }

// needSave reports whether anything in the current receiver chain
// actually wants the completed JsonValue: the top receiver's own Save
// callback, or the parent container's demand for a child to populate
// its Set callback / saved container.
func (e *Emitter) needSave() bool {
	top := e.top()
	if top.receiver.Save != nil {
		return true
	}
	if len(e.stack) < 2 {
		return false
	}
	parent := e.stack[len(e.stack)-2]
	switch parent.kind {
	case subArray:
		return parent.arr.saveChild
	case subObject:
		return parent.obj.saveChild
	default:
		return false
	}
}

func (e *Emitter) endValue(value efjson.JsonValue, has bool) {
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	if top.receiver.End != nil {
		top.receiver.End()
	}
	if !has {
		return
	}
	if top.receiver.Save != nil {
		top.receiver.Save(value)
	}
	if len(e.stack) == 0 {
		return
	}
	parent := e.stack[len(e.stack)-1]
	switch parent.kind {
	case subArray:
		parent.arr.child, parent.arr.hasChild = value, true
	case subObject:
		parent.obj.child, parent.obj.hasChild = value, true
	}
}

func (e *Emitter) feedStateless(tok efjson.Token, kind subKind, value efjson.JsonValue, done bool) error {
	top := e.top()
	if top.kind == subNone {
		if top.receiver.Start != nil {
			top.receiver.Start()
		}
		top.kind = kind
		if top.receiver.Feed != nil {
			top.receiver.Feed(tok)
		}
		return nil
	}
	if top.receiver.Feed != nil {
		top.receiver.Feed(tok)
	}
	if done {
		e.endValue(value, e.needSave())
	}
	return nil
}

func (e *Emitter) feedNumber(tok efjson.Token) error {
	needSave := e.needSave()
	top := e.top()
	if top.kind == subNone {
		if !top.receiver.AcceptNumber && !top.receiver.AcceptInteger {
			return &EmitError{Reason: "number is rejected"}
		}
		top.kind = subNumber
		top.saveNumber = needSave || top.receiver.Save != nil
		if top.saveNumber || top.receiver.IntegerSave != nil {
			top.numberBuf = append(top.numberBuf, tok.Char)
		}
		if top.receiver.Start != nil {
			top.receiver.Start()
		}
		if top.receiver.Feed != nil {
			top.receiver.Feed(tok)
		}
		return nil
	}
	if top.receiver.Feed != nil {
		top.receiver.Feed(tok)
	}
	if top.saveNumber || top.receiver.IntegerSave != nil {
		top.numberBuf = append(top.numberBuf, tok.Char)
	}
	return nil
}

func (e *Emitter) finishNumber(top *frame) error {
	if top.receiver.AcceptInteger {
		if v, ok := parseIntegerLexeme(top.numberBuf); ok && top.receiver.IntegerSave != nil {
			top.receiver.IntegerSave(v)
		}
	}
	if !top.saveNumber {
		e.endValue(efjson.JsonValue{}, false)
		return nil
	}
	f, err := parseNumberLexeme(top.numberBuf)
	if err != nil {
		return &EmitError{Reason: "invalid number literal"}
	}
	e.endValue(efjson.Number(f), true)
	return nil
}

func (e *Emitter) feedString(tok efjson.Token) error {
	needSave := e.needSave()
	top := e.top()
	if top.kind == subNone {
		if !top.receiver.AcceptString {
			return &EmitError{Reason: "string is rejected"}
		}
		top.kind = subString
		top.saveString = needSave || top.receiver.Save != nil
		if top.receiver.Start != nil {
			top.receiver.Start()
		}
		if top.receiver.Feed != nil {
			top.receiver.Feed(tok)
		}
		return nil
	}
	if top.receiver.Feed != nil {
		top.receiver.Feed(tok)
	}
	switch tok.Info.Kind {
	case efjson.KindStringEnd:
		if top.saveString {
			e.endValue(efjson.String(string(top.stringBuf)), true)
		} else {
			e.endValue(efjson.JsonValue{}, false)
		}
	case efjson.KindStringNormal:
		if top.receiver.StringAppend != nil {
			top.receiver.StringAppend(tok.Char)
		}
		if top.saveString {
			top.stringBuf = append(top.stringBuf, tok.Char)
		}
	case efjson.KindStringEscape:
		if tok.Info.HasChar {
			if top.receiver.StringAppend != nil {
				top.receiver.StringAppend(tok.Info.Char)
			}
			if top.saveString {
				top.stringBuf = append(top.stringBuf, tok.Info.Char)
			}
		}
	case efjson.KindStringEscapeUnicode, efjson.KindStringEscapeHex:
		if tok.Info.Done && tok.Info.HasChar {
			if top.receiver.StringAppend != nil {
				top.receiver.StringAppend(tok.Info.Char)
			}
			if top.saveString {
				top.stringBuf = append(top.stringBuf, tok.Info.Char)
			}
		}
	}
	return nil
}

func (e *Emitter) feedIdentifier(tok efjson.Token) error {
	needSave := e.needSave()
	top := e.top()
	if top.kind == subNone {
		if !top.receiver.AcceptString {
			return &EmitError{Reason: "string is rejected"}
		}
		top.kind = subString
		top.isIdentifier = true
		top.saveString = needSave || top.receiver.Save != nil
		if top.receiver.Start != nil {
			top.receiver.Start()
		}
		if top.receiver.Feed != nil {
			top.receiver.Feed(efjson.Token{Char: '"', Info: efjson.TokenInfo{Kind: efjson.KindStringStart}, Location: efjson.LocationKey})
		}
	}
	switch tok.Info.Kind {
	case efjson.KindIdentifierNormal:
		if top.receiver.Feed != nil {
			top.receiver.Feed(efjson.Token{Char: tok.Char, Info: efjson.TokenInfo{Kind: efjson.KindStringNormal}, Location: efjson.LocationKey})
		}
		if top.receiver.StringAppend != nil {
			top.receiver.StringAppend(tok.Char)
		}
		if top.saveString {
			top.stringBuf = append(top.stringBuf, tok.Char)
		}
	case efjson.KindIdentifierEscapeStart:
		if top.receiver.Feed != nil {
			top.receiver.Feed(efjson.Token{Char: tok.Char, Info: efjson.TokenInfo{Kind: efjson.KindStringEscapeUnicodeStart}, Location: efjson.LocationKey})
		}
	case efjson.KindIdentifierEscape:
		if top.receiver.Feed != nil {
			top.receiver.Feed(efjson.Token{Char: tok.Char, Info: efjson.TokenInfo{Kind: efjson.KindStringEscapeUnicode, Done: tok.Info.Done, Char: tok.Info.Char, HasChar: tok.Info.HasChar}, Location: efjson.LocationKey})
		}
		if tok.Info.Done && tok.Info.HasChar {
			if top.receiver.StringAppend != nil {
				top.receiver.StringAppend(tok.Info.Char)
			}
			if top.saveString {
				top.stringBuf = append(top.stringBuf, tok.Info.Char)
			}
		}
	}
	return nil
}

// endIdentifierIfDone closes an in-progress unquoted key once a
// non-identifier token arrives, mirroring the quoted-string StringEnd
// transition that an identifier token stream never itself produces.
func (e *Emitter) endIdentifierIfDone(tok efjson.Token) {
	top := e.top()
	if top.kind != subString || !top.isIdentifier {
		return
	}
	if tok.Info.Kind.Category() == efjson.CategoryIdentifier {
		return
	}
	if top.receiver.Feed != nil {
		top.receiver.Feed(efjson.Token{Char: '"', Info: efjson.TokenInfo{Kind: efjson.KindStringEnd}, Location: efjson.LocationKey})
	}
	if top.saveString {
		e.endValue(efjson.String(string(top.stringBuf)), true)
	} else {
		e.endValue(efjson.JsonValue{}, false)
	}
}

func (e *Emitter) feedObject(tok efjson.Token) error {
	needSave := e.needSave()
	top := e.top()
	if top.kind == subNone {
		if !top.receiver.AcceptObject {
			return &EmitError{Reason: "object is rejected"}
		}
		sub := &top.receiver.Object
		save := needSave || top.receiver.Save != nil
		saveValue := save || sub.Set != nil
		saveKey := saveValue || sub.KeySave != nil
		top.kind = subObject
		top.obj = objectState{saveKey: saveKey, saveValue: saveValue, saveChild: saveKey}
		if save {
			top.obj.object = efjson.NewObject()
		}
		if top.receiver.Start != nil {
			top.receiver.Start()
		}
		if top.receiver.Feed != nil {
			top.receiver.Feed(tok)
		}
		e.stack = append(e.stack, &frame{receiver: newKeyReceiver(top.receiver), kind: subNone})
		return nil
	}
	if top.receiver.Feed != nil {
		top.receiver.Feed(tok)
	}
	switch tok.Info.Kind {
	case efjson.KindObjectEnd:
		e.flushObjectMember(top)
		if top.obj.object != nil {
			e.endValue(efjson.ObjectValue(top.obj.object), true)
		} else {
			e.endValue(efjson.JsonValue{}, false)
		}
	case efjson.KindObjectNext:
		e.flushObjectMember(top)
		if top.receiver.Object.Next != nil {
			top.receiver.Object.Next()
		}
		top.obj.key, top.obj.hasKey = "", false
		top.obj.child, top.obj.hasChild = efjson.JsonValue{}, false
		top.obj.saveChild = top.obj.saveKey
		e.stack = append(e.stack, &frame{receiver: newKeyReceiver(top.receiver), kind: subNone})
	case efjson.KindObjectValueStart:
		if top.obj.hasChild && top.obj.child.Kind == efjson.ValueString {
			top.obj.key, top.obj.hasKey = top.obj.child.String, true
			if top.receiver.Object.KeySave != nil {
				top.receiver.Object.KeySave(top.obj.key)
			}
		}
		top.obj.child, top.obj.hasChild = efjson.JsonValue{}, false
		top.obj.saveChild = top.obj.saveValue
		var next *Receiver
		if top.receiver.Object.SubReceiver != nil {
			next = top.receiver.Object.SubReceiver(top.obj.key)
		}
		if next == nil {
			next = NewAll()
		}
		e.stack = append(e.stack, &frame{receiver: next, kind: subNone})
	}
	return nil
}

// newKeyReceiver builds the Receiver used to decode one object member's
// key: it accepts exactly a string (quoted or, under IdentifierKey,
// unquoted) and forwards each scalar to the parent object receiver's
// KeyAppend, the key-decoding counterpart of an ordinary value's
// StringAppend.
func newKeyReceiver(parent *Receiver) *Receiver {
	r := NewAll()
	if parent.Object.KeyAppend != nil {
		r.StringAppend = parent.Object.KeyAppend
	}
	return r
}

func (e *Emitter) flushObjectMember(top *frame) {
	if !top.obj.hasKey {
		return
	}
	key := top.obj.key
	value := top.obj.child
	top.obj.key, top.obj.hasKey = "", false
	if top.receiver.Object.Set != nil {
		top.receiver.Object.Set(key, value)
	}
	if top.obj.object != nil {
		top.obj.object.Set(key, value)
	}
}

func (e *Emitter) feedArray(tok efjson.Token) error {
	needSave := e.needSave()
	top := e.top()
	if top.kind == subNone {
		if !top.receiver.AcceptArray {
			return &EmitError{Reason: "array is rejected"}
		}
		save := needSave || top.receiver.Save != nil
		saveChild := save || top.receiver.Array.Set != nil
		top.kind = subArray
		top.arr = arrayState{saveChild: saveChild, saving: save}
		if top.receiver.Start != nil {
			top.receiver.Start()
		}
		if top.receiver.Feed != nil {
			top.receiver.Feed(tok)
		}
		var next *Receiver
		if top.receiver.Array.SubReceiver != nil {
			next = top.receiver.Array.SubReceiver(0)
		}
		if next == nil {
			next = NewAll()
		}
		e.stack = append(e.stack, &frame{receiver: next, kind: subNone})
		return nil
	}
	if top.receiver.Feed != nil {
		top.receiver.Feed(tok)
	}
	switch tok.Info.Kind {
	case efjson.KindArrayNext:
		e.flushArrayElement(top)
		top.arr.index++
		if top.receiver.Array.Next != nil {
			top.receiver.Array.Next(top.arr.index)
		}
		var next *Receiver
		if top.receiver.Array.SubReceiver != nil {
			next = top.receiver.Array.SubReceiver(top.arr.index)
		}
		if next == nil {
			next = NewAll()
		}
		e.stack = append(e.stack, &frame{receiver: next, kind: subNone})
	case efjson.KindArrayEnd:
		if top.arr.hasChild {
			e.flushArrayElement(top)
			top.arr.index++
		}
		if top.arr.saving {
			e.endValue(efjson.Array(top.arr.array), true)
		} else {
			e.endValue(efjson.JsonValue{}, false)
		}
	}
	return nil
}

func (e *Emitter) flushArrayElement(top *frame) {
	if !top.arr.hasChild {
		return
	}
	value := top.arr.child
	top.arr.hasChild = false
	if top.receiver.Array.Set != nil {
		top.receiver.Array.Set(top.arr.index, value)
	}
	if top.arr.saving {
		top.arr.array = append(top.arr.array, value)
	}
}

// FeedOne drives the Emitter with a single token.
func (e *Emitter) FeedOne(tok efjson.Token) error {
	if len(e.stack) == 0 {
		return nil
	}
	top := e.top()

	switch top.kind {
	case subNumber:
		if tok.Info.Kind.Category() != efjson.CategoryNumber {
			if err := e.finishNumber(top); err != nil {
				return err
			}
		}
	case subString:
		e.endIdentifierIfDone(tok)
	case subNone:
		if tok.Info.Kind == efjson.KindArrayEnd || tok.Info.Kind == efjson.KindObjectEnd {
			e.stack = e.stack[:len(e.stack)-1]
		}
	}
	if len(e.stack) == 0 {
		return nil
	}

	switch tok.Info.Kind.Category() {
	case efjson.CategoryNumber:
		return e.feedNumber(tok)
	case efjson.CategoryString:
		return e.feedString(tok)
	case efjson.CategoryIdentifier:
		return e.feedIdentifier(tok)
	case efjson.CategoryObject:
		return e.feedObject(tok)
	case efjson.CategoryArray:
		return e.feedArray(tok)
	case efjson.CategoryNull:
		return e.feedStateless(tok, subNull, efjson.Null(), tok.Info.Done)
	case efjson.CategoryBoolean:
		return e.feedStateless(tok, subBoolean, efjson.Bool(tok.Info.Kind == efjson.KindTrue), tok.Info.Done)
	default:
		return nil
	}
}

func parseNumberLexeme(buf []rune) (float64, error) {
	return strconv.ParseFloat(string(buf), 64)
}

func parseIntegerLexeme(buf []rune) (int64, bool) {
	if len(buf) == 0 {
		return 0, false
	}
	s := string(buf)
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	radix := 10
	switch {
	case len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'):
		radix, s = 16, s[2:]
	case len(s) > 1 && s[0] == '0' && (s[1] == 'o' || s[1] == 'O'):
		radix, s = 8, s[2:]
	case len(s) > 1 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B'):
		radix, s = 2, s[2:]
	}
	v, err := strconv.ParseUint(s, radix, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		if v > 1<<63 {
			return 0, false
		}
		return -int64(v), true
	}
	if v > 1<<63-1 {
		return 0, false
	}
	return int64(v), true
}
