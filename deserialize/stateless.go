package deserialize

import (
	"fmt"

	"github.com/efjson-go/efjson"
)

// Bool decodes the literal true or false.
type Bool struct {
	value bool
}

func NewBool() *Bool { return &Bool{} }

func (d *Bool) Feed(tok efjson.Token) (Outcome[bool], error) {
	if tok.IsSpace() {
		return Continue[bool](), nil
	}
	switch tok.Info.Kind {
	case efjson.KindTrue:
		d.value = true
	case efjson.KindFalse:
		d.value = false
	default:
		return Outcome[bool]{}, &DeserializeError{GoType: "bool", Reason: fmt.Sprintf("unexpected token kind %d", tok.Info.Kind)}
	}
	if tok.Info.Done {
		return Complete(d.value), nil
	}
	return Continue[bool](), nil
}

// Null decodes the literal null into struct{}.
type Null struct{}

func NewNull() *Null { return &Null{} }

func (d *Null) Feed(tok efjson.Token) (Outcome[struct{}], error) {
	if tok.IsSpace() {
		return Continue[struct{}](), nil
	}
	if tok.Info.Kind != efjson.KindNull {
		return Outcome[struct{}]{}, &DeserializeError{GoType: "null", Reason: "expected null"}
	}
	if tok.Info.Done {
		return Complete(struct{}{}), nil
	}
	return Continue[struct{}](), nil
}
