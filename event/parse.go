package event

import "github.com/efjson-go/efjson"

// Parse tokenizes s under option and drives receiver with the result in
// one call.
func Parse(receiver *Receiver, option efjson.Option, s string) error {
	tokens, err := efjson.Parse(option, s)
	if err != nil {
		return err
	}
	return NewEmitter(receiver).Feed(tokens)
}
