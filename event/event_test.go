package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efjson-go/efjson"
	"github.com/efjson-go/efjson/event"
)

func TestParseSavesTopLevelValue(t *testing.T) {
	var got efjson.JsonValue
	receiver := event.NewAll()
	receiver.Save = func(v efjson.JsonValue) { got = v }

	err := event.Parse(receiver, efjson.Strict, `{"a":1,"b":[true,null]}`)
	require.NoError(t, err)

	require.Equal(t, efjson.ValueObject, got.Kind)
	a, ok := got.Object.Get("a")
	require.True(t, ok)
	assert.Equal(t, efjson.Number(1), a)

	b, ok := got.Object.Get("b")
	require.True(t, ok)
	assert.Len(t, b.Array, 2)
	assert.Equal(t, efjson.Bool(true), b.Array[0])
	assert.True(t, b.Array[1].IsNull())
}

func TestParseDoesNotSaveWithoutDemand(t *testing.T) {
	var started, ended int
	receiver := event.NewAll()
	receiver.Start = func() { started++ }
	receiver.End = func() { ended++ }

	err := event.Parse(receiver, efjson.Strict, `[1,2,3]`)
	require.NoError(t, err)
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, ended)
}

func TestParseObjectMemberCallbacks(t *testing.T) {
	var keys []string
	var values []efjson.JsonValue
	receiver := event.NewAll()
	receiver.Object.Set = func(key string, value efjson.JsonValue) {
		keys = append(keys, key)
		values = append(values, value)
	}

	err := event.Parse(receiver, efjson.Strict, `{"x":1,"y":2}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, keys)
	assert.Equal(t, []efjson.JsonValue{efjson.Number(1), efjson.Number(2)}, values)
}

func TestParseArrayElementCallbacks(t *testing.T) {
	var indices []int
	var values []efjson.JsonValue
	receiver := event.NewAll()
	receiver.Array.Set = func(index int, value efjson.JsonValue) {
		indices = append(indices, index)
		values = append(values, value)
	}

	err := event.Parse(receiver, efjson.Strict, `[10,20,30]`)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, indices)
	assert.Equal(t, []efjson.JsonValue{efjson.Number(10), efjson.Number(20), efjson.Number(30)}, values)
}

func TestParseRejectsDisallowedKind(t *testing.T) {
	receiver := event.NewEmpty()
	receiver.AcceptObject = true
	receiver.Object.SubReceiver = func(key string) *event.Receiver {
		return event.NewEmpty() // accepts nothing: any member value is an error
	}

	err := event.Parse(receiver, efjson.Strict, `{"a":1}`)
	require.Error(t, err)
}

func TestParseIntegerSave(t *testing.T) {
	var got int64
	var fired bool
	receiver := event.NewEmpty()
	receiver.AcceptInteger = true
	receiver.IntegerSave = func(v int64) { got, fired = v, true }

	err := event.Parse(receiver, efjson.Strict, `42`)
	require.NoError(t, err)
	assert.True(t, fired)
	assert.Equal(t, int64(42), got)
}

func TestParseStringAppendStreamsScalars(t *testing.T) {
	var scalars []rune
	receiver := event.NewEmpty()
	receiver.AcceptString = true
	receiver.StringAppend = func(c rune) { scalars = append(scalars, c) }

	err := event.Parse(receiver, efjson.Strict, `"ab\nc"`)
	require.NoError(t, err)
	assert.Equal(t, []rune("ab\nc"), scalars)
}

func TestParseUnquotedKeyStreamsLikeString(t *testing.T) {
	var keyScalars []rune
	var savedKeys []string
	receiver := event.NewAll()
	receiver.Object.KeyAppend = func(c rune) { keyScalars = append(keyScalars, c) }
	receiver.Object.KeySave = func(key string) { savedKeys = append(savedKeys, key) }

	err := event.Parse(receiver, efjson.JSON5, `{ab:1}`)
	require.NoError(t, err)
	assert.Equal(t, []rune("ab"), keyScalars)
	assert.Equal(t, []string{"ab"}, savedKeys)
}

func TestParseQuotedKeyStreamsToKeyAppend(t *testing.T) {
	var keyScalars []rune
	receiver := event.NewAll()
	receiver.Object.KeyAppend = func(c rune) { keyScalars = append(keyScalars, c) }

	err := event.Parse(receiver, efjson.Strict, `{"xy":1}`)
	require.NoError(t, err)
	assert.Equal(t, []rune("xy"), keyScalars)
}
