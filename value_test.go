package efjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/efjson-go/efjson"
)

func TestObjectPreservesInsertionOrderAndLastWriteWins(t *testing.T) {
	obj := efjson.NewObject()
	obj.Set("b", efjson.Number(2))
	obj.Set("a", efjson.Number(1))
	obj.Set("b", efjson.Number(20))

	assert.Equal(t, []string{"b", "a"}, obj.Keys())
	assert.Equal(t, 2, obj.Len())

	v, ok := obj.Get("b")
	assert.True(t, ok)
	assert.Equal(t, efjson.Number(20), v)

	var seen []string
	obj.Range(func(key string, value efjson.JsonValue) bool {
		seen = append(seen, key)
		return true
	})
	assert.Equal(t, []string{"b", "a"}, seen)
}

func TestObjectRangeStopsEarly(t *testing.T) {
	obj := efjson.NewObject()
	obj.Set("a", efjson.Bool(true))
	obj.Set("b", efjson.Bool(false))
	obj.Set("c", efjson.Null())

	var seen []string
	obj.Range(func(key string, value efjson.JsonValue) bool {
		seen = append(seen, key)
		return key != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestJsonValueConstructors(t *testing.T) {
	assert.True(t, efjson.Null().IsNull())
	assert.False(t, efjson.Bool(true).IsNull())
	assert.Equal(t, efjson.ValueString, efjson.String("x").Kind)
	assert.Equal(t, efjson.ValueArray, efjson.Array(nil).Kind)
}
