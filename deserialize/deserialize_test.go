package deserialize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efjson-go/efjson"
	"github.com/efjson-go/efjson/deserialize"
)

func TestDeserializeStringScalars(t *testing.T) {
	v, err := deserialize.DeserializeString[bool](deserialize.NewBool(), efjson.Strict, "true")
	require.NoError(t, err)
	assert.True(t, v)

	_, err = deserialize.DeserializeString[struct{}](deserialize.NewNull(), efjson.Strict, "null")
	require.NoError(t, err)

	s, err := deserialize.DeserializeString[string](deserialize.NewString(), efjson.Strict, `"hi\nthere"`)
	require.NoError(t, err)
	assert.Equal(t, "hi\nthere", s)
}

func TestDeserializeIntegerAndUnsigned(t *testing.T) {
	n, err := deserialize.DeserializeString[int32](deserialize.NewInteger[int32](), efjson.Strict, "-42")
	require.NoError(t, err)
	assert.Equal(t, int32(-42), n)

	u, err := deserialize.DeserializeString[uint64](deserialize.NewUnsigned[uint64](), efjson.Strict, "7")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), u)

	_, err = deserialize.DeserializeString[uint64](deserialize.NewUnsigned[uint64](), efjson.PositiveSign, "-7")
	require.Error(t, err)
}

func TestDeserializeIntegerHexRadix(t *testing.T) {
	opt := efjson.HexadecimalInteger
	n, err := deserialize.DeserializeString[int64](deserialize.NewInteger[int64](), opt, "0x2A")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestDeserializeIntegerRangeChecksNarrowTypes(t *testing.T) {
	_, err := deserialize.DeserializeString[int8](deserialize.NewInteger[int8](), efjson.Strict, "200")
	require.Error(t, err, "200 overflows int8 and must not silently wrap")

	n, err := deserialize.DeserializeString[int8](deserialize.NewInteger[int8](), efjson.PositiveSign, "127")
	require.NoError(t, err)
	assert.Equal(t, int8(127), n)

	n, err = deserialize.DeserializeString[int8](deserialize.NewInteger[int8](), efjson.Strict, "-128")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), n)

	_, err = deserialize.DeserializeString[int32](deserialize.NewInteger[int32](), efjson.Strict, "3000000000")
	require.Error(t, err, "3000000000 overflows int32 and must not silently wrap")

	_, err = deserialize.DeserializeString[uint8](deserialize.NewUnsigned[uint8](), efjson.Strict, "256")
	require.Error(t, err, "256 overflows uint8 and must not silently wrap")
}

func TestDeserializeFloat(t *testing.T) {
	f, err := deserialize.DeserializeString[float64](deserialize.NewFloat[float64](), efjson.Strict, "3.5e1")
	require.NoError(t, err)
	assert.Equal(t, 35.0, f)
}

func TestDeserializeFloatNaNInfinity(t *testing.T) {
	opt := efjson.NaN | efjson.Infinity | efjson.PositiveSign
	f, err := deserialize.DeserializeString[float64](deserialize.NewFloat[float64](), opt, "NaN")
	require.NoError(t, err)
	assert.True(t, f != f) // NaN != NaN

	f, err = deserialize.DeserializeString[float64](deserialize.NewFloat[float64](), opt, "-Infinity")
	require.NoError(t, err)
	assert.True(t, f < 0)
}

func TestDeserializeSlice(t *testing.T) {
	d := deserialize.NewSlice(func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() })
	got, err := deserialize.DeserializeString[[]int64](d, efjson.Strict, "[1, 2, 3]")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestDeserializeSliceEmpty(t *testing.T) {
	d := deserialize.NewSlice(func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() })
	got, err := deserialize.DeserializeString[[]int64](d, efjson.Strict, "[]")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeserializeFixedArrayLengthMismatch(t *testing.T) {
	d := deserialize.NewFixedArray(2, func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() })
	_, err := deserialize.DeserializeString[[]int64](d, efjson.Strict, "[1, 2, 3]")
	require.Error(t, err)
}

func TestDeserializeObjectMap(t *testing.T) {
	d := deserialize.NewObjectMap(func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() })
	got, err := deserialize.DeserializeString[map[string]int64](d, efjson.Strict, `{"a":1,"b":2}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 1, "b": 2}, got)
}

func TestDeserializeObjectMapUnquotedKey(t *testing.T) {
	d := deserialize.NewObjectMap(func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() })
	got, err := deserialize.DeserializeString[map[string]int64](d, efjson.JSON5, "{a:1, b:2}")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 1, "b": 2}, got)
}

func TestDeserializeOptional(t *testing.T) {
	d := deserialize.NewOptional(func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() })
	got, err := deserialize.DeserializeString[deserialize.Option[int64]](d, efjson.Strict, "5")
	require.NoError(t, err)
	assert.True(t, got.Present)
	assert.Equal(t, int64(5), got.Value)

	d2 := deserialize.NewOptional(func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() })
	got2, err := deserialize.DeserializeString[deserialize.Option[int64]](d2, efjson.Strict, "null")
	require.NoError(t, err)
	assert.False(t, got2.Present)
}

func TestDeserializeTuple2(t *testing.T) {
	d := deserialize.NewTuple2(
		func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() },
		func() deserialize.Deserializer[string] { return deserialize.NewString() },
	)
	got, err := deserialize.DeserializeString[deserialize.Pair[int64, string]](d, efjson.Strict, `[1, "x"]`)
	require.NoError(t, err)
	assert.Equal(t, deserialize.Pair[int64, string]{First: 1, Second: "x"}, got)
}

func TestDeserializeTuple2TooShort(t *testing.T) {
	d := deserialize.NewTuple2(
		func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() },
		func() deserialize.Deserializer[string] { return deserialize.NewString() },
	)
	_, err := deserialize.DeserializeString[deserialize.Pair[int64, string]](d, efjson.Strict, `[1]`)
	require.Error(t, err)
}

func TestDeserializeTuple2TooLong(t *testing.T) {
	d := deserialize.NewTuple2(
		func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() },
		func() deserialize.Deserializer[string] { return deserialize.NewString() },
	)
	_, err := deserialize.DeserializeString[deserialize.Pair[int64, string]](d, efjson.Strict, `[1, "x", "y"]`)
	require.Error(t, err)
}

func TestDeserializeBox(t *testing.T) {
	d := deserialize.NewBox(func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() })
	got, err := deserialize.DeserializeString[*int64](d, efjson.Strict, "9")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(9), *got)
}

func TestDeserializeJSONValue(t *testing.T) {
	v, err := deserialize.Value(efjson.Strict, `{"a":[1,2,null],"b":true}`)
	require.NoError(t, err)
	require.Equal(t, efjson.ValueObject, v.Kind)

	arr, ok := v.Object.Get("a")
	require.True(t, ok)
	require.Equal(t, efjson.ValueArray, arr.Kind)
	assert.Len(t, arr.Array, 3)
	assert.True(t, arr.Array[2].IsNull())
}

func TestDeserializeRaw(t *testing.T) {
	raw, err := deserialize.DeserializeString[string](deserialize.NewRaw(), efjson.Strict, `  {"a": 1}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, raw)
}

func TestDeserializeRawToken(t *testing.T) {
	toks, err := deserialize.DeserializeString[[]efjson.Token](deserialize.NewRawToken(), efjson.Strict, `[1,2]`)
	require.NoError(t, err)
	assert.NotEmpty(t, toks)
	assert.Equal(t, efjson.KindArrayStart, toks[0].Info.Kind)
}

type point struct {
	X int64
	Y int64
}

func newPointBuilder(dst *point) *deserialize.StructBuilder {
	return deserialize.NewStructBuilder(
		deserialize.Field("x", &dst.X, func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() }),
		deserialize.Field("y", &dst.Y, func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() }),
	)
}

func TestStructBuilderDecodesKnownFields(t *testing.T) {
	var p point
	_, err := deserialize.DeserializeString[struct{}](newPointBuilder(&p), efjson.Strict, `{"x":1,"y":2}`)
	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Y: 2}, p)
}

func TestStructBuilderIgnoresUnknownFields(t *testing.T) {
	var p point
	_, err := deserialize.DeserializeString[struct{}](newPointBuilder(&p), efjson.Strict, `{"x":1,"z":99,"y":2}`)
	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Y: 2}, p)
}

func TestStructBuilderMissingRequiredField(t *testing.T) {
	var p point
	_, err := deserialize.DeserializeString[struct{}](newPointBuilder(&p), efjson.Strict, `{"x":1}`)
	require.Error(t, err)
}

func TestStructBuilderDuplicateKey(t *testing.T) {
	var p point
	_, err := deserialize.DeserializeString[struct{}](newPointBuilder(&p), efjson.Strict, `{"x":1,"x":2,"y":2}`)
	require.Error(t, err)
}

func TestStructBuilderOptionalField(t *testing.T) {
	var label string
	var p point
	builder := deserialize.NewStructBuilder(
		deserialize.Field("x", &p.X, func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() }),
		deserialize.Field("y", &p.Y, func() deserialize.Deserializer[int64] { return deserialize.NewInteger[int64]() }),
		deserialize.OptionalField("label", &label, func() deserialize.Deserializer[string] { return deserialize.NewString() }),
	)
	_, err := deserialize.DeserializeString[struct{}](builder, efjson.Strict, `{"x":1,"y":2}`)
	require.NoError(t, err)
	assert.Equal(t, "", label)
}
