package efjson_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efjson-go/efjson"
)

func kinds(t *testing.T, tokens []efjson.Token) []efjson.Kind {
	t.Helper()
	out := make([]efjson.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Info.Kind
	}
	return out
}

func TestParseStrictScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []efjson.Kind
	}{
		{"true", "true", []efjson.Kind{
			efjson.KindTrue, efjson.KindTrue, efjson.KindTrue, efjson.KindTrue, efjson.KindEOF,
		}},
		{"null", "null", []efjson.Kind{
			efjson.KindNull, efjson.KindNull, efjson.KindNull, efjson.KindNull, efjson.KindEOF,
		}},
		{"empty array", "[]", []efjson.Kind{
			efjson.KindArrayStart, efjson.KindArrayEnd, efjson.KindEOF,
		}},
		{"empty object", "{}", []efjson.Kind{
			efjson.KindObjectStart, efjson.KindObjectEnd, efjson.KindEOF,
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := efjson.Parse(efjson.Strict, tc.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, kinds(t, tokens)); diff != "" {
				t.Errorf("kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRejectsTrailingComma(t *testing.T) {
	_, err := efjson.Parse(efjson.Strict, "[1,]")
	require.Error(t, err)
	var streamErr *efjson.StreamError
	require.ErrorAs(t, err, &streamErr)
	assert.True(t, errors.Is(err, efjson.Error))
}

func TestParseAcceptsTrailingCommaUnderOption(t *testing.T) {
	_, err := efjson.Parse(efjson.TrailingCommaInArray, "[1,]")
	require.NoError(t, err)
}

func TestParseJSON5IdentifierKey(t *testing.T) {
	tokens, err := efjson.Parse(efjson.JSON5, "{a:1}")
	require.NoError(t, err)
	found := false
	for _, tok := range tokens {
		if tok.Info.Kind == efjson.KindIdentifierNormal {
			found = true
		}
	}
	assert.True(t, found, "expected at least one identifier token")
}

func TestParseRejectsIdentifierKeyWithoutOption(t *testing.T) {
	_, err := efjson.Parse(efjson.Strict, "{a:1}")
	require.Error(t, err)
}

func TestParseComments(t *testing.T) {
	_, err := efjson.Parse(efjson.JSONC, "// hi\n{\"a\":1} /* trailing */")
	require.NoError(t, err)

	_, err = efjson.Parse(efjson.Strict, "// hi\n1")
	require.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	_, err := efjson.Parse(efjson.Strict, "")
	require.Error(t, err)

	_, err = efjson.Parse(efjson.AllowEmptyValue, "   ")
	require.NoError(t, err)
}

func TestParseNumberRadixPrefixes(t *testing.T) {
	opt := efjson.HexadecimalInteger | efjson.OctalInteger | efjson.BinaryInteger
	for _, lit := range []string{"0x1F", "0o17", "0b101"} {
		_, err := efjson.Parse(opt, lit)
		require.NoErrorf(t, err, "literal %q", lit)
	}

	_, err := efjson.Parse(efjson.Strict, "0x1F")
	require.Error(t, err)
}

func TestParseNaNInfinity(t *testing.T) {
	opt := efjson.NaN | efjson.Infinity | efjson.PositiveSign
	_, err := efjson.Parse(opt, "NaN")
	require.NoError(t, err)
	_, err = efjson.Parse(opt, "-Infinity")
	require.NoError(t, err)
	_, err = efjson.Parse(efjson.Strict, "NaN")
	require.Error(t, err)
}

func TestParseMultilineCommentNotClosed(t *testing.T) {
	_, err := efjson.Parse(efjson.MultiLineComment, "/* never closed")
	require.Error(t, err)
	var streamErr *efjson.StreamError
	require.ErrorAs(t, err, &streamErr)
	assert.Equal(t, efjson.ErrCommentNotClosed, streamErr.Kind)
}

func TestParserRejectsContentAfterEOF(t *testing.T) {
	p := efjson.New(efjson.SingleLineComment)
	_, err := p.FeedMany([]rune("1"))
	require.NoError(t, err)
	_, err = p.FeedOne(0)
	require.NoError(t, err)

	_, err = p.FeedOne('"')
	require.Error(t, err)
	var streamErr *efjson.StreamError
	require.ErrorAs(t, err, &streamErr)
	assert.Equal(t, efjson.ErrContentAfterEof, streamErr.Kind)

	// Even a character that would otherwise open a comment is rejected
	// once EOF has been signalled: only whitespace survives the terminator.
	p2 := efjson.New(efjson.SingleLineComment)
	_, err = p2.FeedMany([]rune("1"))
	require.NoError(t, err)
	_, err = p2.FeedOne(0)
	require.NoError(t, err)
	_, err = p2.FeedOne('/')
	require.Error(t, err)
	require.ErrorAs(t, err, &streamErr)
	assert.Equal(t, efjson.ErrContentAfterEof, streamErr.Kind)
}

func TestParserAllowsWhitespaceAfterEOF(t *testing.T) {
	p := efjson.New(efjson.Strict)
	_, err := p.FeedMany([]rune("1"))
	require.NoError(t, err)
	_, err = p.FeedOne(0)
	require.NoError(t, err)
	_, err = p.FeedOne(' ')
	require.NoError(t, err)
}

func TestParserFeedOneTracksStageAndPosition(t *testing.T) {
	p := efjson.New(efjson.Strict)
	assert.Equal(t, efjson.NotStarted, p.Stage())
	_, err := p.FeedOne('[')
	require.NoError(t, err)
	assert.Equal(t, efjson.Parsing, p.Stage())
	assert.Equal(t, 1, p.Position())
}

func TestParseJSON5BinaryOctalNotInProfile(t *testing.T) {
	// JSON5 itself does not define octal/binary integers; this parser
	// gates them separately from the JSON5 profile.
	assert.False(t, efjson.JSON5.Has(efjson.OctalInteger))
	assert.False(t, efjson.JSON5.Has(efjson.BinaryInteger))
	assert.True(t, efjson.JSON5.Has(efjson.HexadecimalInteger))
}
