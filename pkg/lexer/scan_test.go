package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seal-io/bendump/pkg/diag"
)

func kindsOf(tokens []Token) []Kind {
	ks := make([]Kind, len(tokens))
	for i := range tokens {
		ks[i] = tokens[i].Kind
	}

	return ks
}

func TestScan(t *testing.T) {
	testCases := []struct {
		name     string
		given    string
		expected []Kind
	}{
		{
			name:     "empty",
			given:    "",
			expected: []Kind{KindEndOfInput},
		},
		{
			name:     "blank lines",
			given:    "\n\n",
			expected: []Kind{KindEndOfLine, KindEndOfLine, KindEndOfInput},
		},
		{
			name:  "dictionary",
			given: "d3:cow3:moo3:keye",
			expected: []Kind{
				KindDictionary,
				KindStringBegin, KindSeparator, KindString,
				KindStringBegin, KindSeparator, KindString,
				KindStringBegin, KindSeparator, KindString,
				KindEndType, KindEndOfLine, KindEndOfInput,
			},
		},
		{
			name:     "string with markers",
			given:    "5:12d$@",
			expected: []Kind{KindStringBegin, KindSeparator, KindString, KindEndOfLine, KindEndOfInput},
		},
		{
			name:     "integer",
			given:    "i432e",
			expected: []Kind{KindIntegerBegin, KindInteger, KindEndType, KindEndOfLine, KindEndOfInput},
		},
		{
			name:     "negative integer",
			given:    "i-2132e",
			expected: []Kind{KindIntegerBegin, KindInteger, KindEndType, KindEndOfLine, KindEndOfInput},
		},
		{
			name:     "zero",
			given:    "i0e",
			expected: []Kind{KindIntegerBegin, KindInteger, KindEndType, KindEndOfLine, KindEndOfInput},
		},
		{
			name:  "list over lines",
			given: "l\ni1e\r\ne",
			expected: []Kind{
				KindList, KindEndOfLine,
				KindIntegerBegin, KindInteger, KindEndType, KindEndOfLine,
				KindEndType, KindEndOfLine, KindEndOfInput,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sink := diag.NewCollector(diag.DefaultLimit)

			actual, err := ScanString(tc.given, sink)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, kindsOf(actual))
			assert.False(t, sink.HasError())
		})
	}
}

func TestScan_values(t *testing.T) {
	tokens, err := ScanString("d3:fooi-213e4:spaml1:xee", diag.Discard(0))
	require.NoError(t, err)

	assert.Equal(t, Token{Kind: KindDictionary, Line: 1, Column: 0, Literal: "d"}, tokens[0])
	assert.Equal(t, Token{Kind: KindStringBegin, Line: 1, Column: 1, Literal: "3", Number: 3}, tokens[1])
	assert.Equal(t, Token{Kind: KindSeparator, Line: 1, Column: 2, Literal: ":"}, tokens[2])
	assert.Equal(t, Token{Kind: KindString, Line: 1, Column: 3, Literal: "foo"}, tokens[3])
	assert.Equal(t, Token{Kind: KindInteger, Line: 1, Column: 7, Literal: "-213", Number: -213}, tokens[5])
	assert.Equal(t, "spam", tokens[9].Literal)
	assert.Equal(t, Token{Kind: KindEndOfInput, Line: 1, Column: EndOfLineColumn}, tokens[len(tokens)-1])
}

func TestScan_errors(t *testing.T) {
	testCases := []struct {
		name     string
		given    string
		expected []string
	}{
		{
			name:     "unknown char",
			given:    "$",
			expected: []string{"Unknown char '$' at line 1:\n$\n^--- here"},
		},
		{
			name:     "leading zeros",
			given:    "i00323e",
			expected: []string{"Number 00323 cannot have leading zeros at line 1:\ni00323e\n ^--- here"},
		},
		{
			name:     "negative zero",
			given:    "i-0e",
			expected: []string{"Number -0 cannot have leading zeros at line 1:\ni-0e\n ^--- here"},
		},
		{
			name:     "integer out of range",
			given:    "i99999999999999999999e",
			expected: []string{"Incorrect number 99999999999999999999 at line 1:\ni99999999999999999999e\n ^--- here"},
		},
		{
			name:     "integer without digits",
			given:    "ie",
			expected: []string{"Incorrect number '' at line 1:\nie\n ^--- here"},
		},
		{
			name:     "string shorter than declared",
			given:    "5:1e$@",
			expected: []string{"Expected string of length 5 at line 1:\n5:1e$@\n  ^--- here"},
		},
		{
			name:     "string longer than declared",
			given:    "5:12de$@",
			expected: []string{"Unknown char '@' at line 1:\n5:12de$@\n       ^--- here"},
		},
		{
			name:     "string without length",
			given:    ":12de",
			expected: []string{"Expected string of length 0 at line 1:\n:12de\n ^--- here"},
		},
		{
			name:  "string without separator",
			given: "5rre",
			expected: []string{
				"Unknown char 'r' at line 1:\n5rre\n ^--- here",
				"Unknown char 'r' at line 1:\n5rre\n  ^--- here",
			},
		},
		{
			name:     "non ascii payload",
			given:    "l2:\U0001F9E0e",
			expected: []string{"Unknown char '\U0001F9E0' at line 1:\nl2:\U0001F9E0e\n   ^--- here"},
		},
		{
			name:     "non ascii outside string",
			given:    "léée",
			expected: []string{"Unknown char 'é' at line 1:\nléée\n ^--- here", "Unknown char 'é' at line 1:\nléée\n  ^--- here"},
		},
		{
			name:     "length with leading zeros skips payload",
			given:    "l03:abce",
			expected: []string{"Number 03 cannot have leading zeros at line 1:\nl03:abce\n ^--- here"},
		},
		{
			name:     "length out of range skips line",
			given:    "l99999999999999999999:a\ne",
			expected: []string{"Incorrect number 99999999999999999999 at line 1:\nl99999999999999999999:a\n ^--- here"},
		},
		{
			name:     "zero length at end of line",
			given:    "0:",
			expected: []string{"Expected string of length 0 at line 1:\n0:\n  ^--- here"},
		},
		{
			name:     "payload missing at end of line",
			given:    "l5:\n12345e",
			expected: []string{"Expected string of length 5 at line 1:\nl5:\n   ^--- here"},
		},
		{
			name:     "second line",
			given:    "l\n1:a?e",
			expected: []string{"Unknown char '?' at line 2:\n1:a?e\n   ^--- here"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sink := diag.NewCollector(diag.DefaultLimit)

			actual, err := ScanString(tc.given, sink)
			assert.Nil(t, actual)
			assert.True(t, errors.Is(err, diag.ErrInvalidInput))
			assert.False(t, errors.Is(err, diag.ErrStopped))
			assert.Equal(t, tc.expected, sink.Messages())
		})
	}
}

func TestScan_stop(t *testing.T) {
	sink := diag.NewCollector(2)

	actual, err := ScanString("$$$$$$", sink)
	assert.Nil(t, actual)
	assert.True(t, errors.Is(err, diag.ErrStopped))
	assert.Len(t, sink.Messages(), 2)
}

func TestScan_tolerated(t *testing.T) {
	// The sink keeps accepting, the result is still a failure.
	actual, err := ScanString("i1e$", diag.Discard(0))
	assert.Nil(t, actual)
	assert.True(t, errors.Is(err, diag.ErrInvalidInput))
}

func TestScan_longLine(t *testing.T) {
	payload := strings.Repeat("a", 200_000)

	tokens, err := ScanString("200000:"+payload, diag.Discard(0))
	require.NoError(t, err)
	assert.Equal(t, payload, tokens[2].Literal)
}

func TestToken_Position(t *testing.T) {
	assert.Equal(t, "Line 3, position: 5", Token{Line: 3, Column: 4}.Position())
	assert.Equal(t, "End of line 2", Token{Line: 2, Column: EndOfLineColumn}.Position())
}

func TestKinds(t *testing.T) {
	assert.Equal(t, "[Integer, EndType]", Kinds(KindInteger, KindEndType))
	assert.Equal(t, "[]", Kinds())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
