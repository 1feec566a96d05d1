package element

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePointer(t *testing.T) {
	p, err := ParsePointer("")
	assert.NoError(t, err)
	assert.Empty(t, p)

	p, err = ParsePointer("/info/a~1b/m~0n/0")
	require.NoError(t, err)
	assert.Equal(t, Pointer{
		{Raw: "info", Value: "info"},
		{Raw: "a~1b", Value: "a/b"},
		{Raw: "m~0n", Value: "m~n"},
		{Raw: "0", Value: "0"},
	}, p)
	assert.Equal(t, "/info/a~1b/m~0n/0", p.String())

	_, err = ParsePointer("info")
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	root := MustDictionary(
		Entry{Key: "a/b", Value: Integer(1)},
		Entry{Key: "info", Value: MustDictionary(
			Entry{Key: "files", Value: List{
				ByteString("x"),
				ByteString("y"),
			}},
		)},
	)

	testCases := []struct {
		name     string
		given    string
		expected Element
	}{
		{
			name:     "root",
			given:    "",
			expected: root,
		},
		{
			name:     "escaped key",
			given:    "/a~1b",
			expected: Integer(1),
		},
		{
			name:     "list item",
			given:    "/info/files/1",
			expected: ByteString("y"),
		},
		{
			name:  "missing key",
			given: "/info/name",
		},
		{
			name:  "index out of range",
			given: "/info/files/2",
		},
		{
			name:  "leading zero index",
			given: "/info/files/01",
		},
		{
			name:  "negative index",
			given: "/info/files/-1",
		},
		{
			name:  "into scalar",
			given: "/a~1b/x",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePointer(tc.given)
			require.NoError(t, err)

			actual, err := Select(root, p)
			if tc.expected == nil {
				assert.True(t, errors.Is(err, ErrNotFound), "error: %v", err)
				return
			}

			assert.NoError(t, err)
			assert.True(t, Equal(tc.expected, actual))
		})
	}
}
