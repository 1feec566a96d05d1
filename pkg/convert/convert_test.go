package convert

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seal-io/bendump/pkg/diag"
	"github.com/seal-io/bendump/pkg/element"
	"github.com/seal-io/bendump/pkg/render"
)

func TestConvert(t *testing.T) {
	testCases := []struct {
		name     string
		given    string
		opts     Options
		expected string
	}{
		{
			name:     "integer",
			given:    "i1234e",
			expected: "1234\n",
		},
		{
			name:     "string",
			given:    "5:hello",
			expected: "\"hello\"\n",
		},
		{
			name:     "list",
			given:    "l3:1233:key5:he||0e",
			expected: "[\"123\", \"key\", \"he||0\"]\n",
		},
		{
			name:     "dictionary",
			given:    "d3:bar4:spam3:fooi42ee",
			expected: "{\n  \"bar\": \"spam\"\n  \"foo\": 42\n}\n",
		},
		{
			name:     "dictionary inside list",
			given:    "d1:xld1:bi1eeee",
			expected: "{\n  \"x\": [{\"b\": 1}]\n}\n",
		},
		{
			name:  "selected",
			given: "d4:infod5:filesl1:x1:yeee",
			opts: Options{
				Select: element.Pointer{{Raw: "info", Value: "info"}, {Raw: "files", Value: "files"}},
			},
			expected: "[\"x\", \"y\"]\n",
		},
		{
			name:  "hcl",
			given: "d3:bar4:spam3:fooi42ee",
			opts: Options{
				Render: render.Options{Format: render.FormatHCL},
			},
			expected: "bar = \"spam\"\nfoo = 42\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				out  bytes.Buffer
				sink = diag.NewCollector(diag.DefaultLimit)
			)

			err := Convert(context.Background(), strings.NewReader(tc.given), &out, sink, tc.opts)
			assert.NoError(t, err)
			assert.Empty(t, sink.Messages())
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestConvert_invalid(t *testing.T) {
	testCases := []struct {
		name     string
		given    string
		opts     Options
		expected []string
	}{
		{
			name:  "leading zeros",
			given: "i00323e",
		},
		{
			name:  "broken key order",
			given: "d3:key1:a3:bar1:be",
			expected: []string{
				"Line 1, position: 1\nThe lexicographic order in the dictionary is broken",
			},
		},
		{
			name:  "too deep",
			given: "lli1eee",
			opts:  Options{MaxDepth: 1},
			expected: []string{
				"Line 1, position: 2\nNesting is deeper than 1 levels",
				"Line 1, position: 7\nExpected tokens: [Dictionary, List, IntegerBegin, StringBegin],\nActual: EndType",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				out  bytes.Buffer
				sink = diag.NewCollector(diag.DefaultLimit)
			)

			err := Convert(context.Background(), strings.NewReader(tc.given), &out, sink, tc.opts)
			assert.True(t, errors.Is(err, diag.ErrInvalidInput))
			assert.Zero(t, out.Len())

			if tc.expected != nil {
				assert.Equal(t, tc.expected, sink.Messages())
			} else {
				assert.NotEmpty(t, sink.Messages())
			}
		})
	}
}

func TestConvert_missingPayload(t *testing.T) {
	for _, given := range []string{"5:", "0:"} {
		var (
			out  bytes.Buffer
			sink = diag.NewCollector(diag.DefaultLimit)
		)

		err := Convert(context.Background(), strings.NewReader(given), &out, sink, Options{})
		assert.True(t, errors.Is(err, diag.ErrInvalidInput), given)
		assert.Zero(t, out.Len(), given)
		assert.Equal(t, []string{
			"Expected string of length " + given[:1] + " at line 1:\n" + given + "\n  ^--- here",
		}, sink.Messages(), given)
	}
}

func TestConvert_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer

	err := Convert(ctx, strings.NewReader("i1e"), &out, diag.Discard(0), Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, out.Len())
}

func TestConvert_unknownFormat(t *testing.T) {
	var out bytes.Buffer

	err := Convert(context.Background(), strings.NewReader("i1e"), &out, diag.Discard(0), Options{
		Render: render.Options{Format: "yaml"},
	})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, diag.ErrInvalidInput))
	assert.Zero(t, out.Len())
}

func TestConvert_selectMissing(t *testing.T) {
	var out bytes.Buffer

	err := Convert(context.Background(), strings.NewReader("d1:ai1ee"), &out, diag.Discard(0), Options{
		Select: element.Pointer{{Raw: "b", Value: "b"}},
	})
	assert.ErrorIs(t, err, element.ErrNotFound)
	assert.Zero(t, out.Len())
}
