package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New("version", "-v")

	assert.True(t, s.Has("-v"))
	assert.False(t, s.Has("-json"))
	assert.True(t, s.HasAny("--version", "version"))
	assert.False(t, s.HasAny("a", "b"))
	assert.ElementsMatch(t, []string{"version", "-v"}, s.List())
	assert.Equal(t, 2, s.Len())
}
