package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leeward-labs/fixtura/value"
)

func TestPathStringRoundTrip(t *testing.T) {
	tcs := []string{
		"a.b.c",
		"a[].c",
		"a.{}.c",
		"a[]",
		"a.{}",
		"a#",
		"a.b[]#",
	}

	for _, coord := range tcs {
		t.Run(coord, func(t *testing.T) {
			p := value.ParsePath(coord)
			assert.Equal(t, coord, p.String())
		})
	}
}

func TestPathParent(t *testing.T) {
	p := value.ParsePath("a.b.c")
	assert.Equal(t, "a.b", p.Parent().String())
	assert.True(t, p.Parent().Parent().Parent().Empty())
}

func TestPathIsContainerMeta(t *testing.T) {
	assert.True(t, value.ParsePath("a[]").IsContainerMeta())
	assert.True(t, value.ParsePath("a{}").IsContainerMeta())
	assert.False(t, value.ParsePath("a").IsContainerMeta())
	assert.False(t, value.ParsePath("a#").IsContainerMeta())
}

func TestRootIsEmpty(t *testing.T) {
	assert.True(t, value.Root.Empty())
	assert.Equal(t, "", value.Root.String())
}
