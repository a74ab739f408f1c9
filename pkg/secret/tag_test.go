package secret

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagDeterministic(t *testing.T) {
	t.Parallel()

	a := TagString("my_password")
	b := TagString("my_password")
	assert.Equal(t, a, b, "equal plaintexts must produce equal tags")
	assert.Equal(t, a, Tag([]byte("my_password")))
}

func TestTagDistinguishesValues(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, TagString("my_password"), TagString("my_password2"))
	assert.NotEqual(t, TagString(""), TagString("x"))
}

func TestTagShape(t *testing.T) {
	t.Parallel()

	tag := TagString("anything")
	assert.True(t, strings.HasPrefix(tag, "shroud1:"), "tag = %q", tag)
	assert.Len(t, tag, len("shroud1:")+32, "16-byte digest hex-encoded")
	assert.NotContains(t, tag, "anything")
}
