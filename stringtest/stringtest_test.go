package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thornjad/el2md/stringtest"
)

func TestJoinLF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\nc", stringtest.JoinLF("a", "b", "c"))
	assert.Equal(t, "a", stringtest.JoinLF("a"))
	assert.Equal(t, "", stringtest.JoinLF())
	assert.Equal(t, "a\n\nb", stringtest.JoinLF("a", "", "b"))
}

func TestJoinLFn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\n", stringtest.JoinLFn("a", "b"))
	assert.Equal(t, "a\n", stringtest.JoinLFn("a"))
	assert.Equal(t, "\n", stringtest.JoinLFn(""))
}
