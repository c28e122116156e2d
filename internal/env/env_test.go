package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	t.Run("returns first non-empty", func(t *testing.T) {
		t.Setenv("DSCLIENT_A", "")
		t.Setenv("DSCLIENT_B", "b")
		t.Setenv("DSCLIENT_C", "c")

		assert.Equal(t, "b", First("DSCLIENT_A", "DSCLIENT_B", "DSCLIENT_C"))
	})

	t.Run("treats blank as unset", func(t *testing.T) {
		t.Setenv("DSCLIENT_A", "   ")
		t.Setenv("DSCLIENT_B", " b ")

		assert.Equal(t, "b", First("DSCLIENT_A", "DSCLIENT_B"))
	})

	t.Run("empty when nothing set", func(t *testing.T) {
		t.Setenv("DSCLIENT_A", "")

		assert.Equal(t, "", First("DSCLIENT_A"))
		assert.Equal(t, "", First())
	})
}
