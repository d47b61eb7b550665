package contact

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdentity(t *testing.T) {
	t.Run("forwarded for wins and is used raw", func(t *testing.T) {
		h := http.Header{}
		h.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		h.Set("X-Real-IP", "198.51.100.2")
		assert.Equal(t, "203.0.113.7, 10.0.0.1", ResolveIdentity(h))
	})

	t.Run("repeated forwarded for lines are joined", func(t *testing.T) {
		h := http.Header{}
		h.Add("X-Forwarded-For", "203.0.113.7")
		h.Add("X-Forwarded-For", "10.0.0.1")
		assert.Equal(t, "203.0.113.7, 10.0.0.1", ResolveIdentity(h))
	})

	t.Run("real ip fallback", func(t *testing.T) {
		h := http.Header{}
		h.Set("X-Real-IP", "198.51.100.2")
		assert.Equal(t, "198.51.100.2", ResolveIdentity(h))
	})

	t.Run("unknown without headers", func(t *testing.T) {
		assert.Equal(t, UnknownIdentity, ResolveIdentity(http.Header{}))
	})
}
