package transport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoAuth(t *testing.T) {
	req := &http.Request{Header: make(http.Header)}
	(&NoAuth{}).Apply(req, "test-token")
	assert.Empty(t, req.Header)
}

func TestHeaderAuth(t *testing.T) {
	t.Run("custom header", func(t *testing.T) {
		req := &http.Request{Header: make(http.Header)}
		(&HeaderAuth{Header: "X-Api-Key"}).Apply(req, "test-token")
		assert.Equal(t, "test-token", req.Header.Get("X-Api-Key"))
		assert.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("defaults to Authorization without scheme", func(t *testing.T) {
		req := &http.Request{Header: make(http.Header)}
		(&HeaderAuth{}).Apply(req, "test-token")
		assert.Equal(t, "test-token", req.Header.Get("Authorization"))
	})
}

func TestForToken(t *testing.T) {
	assert.IsType(t, &NoAuth{}, ForToken(""))
	assert.IsType(t, &HeaderAuth{}, ForToken("abc"))
}
