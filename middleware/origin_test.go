package middleware

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func request(origin string) *http.Request {
	r, _ := http.NewRequest(http.MethodGet, "/ws", nil)
	if origin != "" {
		r.Header.Set("Origin", origin)
	}
	return r
}

func TestOriginCheckerExactMatch(t *testing.T) {
	check := OriginChecker([]string{
		"http://localhost:5173",
		"https://app.example.com",
		"https://app.example.com/",
	})

	assert.True(t, check(request("http://localhost:5173")))
	assert.True(t, check(request("https://app.example.com")))
	assert.True(t, check(request("https://app.example.com/")), "trailing-slash variant listed explicitly")

	assert.False(t, check(request("http://localhost:5173/")), "trailing slash is not normalized")
	assert.False(t, check(request("https://evil.example.com")))
	assert.False(t, check(request("HTTP://LOCALHOST:5173")), "matching is case-sensitive")
}

func TestOriginCheckerAllowsMissingOrigin(t *testing.T) {
	check := OriginChecker([]string{"http://localhost:5173"})
	assert.True(t, check(request("")), "non-browser clients send no Origin")
}
