package rmux_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rmux"
)

func TestURIOriginForm(t *testing.T) {
	var u rmux.URI

	assert.Equal(t, u.Project("/users/42"), "/users/42")
	assert.Equal(t, u.Query(), "")

	assert.Equal(t, u.Project("/search?q=go&limit=10"), "/search")
	assert.Equal(t, u.Query(), "q=go&limit=10")

	assert.Equal(t, u.Project("/"), "/")
	assert.Equal(t, u.Project(""), "/")
}

func TestURIAbsoluteForm(t *testing.T) {
	var u rmux.URI

	path := u.Project("https://api.example.com/v1/users?active=true")
	assert.Equal(t, path, "/v1/users")
	assert.Equal(t, u.Scheme(), "https")
	assert.Equal(t, u.Host(), "api.example.com")
	assert.Equal(t, u.Query(), "active=true")

	// Host with no path at all.
	path = u.Project("http://example.com")
	assert.Equal(t, path, "/")
	assert.Equal(t, u.Host(), "example.com")

	path = u.Project("http://example.com?probe=1")
	assert.Equal(t, path, "/")
	assert.Equal(t, u.Query(), "probe=1")
}

// Garbage input becomes the path verbatim rather than an error.
func TestURIMalformed(t *testing.T) {
	var u rmux.URI

	assert.Equal(t, u.Project("not a url"), "not a url")
	assert.Equal(t, u.Project("carrots"), "carrots")
	assert.Equal(t, u.Project("a?b?c"), "a")
	assert.Equal(t, u.Query(), "b?c")
}

func TestURIProjectResetsPriorState(t *testing.T) {
	var u rmux.URI

	u.Project("https://example.com/first?x=1")
	u.Project("/second")
	assert.Equal(t, u.Path(), "/second")
	assert.Equal(t, u.Scheme(), "")
	assert.Equal(t, u.Host(), "")
	assert.Equal(t, u.Query(), "")
}
