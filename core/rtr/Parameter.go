package rtr

// Params holds parameter values extracted from dynamic route segments.
//
// Example:
//
//	Route: /user/:id/posts/:postId
//	Path:  /user/123/posts/456
//	Result: Params{"id": "123", "postId": "456"}
//
// The tree binds values into a Params during Lookup and rolls back any
// binding belonging to an attempt that did not end in a match, so after
// Lookup returns the map reflects only the matched route.
type Params map[string]string

// Get returns the value bound to name, or an empty string.
func (p Params) Get(name string) string {
	return p[name]
}

// Has reports whether name was bound during lookup.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}
