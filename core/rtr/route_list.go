package rtr

// RouteList represents a registered route for debugging and inspection purposes.
// Both route containers expose their contents in this format so callers can
// merge static and tree registrations into one listing.
//
// Fields:
//   - Method: canonical method string (GET, POST, ...)
//   - Path: the path as registered (e.g., "/users/:id")
//   - HandlerRef: string representation of the handler (for debugging)
//
// This is primarily used for:
//   - Route table visualization
//   - Debugging route conflicts
//   - Testing route registration
type RouteList struct {
	Method     string
	Path       string
	HandlerRef string
}
