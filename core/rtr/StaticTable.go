package rtr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// StaticTable is a flat exact-match route table for paths carrying neither
// parameter nor wildcard segments. A single map probe answers a lookup, so
// fully static routes never pay for a tree descent.
type StaticTable[T any] struct {
	routes map[string]T
}

// NewStaticTable creates an initialized table.
// Use this rather than a zero value so Add can assume the map exists.
func NewStaticTable[T any]() *StaticTable[T] {
	return &StaticTable[T]{routes: make(map[string]T, 16)}
}

// staticKey joins a method bit and an exact path into one map key.
// The separator keeps slash-less paths from colliding across methods
// (without it, bit 1 + path "6/x" and bit 16 + path "/x" would share a key).
func staticKey(m Method, path string) string {
	return strconv.Itoa(int(m)) + ":" + path
}

// Add registers a handler for the exact method and path.
// Re-registering replaces the previous handler silently.
func (table *StaticTable[T]) Add(m Method, path string, handler T) {
	table.routes[staticKey(m, path)] = handler
}

// Lookup finds the handler for the given method and exact path.
func (table *StaticTable[T]) Lookup(m Method, path string) (T, bool) {
	handler, found := table.routes[staticKey(m, path)]
	return handler, found
}

// Len reports the number of registered method+path entries.
func (table *StaticTable[T]) Len() int {
	return len(table.routes)
}

// ListRoutes returns every registered route sorted by path then method.
func (table *StaticTable[T]) ListRoutes() (routes []RouteList) {
	for key, handler := range table.routes {
		sep := strings.IndexByte(key, ':')
		bit, _ := strconv.Atoi(key[:sep])
		routes = append(routes, RouteList{
			Method:     Method(bit).String(),
			Path:       key[sep+1:],
			HandlerRef: fmt.Sprintf("%v", handler),
		})
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return
}
