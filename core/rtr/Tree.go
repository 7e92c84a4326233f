package rtr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rohanthewiz/rmux/consts"
)

// Tree is a segment-level route trie with named parameters and wildcards.
// Paths are split on "/" and each segment becomes one level of the trie,
// so lookup cost tracks segment count rather than route count.
//
// The tree is append-only: routes are added during setup and the structure
// is shared read-only between requests. Finish registration before serving.
//
// Zero value is ready to use - the root node is embedded, not a pointer.
type Tree[T any] struct {
	root treeNode[T]
}

// Add registers a handler for the given method and path.
//
// Segment forms:
//   - ":name" declares a parameter segment matching any single value
//   - "*" declares a wildcard matching every remaining segment
//   - anything else matches itself exactly
//
// Add never rejects a path. Registering the same method and path again
// replaces the handler, and a parameter segment registered with a new name
// at an occupied position renames that position for every route sharing it
// (last write wins). Segments added below a wildcard are unreachable:
// lookup never descends past one.
func (tree *Tree[T]) Add(m Method, path string, handler T) {
	node := &tree.root
	segments := strings.Split(path, consts.FwdSlash)

	for i := 1; i < len(segments); i++ {
		segment := segments[i]
		switch {
		case len(segment) > 0 && segment[0] == consts.RuneColon:
			node = node.param(segment[1:])
		case segment == consts.PatternAll:
			node = node.wildcard()
		default:
			node = node.staticChild(segment)
		}
	}

	node.setHandler(m, handler, path)
}

// Lookup finds the handler whose route matches the given method and path,
// binding parameter segments into params along the way. Bindings left in
// params on a miss have already been rolled back; on a hit they describe
// exactly the matched route.
func (tree *Tree[T]) Lookup(m Method, path string, params Params) (T, bool) {
	if params == nil {
		params = make(Params, 4)
	}
	return tree.root.resolve(strings.Split(path, consts.FwdSlash), 1, m, params)
}

// resolve walks the trie from node, consuming segments[index:].
//
// Branch order fixes route precedence: static children win over the
// parameter child, and the parameter child over the wildcard. Because a
// failed deeper attempt returns here before the next branch kind is tried,
// the ordering holds at every level, not just the first divergence.
//
// A parameter binding made for an attempt that dead-ends is undone before
// falling through, restoring whatever value the name held beforehand, so a
// failed parametric branch never leaks a stale binding into a later match.
func (node *treeNode[T]) resolve(segments []string, index int, m Method, params Params) (handler T, found bool) {
	if index == len(segments) {
		return node.handler(m)
	}

	segment := segments[index]

	if child, ok := node.staticChildren[segment]; ok {
		if handler, found = child.resolve(segments, index+1, m, params); found {
			return handler, true
		}
	}

	if node.paramChild != nil {
		previous, bound := params[node.paramName]
		params[node.paramName] = segment

		if handler, found = node.paramChild.resolve(segments, index+1, m, params); found {
			return handler, true
		}

		if bound {
			params[node.paramName] = previous
		} else {
			delete(params, node.paramName)
		}
	}

	if node.wildcardChild != nil {
		// A wildcard absorbs all remaining segments at whatever depth it
		// sits, so the answer is on the wildcard node itself - no recursion.
		return node.wildcardChild.handler(m)
	}

	return handler, false
}

// ListRoutes returns every registered route sorted by path then method.
func (tree *Tree[T]) ListRoutes() (routes []RouteList) {
	tree.root.walk(func(pattern string, handlers map[Method]T) {
		for _, m := range Methods {
			if handler, ok := handlers[m]; ok {
				routes = append(routes, RouteList{
					Method:     m.String(),
					Path:       pattern,
					HandlerRef: fmt.Sprintf("%v", handler),
				})
			}
		}
	})

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return
}
