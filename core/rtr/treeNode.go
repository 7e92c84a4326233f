package rtr

// treeNode is a single path segment in the route trie.
// Each node can branch three ways, tried in strict order during lookup:
// static children first, then the parameter child, then the wildcard child.
//
// Example structure for routes /users/all, /users/:id, /files/*:
//
//	root
//	 ├── "users"
//	 │    ├── "all"      (handlers: GET -> h1)
//	 │    └── :id        (handlers: GET -> h2)
//	 └── "files"
//	      └── *          (handlers: GET -> h3)
//
// handlers is non-nil only at route terminals. The wildcard child is a leaf
// as far as lookup is concerned: it holds handlers and is never descended
// past, so it matches any remaining depth.
type treeNode[T any] struct {
	handlers       map[Method]T
	staticChildren map[string]*treeNode[T]
	paramChild     *treeNode[T]
	paramName      string
	wildcardChild  *treeNode[T]
	pattern        string // registered path, recorded at terminals for listings
}

// setHandler marks the node as a terminal for the given method.
// Registering the same method again replaces the previous handler.
func (node *treeNode[T]) setHandler(m Method, handler T, pattern string) {
	if node.handlers == nil {
		node.handlers = make(map[Method]T, 2)
	}
	node.handlers[m] = handler
	node.pattern = pattern
}

// handler returns the terminal handler for a single method bit.
func (node *treeNode[T]) handler(m Method) (handler T, found bool) {
	if node.handlers == nil {
		return handler, false
	}
	handler, found = node.handlers[m]
	return
}

// staticChild returns the child for an exact segment, creating it on demand.
func (node *treeNode[T]) staticChild(segment string) *treeNode[T] {
	if node.staticChildren == nil {
		node.staticChildren = make(map[string]*treeNode[T], 4)
	}
	child, ok := node.staticChildren[segment]
	if !ok {
		child = &treeNode[T]{}
		node.staticChildren[segment] = child
	}
	return child
}

// param returns the parameter child, creating it on demand.
// The node holds the parameter's name, not the child: when two routes place
// differently named parameters at the same position, the name registered
// last wins for both.
func (node *treeNode[T]) param(name string) *treeNode[T] {
	if node.paramChild == nil {
		node.paramChild = &treeNode[T]{}
	}
	node.paramName = name
	return node.paramChild
}

// wildcard returns the wildcard child, creating it on demand.
func (node *treeNode[T]) wildcard() *treeNode[T] {
	if node.wildcardChild == nil {
		node.wildcardChild = &treeNode[T]{}
	}
	return node.wildcardChild
}

// walk visits every terminal node reachable from node, in no particular
// order, calling visit with the pattern recorded at registration time.
func (node *treeNode[T]) walk(visit func(pattern string, handlers map[Method]T)) {
	if len(node.handlers) > 0 {
		visit(node.pattern, node.handlers)
	}
	for _, child := range node.staticChildren {
		child.walk(visit)
	}
	if node.paramChild != nil {
		node.paramChild.walk(visit)
	}
	if node.wildcardChild != nil {
		node.wildcardChild.walk(visit)
	}
}
