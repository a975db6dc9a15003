package ir

// WalkFunc is called for each node with its nesting depth. Returning false
// skips the children of an element.
type WalkFunc func(n Node, depth int) bool

// Walk visits n and its descendants in document order.
func Walk(n Node, fn WalkFunc) {
	walk(n, 0, fn)
}

// WalkDocument visits every node of d, top level nodes at depth 0.
func WalkDocument(d *Document, fn WalkFunc) {
	for _, n := range d.Nodes() {
		walk(n, 0, fn)
	}
}

func walk(n Node, depth int, fn WalkFunc) {
	if !fn(n, depth) {
		return
	}
	el, ok := n.(*Element)
	if !ok {
		return
	}
	for _, c := range el.Children {
		walk(c, depth+1, fn)
	}
}
