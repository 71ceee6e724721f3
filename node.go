package ssml

import "strings"

// Node is a single element of a parsed document: either a *Tag or a *Text.
// The set of implementations is closed.
type Node interface {
	// Equal reports whether two nodes are structurally identical.
	Equal(other Node) bool
	// String returns the canonical markup for the node.
	String() string

	node()
}

// Text is a leaf node holding decoded character data. Entity references are
// resolved when the node is created by the parser; the payload is re-encoded
// only at render time.
type Text struct {
	Value string
}

// NewText returns a Text node holding s.
func NewText(s string) *Text { return &Text{Value: s} }

func (t *Text) node() {}

// Equal reports whether other is a Text node with the same payload.
func (t *Text) Equal(other Node) bool {
	o, ok := other.(*Text)
	return ok && t.Value == o.Value
}

func (t *Text) String() string { return Render(t) }

// Tag is an element node: a name, an ordered attribute mapping, and an
// ordered sequence of children. A Tag exclusively owns its children; a node
// belongs to at most one parent.
type Tag struct {
	Name     string
	Attrs    Attributes
	Children []Node
}

// NewTag returns a childless Tag with the given name, trimmed of surrounding
// whitespace, and the given attributes in order.
func NewTag(name string, attrs ...Attr) *Tag {
	t := &Tag{Name: strings.TrimSpace(name)}
	for _, a := range attrs {
		t.Attrs.Set(a.Key, a.Value)
	}
	return t
}

// Append adds children to the tag in order and returns the tag for chaining.
func (t *Tag) Append(children ...Node) *Tag {
	t.Children = append(t.Children, children...)
	return t
}

func (t *Tag) node() {}

// Equal reports whether other is a Tag with the same name, a value-equal
// attribute mapping, and pairwise-equal children in the same order.
func (t *Tag) Equal(other Node) bool {
	o, ok := other.(*Tag)
	if !ok || t.Name != o.Name || len(t.Children) != len(o.Children) {
		return false
	}
	if !t.Attrs.Equal(&o.Attrs) {
		return false
	}
	for i, c := range t.Children {
		if !c.Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

func (t *Tag) String() string { return Render(t) }

// Find returns the first tag named name in a depth-first walk of t,
// including t itself, or nil if there is none.
func (t *Tag) Find(name string) *Tag {
	var found *Tag
	Walk(t, func(n Node) bool {
		if tag, ok := n.(*Tag); ok && tag.Name == name {
			found = tag
			return false
		}
		return true
	})
	return found
}

// Walk calls fn for n and every node below it in document order. If fn
// returns false the walk stops.
func Walk(n Node, fn func(Node) bool) {
	walk(n, fn)
}

func walk(n Node, fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	if tag, ok := n.(*Tag); ok {
		for _, c := range tag.Children {
			if !walk(c, fn) {
				return false
			}
		}
	}
	return true
}
