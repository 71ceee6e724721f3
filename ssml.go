package ssml

import "strings"

// Parse reads a complete SSML document and returns its root tag. The input
// must contain exactly one top-level element, named "speak"; any structural
// or attribute-syntax violation aborts the parse. The returned error wraps
// one of the package's sentinel kinds and, as a *ParseError, carries the
// byte offset of the failure.
func Parse(markup string, opts ...Option) (*Tag, error) {
	o := options{
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	p := &parser{input: markup, maxDepth: o.maxDepth}
	return p.parse()
}

// Render returns the canonical markup for n. Rendering is total and
// deterministic: text is re-encoded with the three supported entities,
// attributes appear in insertion order, and childless tags collapse to
// self-closing form.
func Render(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}
