/*
Package ssml parses and renders a constrained, XML-like speech markup
dialect.

The dialect is deliberately small: tags, double-quoted attributes, character
data, and exactly three character entities (&lt;, &gt; and &amp;). A valid
document has a single root element named <speak>. There is no namespace
support, no DTD or schema validation, and no streaming of partial input.

Parse reads a complete document in one left-to-right pass and returns the
root as a *Tag:

	root, err := ssml.Parse(`<speak>Hello <break time="1s"/>world</speak>`)
	if err != nil {
		// handle error
	}

The returned tree is made of two node kinds, *Tag and *Text, which together
implement the Node interface. Children and attributes keep their source
order, and text payloads are stored with entities already decoded. The tree
may be inspected or rewritten freely before rendering it back out:

	out := ssml.Render(root)

Render is total: it never fails on a tree built from Parse output or from
the NewTag and NewText constructors, and it emits canonical markup (entities
re-encoded, attributes in insertion order, childless tags in self-closing
form).

Parse failures are reported as a *ParseError carrying the byte offset of the
offending construct. Each error wraps one of the package's sentinel kinds,
so callers can branch with errors.Is:

	if _, err := ssml.Parse(input); errors.Is(err, ssml.ErrMalformedAttribute) {
		// reject the document
	}

Callers that parse or render the same documents repeatedly can memoize
results with the lru subpackage, a fixed-capacity recency cache.
*/
package ssml
