package ssml

import (
	"errors"
	"fmt"
)

// Sentinel parse failure kinds. Every error returned by Parse wraps exactly
// one of these, so callers can branch with errors.Is.
var (
	// ErrUnterminatedTag reports a '<' with no matching '>'.
	ErrUnterminatedTag = errors.New("ssml: missing closing angle bracket")

	// ErrUnmatchedClosingTag reports a closing tag with no open ancestor.
	ErrUnmatchedClosingTag = errors.New("ssml: unmatched closing tag")

	// ErrMismatchedClosingTag reports a closing tag whose name differs from
	// the innermost open tag.
	ErrMismatchedClosingTag = errors.New("ssml: mismatched closing tag")

	// ErrMultipleTopLevelRoots reports a second element at depth zero.
	ErrMultipleTopLevelRoots = errors.New("ssml: multiple top-level tags")

	// ErrSelfClosingOutsideRoot reports a self-closing element with no open
	// ancestor; a self-closing element cannot be the root.
	ErrSelfClosingOutsideRoot = errors.New("ssml: self-closing tag outside of root")

	// ErrTextOutsideRoot reports non-blank character data with no open
	// ancestor.
	ErrTextOutsideRoot = errors.New("ssml: text outside root tag")

	// ErrUnclosedTags reports input that ends with open tags remaining.
	ErrUnclosedTags = errors.New("ssml: unclosed tags remaining")

	// ErrMissingRoot reports that no element ever closed at depth zero.
	ErrMissingRoot = errors.New("ssml: no root tag")

	// ErrWrongRootName reports a root element not named "speak".
	ErrWrongRootName = errors.New("ssml: root tag must be <speak>")

	// ErrMalformedAttribute reports a single quote anywhere in a tag
	// interior, or attribute text with characters outside every matched
	// key="value" span.
	ErrMalformedAttribute = errors.New("ssml: malformed attribute")

	// ErrDepthExceeded reports nesting deeper than the configured MaxDepth.
	ErrDepthExceeded = errors.New("ssml: maximum nesting depth exceeded")
)

// A ParseError describes a parse failure and where in the input it occurred.
type ParseError struct {
	// Offset is the byte offset of the construct being scanned when the
	// parse failed; for end-of-input failures it equals len(input).
	Offset int

	// Detail optionally names the offending construct, e.g. a tag name.
	Detail string

	kind error
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s at offset %d: %s", e.kind.Error(), e.Offset, e.Detail)
	}
	return fmt.Sprintf("%s at offset %d", e.kind.Error(), e.Offset)
}

// Unwrap returns the sentinel kind, making the error matchable with
// errors.Is.
func (e *ParseError) Unwrap() error { return e.kind }

func parseErr(kind error, offset int, detail string) error {
	return &ParseError{Offset: offset, Detail: detail, kind: kind}
}
