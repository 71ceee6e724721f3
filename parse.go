package ssml

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// RootName is the required name of the outermost element.
const RootName = "speak"

// attrPattern matches one key="value" pair. Keys allow Unicode word
// characters (letters, digits, underscore) plus ':' and '-'; values are
// anything up to the next double quote. Values are captured verbatim and not
// entity-decoded.
var attrPattern = regexp.MustCompile(`([\p{L}\p{N}_:-]+)\s*=\s*"([^"]*)"`)

// parser holds the state of a single Parse call: a cursor into the input, a
// stack of open tags, the completed root, and whether a top-level element
// has already closed.
type parser struct {
	input    string
	pos      int
	stack    []*Tag
	root     *Tag
	sawRoot  bool
	maxDepth int
}

// parse runs the scanner to end of input, then applies the termination
// checks: no open tags may remain and exactly one root named "speak" must
// have closed.
func (p *parser) parse() (*Tag, error) {
	for p.pos < len(p.input) {
		if p.input[p.pos] == '<' {
			if err := p.scanTag(); err != nil {
				return nil, err
			}
			continue
		}
		if err := p.scanText(); err != nil {
			return nil, err
		}
	}
	if len(p.stack) > 0 {
		return nil, parseErr(ErrUnclosedTags, len(p.input), p.stack[len(p.stack)-1].Name)
	}
	if p.root == nil {
		return nil, parseErr(ErrMissingRoot, len(p.input), "")
	}
	if p.root.Name != RootName {
		return nil, parseErr(ErrWrongRootName, len(p.input), p.root.Name)
	}
	return p.root, nil
}

// scanText consumes a run of character data up to the next '<' or end of
// input. Blank runs are dropped wherever they appear; a non-blank run needs
// an open ancestor and is stored with its entities decoded.
func (p *parser) scanText() error {
	end := strings.IndexByte(p.input[p.pos:], '<')
	if end == -1 {
		end = len(p.input)
	} else {
		end += p.pos
	}
	text := p.input[p.pos:end]
	if strings.TrimSpace(text) != "" {
		if len(p.stack) == 0 {
			return parseErr(ErrTextOutsideRoot, p.pos, "")
		}
		top := p.stack[len(p.stack)-1]
		top.Children = append(top.Children, &Text{Value: UnescapeText(text)})
	}
	p.pos = end
	return nil
}

// scanTag consumes one <...> construct starting at p.pos. The interior is
// classified in fixed priority: closing marker first, then self-closing
// marker, then the open-tag default.
func (p *parser) scanTag() error {
	start := p.pos
	end := strings.IndexByte(p.input[start:], '>')
	if end == -1 {
		return parseErr(ErrUnterminatedTag, start, "")
	}
	end += start
	interior := strings.TrimSpace(p.input[start+1 : end])
	p.pos = end + 1

	switch {
	case strings.HasPrefix(interior, "/"):
		return p.closeTag(start, strings.TrimSpace(interior[1:]))
	case strings.HasSuffix(interior, "/"):
		return p.selfClose(start, interior[:len(interior)-1])
	default:
		return p.openTag(start, interior)
	}
}

func (p *parser) closeTag(at int, name string) error {
	if len(p.stack) == 0 {
		return parseErr(ErrUnmatchedClosingTag, at, name)
	}
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	if top.Name != name {
		return parseErr(ErrMismatchedClosingTag, at, "<"+top.Name+"> closed by </"+name+">")
	}
	if len(p.stack) > 0 {
		parent := p.stack[len(p.stack)-1]
		parent.Children = append(parent.Children, top)
		return nil
	}
	if p.root != nil {
		return parseErr(ErrMultipleTopLevelRoots, at, name)
	}
	p.root = top
	p.sawRoot = true
	return nil
}

func (p *parser) selfClose(at int, interior string) error {
	tag, err := newTagFromInterior(interior, at)
	if err != nil {
		return err
	}
	if len(p.stack) == 0 {
		return parseErr(ErrSelfClosingOutsideRoot, at, tag.Name)
	}
	top := p.stack[len(p.stack)-1]
	top.Children = append(top.Children, tag)
	return nil
}

func (p *parser) openTag(at int, interior string) error {
	tag, err := newTagFromInterior(interior, at)
	if err != nil {
		return err
	}
	if len(p.stack) == 0 && p.sawRoot {
		return parseErr(ErrMultipleTopLevelRoots, at, tag.Name)
	}
	if len(p.stack) >= p.maxDepth {
		return parseErr(ErrDepthExceeded, at, tag.Name)
	}
	p.stack = append(p.stack, tag)
	return nil
}

// newTagFromInterior builds a childless Tag from the interior text of an
// opening or self-closing tag. The first whitespace-delimited token is the
// name; the remainder is attribute text.
func newTagFromInterior(interior string, at int) (*Tag, error) {
	if strings.ContainsRune(interior, '\'') {
		return nil, parseErr(ErrMalformedAttribute, at, "single-quoted attribute values are not allowed")
	}
	interior = strings.TrimSpace(interior)
	fields := strings.Fields(interior)
	if len(fields) == 0 {
		return nil, parseErr(ErrMalformedAttribute, at, "empty tag name")
	}
	name := fields[0]
	attrs, err := parseAttrs(strings.TrimSpace(interior[len(name):]), at)
	if err != nil {
		return nil, err
	}
	return &Tag{Name: name, Attrs: attrs}, nil
}

// parseAttrs scans attrText for key="value" pairs and validates the text by
// coverage: every character outside a matched span must be whitespace. The
// leftover check is deliberately a coverage test rather than a grammar;
// anything the pattern does not consume, other than whitespace, is
// malformed. Matches are then applied left to right, so a duplicate key
// keeps its first position with the last value winning.
func parseAttrs(attrText string, at int) (Attributes, error) {
	var attrs Attributes
	if attrText == "" {
		return attrs, nil
	}
	matches := attrPattern.FindAllStringSubmatchIndex(attrText, -1)
	next := 0 // spans are ordered and non-overlapping
	for i, r := range attrText {
		if unicode.IsSpace(r) {
			continue
		}
		for next < len(matches) && i >= matches[next][1] {
			next++
		}
		if next == len(matches) || i < matches[next][0] {
			return Attributes{}, parseErr(ErrMalformedAttribute, at, "stray "+strconv.QuoteRune(r)+" in attribute text")
		}
	}
	for _, m := range matches {
		attrs.Set(attrText[m[2]:m[3]], attrText[m[4]:m[5]])
	}
	return attrs, nil
}
