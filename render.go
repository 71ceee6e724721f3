package ssml

import "strings"

// writeNode appends the canonical form of n to sb. A tag takes one of three
// forms, chosen by the rendered strings rather than by node counts: when the
// children render to nothing and there are no attributes it collapses to
// <name/>, with attributes only to <name attrs/>, and otherwise to the full
// open/children/close form with the attribute segment omitted when empty.
func writeNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Text:
		sb.WriteString(EscapeText(n.Value))
	case *Tag:
		attrs := renderAttrs(&n.Attrs)
		var children strings.Builder
		for _, c := range n.Children {
			writeNode(&children, c)
		}
		body := children.String()
		switch {
		case body == "" && attrs == "":
			sb.WriteString("<" + n.Name + "/>")
		case body == "":
			sb.WriteString("<" + n.Name + " " + attrs + "/>")
		case attrs == "":
			sb.WriteString("<" + n.Name + ">" + body + "</" + n.Name + ">")
		default:
			sb.WriteString("<" + n.Name + " " + attrs + ">" + body + "</" + n.Name + ">")
		}
	}
}

// renderAttrs joins the attribute mapping as key="value" pairs in insertion
// order. Values were captured verbatim at parse time and are written back
// verbatim.
func renderAttrs(a *Attributes) string {
	if a.Len() == 0 {
		return ""
	}
	parts := make([]string, 0, a.Len())
	for _, k := range a.Keys() {
		v, _ := a.Get(k)
		parts = append(parts, k+`="`+v+`"`)
	}
	return strings.Join(parts, " ")
}
