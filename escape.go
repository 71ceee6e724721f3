package ssml

import "strings"

// The dialect supports exactly three character entities. Both replacers work
// in a single pass over the input: decoding never re-reads replaced output,
// and encoding never corrupts an entity marker it just wrote.
var (
	encoder = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	decoder = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")
)

// EscapeText encodes the three supported characters in s for embedding as
// character data.
func EscapeText(s string) string { return encoder.Replace(s) }

// UnescapeText decodes the three supported entity references in s. Other
// entity-like sequences pass through untouched.
func UnescapeText(s string) string { return decoder.Replace(s) }
