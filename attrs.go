package ssml

// Attr is a single key/value pair, used when constructing tags with NewTag.
type Attr struct {
	Key   string
	Value string
}

// Attributes is a string-to-string mapping that remembers insertion order.
// Keys iterate in the order they were first set; overwriting an existing key
// keeps its original position. The zero value is an empty, ready-to-use
// mapping.
type Attributes struct {
	keys   []string
	values map[string]string
}

// Len returns the number of attributes.
func (a *Attributes) Len() int { return len(a.keys) }

// Get returns the value stored for key and whether the key is present.
func (a *Attributes) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Set inserts or overwrites key. A new key is appended to the iteration
// order; an existing key keeps its position and only its value changes.
func (a *Attributes) Set(key, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Keys returns the attribute keys in iteration order. The returned slice is
// shared with the mapping and must not be modified.
func (a *Attributes) Keys() []string { return a.keys }

// Equal reports whether two mappings hold the same keys and values.
// Insertion order does not participate in equality, only in iteration.
func (a *Attributes) Equal(other *Attributes) bool {
	if len(a.keys) != len(other.keys) {
		return false
	}
	for k, v := range a.values {
		if ov, ok := other.values[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
