package htmltree

import "strings"

// Attr is a single HTML attribute.
type Attr struct {
	Key string
	Val string
}

// Attrs is an attribute list rendered in insertion order.
// Keys are unique when built through Set.
type Attrs []Attr

// Set returns the list with key assigned to val. An existing key keeps its
// position; a new key is appended.
func (a Attrs) Set(key, val string) Attrs {
	for i := range a {
		if a[i].Key == key {
			a[i].Val = val
			return a
		}
	}
	return append(a, Attr{Key: key, Val: val})
}

// Get returns the value stored for key.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// String serializes the list as ` key="value"` pairs.
// Quotes inside values are not escaped.
func (a Attrs) String() string {
	if len(a) == 0 {
		return ""
	}
	var b strings.Builder
	for _, attr := range a {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(attr.Val)
		b.WriteByte('"')
	}
	return b.String()
}
