// Package htmltree models the HTML element tree produced from markdown.
//
// A tree is made of three node kinds:
//
//	Text       raw string content, rendered verbatim
//	Leaf       tag + optional value + attributes
//	Container  tag + ordered children + attributes
//
// Nodes are plain values; structural problems (a container without a tag or
// children, a leaf with neither tag nor value) are reported by Render, never
// at construction time. Content and attribute values are written as-is: the
// tree assumes trusted input and performs no HTML escaping.
package htmltree
