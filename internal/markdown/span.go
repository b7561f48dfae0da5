package markdown

import (
	"fmt"

	"github.com/alnah/go-mdsite/internal/htmltree"
)

// SpanKind is the semantic kind of an inline span.
type SpanKind int

// Span kinds.
const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
	SpanImage
)

var spanKindNames = [...]string{
	SpanPlain:  "plain",
	SpanBold:   "bold",
	SpanItalic: "italic",
	SpanCode:   "code",
	SpanLink:   "link",
	SpanImage:  "image",
}

func (k SpanKind) String() string {
	if k < 0 || int(k) >= len(spanKindNames) {
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
	return spanKindNames[k]
}

// Span is an inline unit of text. Target holds the URL of a link or the
// source of an image and is empty for every other kind.
type Span struct {
	Kind   SpanKind
	Text   string
	Target string
}

// Plain returns an unformatted span.
func Plain(text string) Span { return Span{Kind: SpanPlain, Text: text} }

// Bold returns a bold span.
func Bold(text string) Span { return Span{Kind: SpanBold, Text: text} }

// Italic returns an italic span.
func Italic(text string) Span { return Span{Kind: SpanItalic, Text: text} }

// Code returns an inline code span.
func Code(text string) Span { return Span{Kind: SpanCode, Text: text} }

// Link returns a link span pointing at url.
func Link(text, url string) Span { return Span{Kind: SpanLink, Text: text, Target: url} }

// Image returns an image span with alt text and source src.
func Image(alt, src string) Span { return Span{Kind: SpanImage, Text: alt, Target: src} }

func (s Span) String() string {
	if s.Target != "" {
		return fmt.Sprintf("%s(%q -> %q)", s.Kind, s.Text, s.Target)
	}
	return fmt.Sprintf("%s(%q)", s.Kind, s.Text)
}

// Element converts the span to its tree node.
func (s Span) Element() htmltree.Element {
	switch s.Kind {
	case SpanPlain:
		return htmltree.NewText(s.Text)
	case SpanBold:
		return htmltree.NewLeaf("b", s.Text)
	case SpanItalic:
		return htmltree.NewLeaf("i", s.Text)
	case SpanCode:
		return htmltree.NewLeaf("code", s.Text)
	case SpanLink:
		leaf := htmltree.NewLeaf("a", s.Text)
		leaf.Attrs = leaf.Attrs.Set("href", s.Target)
		return leaf
	case SpanImage:
		leaf := htmltree.NewLeaf("img", "")
		leaf.Attrs = leaf.Attrs.Set("src", s.Target).Set("alt", s.Text)
		return leaf
	}
	panic(fmt.Sprintf("markdown: unhandled span kind %v", s.Kind))
}

// spanElements converts spans in order.
func spanElements(spans []Span) []htmltree.Element {
	elems := make([]htmltree.Element, 0, len(spans))
	for _, s := range spans {
		elems = append(elems, s.Element())
	}
	return elems
}
