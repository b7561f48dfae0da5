package markdown

import "strings"

// inlineMarkers lists the markers the tokenizer looks for. When two markers
// start at the same index the first one in this list wins, so "**" is never
// read as two "*".
var inlineMarkers = [...]struct {
	open string
	kind SpanKind
}{
	{"**", SpanBold},
	{"__", SpanBold},
	{"*", SpanItalic},
	{"_", SpanItalic},
	{"`", SpanCode},
	{"[", SpanLink},
}

// Tokenize splits text into spans by scanning for the leftmost inline marker.
// Unterminated markers and malformed links are kept as plain text.
// Text without markers yields exactly one plain span equal to the input.
func Tokenize(text string) []Span {
	return tokenize(text, nil)
}

func tokenize(text string, warn *warnings) []Span {
	var spans []Span
	rest := text

	for {
		idx, marker := nextMarker(rest)
		if idx < 0 {
			if rest != "" || len(spans) == 0 {
				spans = append(spans, Plain(rest))
			}
			return spans
		}

		if idx > 0 {
			spans = append(spans, Plain(rest[:idx]))
		}
		open := inlineMarkers[marker].open
		kind := inlineMarkers[marker].kind
		after := rest[idx+len(open):]

		if kind == SpanLink {
			if span, n, ok := scanLink(after); ok {
				spans = append(spans, span)
				rest = after[n:]
				continue
			}
			warn.add("malformed link near %q kept as text", excerpt(rest[idx:]))
			spans = append(spans, Plain(open))
			rest = after
			continue
		}

		end := strings.Index(after, open)
		if end < 0 {
			warn.add("unterminated %q kept as text", open)
			spans = append(spans, Plain(open))
			rest = after
			continue
		}
		spans = append(spans, Span{Kind: kind, Text: after[:end]})
		rest = after[end+len(open):]
	}
}

// nextMarker returns the index of the earliest marker in s and its position
// in inlineMarkers, or -1.
func nextMarker(s string) (idx, marker int) {
	idx, marker = -1, -1
	for i, m := range inlineMarkers {
		j := strings.Index(s, m.open)
		if j < 0 {
			continue
		}
		if idx < 0 || j < idx {
			idx, marker = j, i
		}
	}
	return idx, marker
}

// scanLink parses `text](target)` following an opening bracket.
// It returns the span and the number of bytes consumed.
func scanLink(s string) (Span, int, bool) {
	closeBracket := strings.IndexByte(s, ']')
	if closeBracket < 0 || closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
		return Span{}, 0, false
	}
	target := s[closeBracket+2:]
	closeParen := strings.IndexByte(target, ')')
	if closeParen < 0 {
		return Span{}, 0, false
	}
	return Link(s[:closeBracket], target[:closeParen]), closeBracket + 2 + closeParen + 1, true
}

// excerpt shortens s for warning messages.
func excerpt(s string) string {
	const maxLen = 20
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
