package markdown

import "regexp"

// inlineRef matches ![alt](src) and [text](url). The optional leading "!"
// decides between image and link, so a link is never read out of an image.
var inlineRef = regexp.MustCompile(`(!?)\[([^\[\]]*)\]\(([^()]*)\)`)

// ExtractSpans pulls every image and link out of text and returns them
// interleaved with the plain text around them. Empty plain pieces are
// omitted; text without references yields one plain span.
func ExtractSpans(text string) []Span {
	matches := inlineRef.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Span{Plain(text)}
	}

	spans := make([]Span, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, Plain(text[last:m[0]]))
		}
		label := text[m[4]:m[5]]
		target := text[m[6]:m[7]]
		if m[3] > m[2] {
			spans = append(spans, Image(label, target))
		} else {
			spans = append(spans, Link(label, target))
		}
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Plain(text[last:]))
	}
	return spans
}

// TextToSpans converts inline markdown to spans: images and links first,
// then bold, italic, code and remaining links inside the plain pieces.
func TextToSpans(text string) []Span {
	return textToSpans(text, nil)
}

func textToSpans(text string, warn *warnings) []Span {
	var spans []Span
	for _, s := range ExtractSpans(text) {
		if s.Kind != SpanPlain {
			spans = append(spans, s)
			continue
		}
		spans = append(spans, tokenize(s.Text, warn)...)
	}
	return spans
}
