package markdown

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mdsite/internal/htmltree"
)

// RootTag is the tag of the container wrapping a compiled document.
const RootTag = "div"

// ToHTMLNode parses a whole document into its root container.
func ToHTMLNode(document string) (*htmltree.Container, []Warning) {
	return Compile(Blocks(document))
}

// Compile builds one element per block, in order, under a "div" container.
// Blocks that produce nothing (empty lists) are omitted with a warning.
func Compile(blocks []Block) (*htmltree.Container, []Warning) {
	root := htmltree.NewContainer(RootTag)
	warn := &warnings{}

	for i, b := range blocks {
		warn.block = i + 1
		if elem := compileBlock(b, warn); elem != nil {
			root.Append(elem)
		}
	}
	return root, warn.list
}

func compileBlock(b Block, warn *warnings) htmltree.Element {
	switch b.Kind.Type {
	case BlockParagraph:
		return paragraph(paragraphText(b.Text), warn)
	case BlockHeading:
		return heading(b.Text, b.Kind.Level, warn)
	case BlockCode:
		return codeBlock(b.Text)
	case BlockQuote:
		return quote(b.Text, warn)
	case BlockUnorderedList:
		return unorderedList(b.Text, warn)
	case BlockOrderedList:
		return orderedList(b.Text, warn)
	case BlockImage:
		return imageBlock(b.Text, warn)
	case BlockLink:
		return linkBlock(b.Text, warn)
	}
	panic(fmt.Sprintf("markdown: unhandled block type %v", b.Kind.Type))
}

func inlineContainer(tag, text string, warn *warnings) *htmltree.Container {
	return htmltree.NewContainer(tag, spanElements(textToSpans(text, warn))...)
}

func paragraph(text string, warn *warnings) htmltree.Element {
	return inlineContainer("p", text, warn)
}

func heading(block string, level int, warn *warnings) htmltree.Element {
	return inlineContainer(fmt.Sprintf("h%d", level), headingText(block, level), warn)
}

func codeBlock(block string) htmltree.Element {
	text := strings.TrimSpace(block[len(codeFence) : len(block)-len(codeFence)])
	return htmltree.NewContainer("pre",
		htmltree.NewContainer("code", htmltree.NewText(text)),
	)
}

func quote(block string, warn *warnings) htmltree.Element {
	return inlineContainer("blockquote", quoteText(block), warn)
}

func unorderedList(block string, warn *warnings) htmltree.Element {
	return list("ul", unorderedItems(block), warn)
}

func orderedList(block string, warn *warnings) htmltree.Element {
	return list("ol", orderedItems(block), warn)
}

// list wraps each non-empty item in an "li". It returns nil when no item is
// left so that the caller can drop the block.
func list(tag string, items []string, warn *warnings) htmltree.Element {
	c := htmltree.NewContainer(tag)
	for n, item := range items {
		if item == "" {
			warn.add("empty item %d in <%s> skipped", n+1, tag)
			continue
		}
		c.Append(inlineContainer("li", item, warn))
	}
	if len(c.Children) == 0 {
		warn.add("<%s> has no items, omitted", tag)
		return nil
	}
	return c
}

// refParts splits "[label](target)rest" using the first "]", which must be
// followed immediately by "(", and the first ")" after it. The leading "["
// is expected at index start.
func refParts(block string, start int) (label, target, rest string, ok bool) {
	closeBracket := strings.IndexByte(block, ']')
	if closeBracket < start || closeBracket+1 >= len(block) || block[closeBracket+1] != '(' {
		return "", "", "", false
	}
	openParen := closeBracket + 1
	closeParen := strings.IndexByte(block[openParen:], ')')
	if closeParen < 0 {
		return "", "", "", false
	}
	closeParen += openParen
	return block[start+1 : closeBracket], block[openParen+1 : closeParen], block[closeParen+1:], true
}

func imageBlock(block string, warn *warnings) htmltree.Element {
	alt, src, rest, ok := refParts(block, 1)
	if !ok {
		warn.add("malformed image %q kept as text", excerpt(block))
		return htmltree.NewContainer("p", htmltree.NewText(block))
	}
	if strings.TrimSpace(rest) != "" {
		warn.add("image followed by text, compiled as paragraph")
		return paragraph(strings.Join(strings.Split(block, "\n"), " "), warn)
	}
	img := htmltree.NewLeaf("img", "")
	img.Attrs = img.Attrs.Set("src", src).Set("alt", alt)
	return img
}

func linkBlock(block string, warn *warnings) htmltree.Element {
	text, href, rest, ok := refParts(block, 0)
	if !ok {
		warn.add("malformed link %q kept as text", excerpt(block))
		return htmltree.NewContainer("p", htmltree.NewText(block))
	}
	if strings.TrimSpace(rest) != "" {
		warn.add("link followed by text, compiled as paragraph")
		return paragraph(paragraphText(block), warn)
	}
	a := htmltree.NewContainer("a", htmltree.NewText(text))
	a.Attrs = a.Attrs.Set("href", href)
	return a
}

// InlineTexts returns the pieces of a block that are read as inline
// markdown, with block markers already stripped: one per non-empty list
// item, and one for a paragraph, heading or quote. Code, image and link
// blocks have none.
func InlineTexts(b Block) []string {
	switch b.Kind.Type {
	case BlockParagraph:
		return []string{paragraphText(b.Text)}
	case BlockHeading:
		return []string{headingText(b.Text, b.Kind.Level)}
	case BlockQuote:
		return []string{quoteText(b.Text)}
	case BlockUnorderedList:
		return nonEmpty(unorderedItems(b.Text))
	case BlockOrderedList:
		return nonEmpty(orderedItems(b.Text))
	}
	return nil
}

func paragraphText(block string) string {
	return strings.Join(strings.Split(block, "\n"), " ")
}

func headingText(block string, level int) string {
	return strings.TrimLeft(block[level:], " \t")
}

// quoteText drops the ">" marker and the whitespace around it on each line.
func quoteText(block string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		l = strings.TrimLeft(l, " \t")
		l = strings.TrimPrefix(l, ">")
		lines[i] = strings.TrimLeft(l, " \t")
	}
	return strings.Join(lines, "\n")
}

func unorderedItems(block string) []string {
	var items []string
	for _, l := range strings.Split(block, "\n") {
		items = append(items, strings.TrimSpace(strings.TrimPrefix(l, "- ")))
	}
	return items
}

// orderedItems keeps what follows the first "." on each line. A line
// without one yields an empty item.
func orderedItems(block string) []string {
	var items []string
	for _, l := range strings.Split(block, "\n") {
		_, item, ok := strings.Cut(l, ".")
		if !ok {
			item = ""
		}
		items = append(items, strings.TrimSpace(item))
	}
	return items
}

func nonEmpty(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
