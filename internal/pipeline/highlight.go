package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
)

// Sentinel errors for syntax highlighting.
var (
	ErrUnknownStyle = errors.New("unknown highlight style")
	ErrHighlight    = errors.New("syntax highlighting failed")
)

// CodeHighlighter defines the contract for highlighting code blocks.
type CodeHighlighter interface {
	Highlight(body string) (string, error)
	CSS() (string, error)
}

// ChromaHighlighter rewrites <pre><code> blocks into chroma markup using CSS
// classes. The stylesheet for the configured style is available from CSS.
//
// Code blocks keep the text after the opening fence, so a first line that
// names a known lexer ("go", "python", ...) selects the language and is
// removed from the output. Otherwise the language is guessed and plain text
// is the fallback.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a highlighter for the named chroma style.
func NewChromaHighlighter(styleName string) (*ChromaHighlighter, error) {
	style, ok := styles.Registry[styleName]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownStyle, styleName, strings.Join(StyleNames(), ", "))
	}
	return &ChromaHighlighter{
		style:     style,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}, nil
}

// StyleNames lists the registered chroma styles in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Highlight replaces every pre element whose only element child is a code
// element with highlighted markup. Other HTML is kept as is.
func (h *ChromaHighlighter) Highlight(body string) (string, error) {
	if !strings.Contains(body, "<pre>") {
		return body, nil
	}

	doc, isFragment, err := parseHTML(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var blocks []*html.Node
	collectCodeBlocks(doc, &blocks)

	for _, pre := range blocks {
		code := textContent(pre.FirstChild)
		out, err := h.format(code)
		if err != nil {
			return "", err
		}
		nodes, err := parseFragment(out)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrHighlight, err)
		}
		for _, n := range nodes {
			pre.Parent.InsertBefore(n, pre)
		}
		pre.Parent.RemoveChild(pre)
	}

	return renderHTML(doc, isFragment)
}

// CSS returns the stylesheet matching the generated class names.
func (h *ChromaHighlighter) CSS() (string, error) {
	var buf strings.Builder
	if err := h.formatter.WriteCSS(&buf, h.style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return buf.String(), nil
}

func (h *ChromaHighlighter) format(code string) (string, error) {
	lexer, code := selectLexer(code)
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return buf.String(), nil
}

// selectLexer picks a lexer from a leading language line, then by analysis.
// It returns the code without the language line when one was used.
func selectLexer(code string) (chroma.Lexer, string) {
	first, rest, found := strings.Cut(code, "\n")
	first = strings.TrimSpace(first)
	if found && first != "" && !strings.ContainsAny(first, " \t") {
		if lexer := lexers.Get(first); lexer != nil {
			return lexer, rest
		}
	}
	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer, code
	}
	return lexers.Fallback, code
}

// collectCodeBlocks finds pre elements wrapping a single code element.
func collectCodeBlocks(n *html.Node, out *[]*html.Node) {
	if n.Type == html.ElementNode && n.Data == "pre" &&
		n.FirstChild != nil && n.FirstChild == n.LastChild &&
		n.FirstChild.Type == html.ElementNode && n.FirstChild.Data == "code" {
		*out = append(*out, n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectCodeBlocks(c, out)
	}
}
