package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-mdsite/internal/htmltree"
)

func render(t *testing.T, document string) (string, []Warning) {
	t.Helper()

	root, warns := ToHTMLNode(document)
	got, err := root.Render()
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	return got, warns
}

func TestToHTMLNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		document  string
		want      string
		wantWarns int
	}{
		{
			name:     "heading and paragraph",
			document: "# Title\n\nSome *text*.",
			want:     "<div><h1>Title</h1><p>Some <i>text</i>.</p></div>",
		},
		{
			name:     "plain paragraph round trip",
			document: "plain paragraph text",
			want:     "<div><p>plain paragraph text</p></div>",
		},
		{
			name:     "paragraph lines joined",
			document: "line one\nline two",
			want:     "<div><p>line one line two</p></div>",
		},
		{
			name:     "heading with inline markup",
			document: "## Sub *it*",
			want:     "<div><h2>Sub <i>it</i></h2></div>",
		},
		{
			name:     "unordered list",
			document: "- a\n- b",
			want:     "<div><ul><li>a</li><li>b</li></ul></div>",
		},
		{
			name:     "ordered list",
			document: "1. one\n2. **two**",
			want:     "<div><ol><li>one</li><li><b>two</b></li></ol></div>",
		},
		{
			name:     "quote",
			document: "> quoted\n> lines",
			want:     "<div><blockquote>quoted\nlines</blockquote></div>",
		},
		{
			name:     "code block",
			document: "```\nfunc main() {}\n```",
			want:     "<div><pre><code>func main() {}</code></pre></div>",
		},
		{
			name:     "code block keeps markers literal",
			document: "```\na **b** _c_\n```",
			want:     "<div><pre><code>a **b** _c_</code></pre></div>",
		},
		{
			name:     "image block",
			document: "![logo](/img/logo.png)",
			want:     `<div><img src="/img/logo.png" alt="logo"/></div>`,
		},
		{
			name:     "link block",
			document: "[Home](/)",
			want:     `<div><a href="/">Home</a></div>`,
		},
		{
			name:      "malformed link paragraph",
			document:  "[x(broken",
			want:      "<div><p>[x(broken</p></div>",
			wantWarns: 1,
		},
		{
			name:      "malformed link block",
			document:  "[x(broken)",
			want:      "<div><p>[x(broken)</p></div>",
			wantWarns: 1,
		},
		{
			name:      "link block with text before the target",
			document:  "[a] x (b)",
			want:      "<div><p>[a] x (b)</p></div>",
			wantWarns: 1,
		},
		{
			name:      "image block with text before the source",
			document:  "![a] x (b)",
			want:      "<div><p>![a] x (b)</p></div>",
			wantWarns: 1,
		},
		{
			name:      "code span containing a link",
			document:  "`[a](b)`",
			want:      "<div><p>`<a href=\"b\">a</a>`</p></div>",
			wantWarns: 2,
		},
		{
			name:      "link block followed by text",
			document:  "[a](b) and [c](d)",
			want:      `<div><p><a href="b">a</a> and <a href="d">c</a></p></div>`,
			wantWarns: 1,
		},
		{
			name:     "inline image in paragraph",
			document: "see ![x](x.png) here",
			want:     `<div><p>see <img src="x.png" alt="x"/> here</p></div>`,
		},
		{
			name:      "unterminated marker",
			document:  "a *b",
			want:      "<div><p>a *b</p></div>",
			wantWarns: 1,
		},
		{
			name:     "document order preserved",
			document: "# A\n\n## B\n\ntext\n\n- item",
			want:     "<div><h1>A</h1><h2>B</h2><p>text</p><ul><li>item</li></ul></div>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, warns := render(t, tt.document)
			if got != tt.want {
				t.Errorf("render(%q) =\n  %q\nwant\n  %q", tt.document, got, tt.want)
			}
			if len(warns) != tt.wantWarns {
				t.Errorf("got %d warnings, want %d: %v", len(warns), tt.wantWarns, warns)
			}
		})
	}
}

func TestCompile_RootIsDiv(t *testing.T) {
	t.Parallel()

	root, _ := ToHTMLNode("one\n\ntwo\n\nthree")
	if root.Tag != RootTag {
		t.Errorf("root tag = %q, want %q", root.Tag, RootTag)
	}
	if len(root.Children) != 3 {
		t.Errorf("root has %d children, want 3", len(root.Children))
	}
}

func TestCompile_EmptyListOmitted(t *testing.T) {
	t.Parallel()

	root, warns := Compile([]Block{
		{Text: "- ", Kind: BlockKind{Type: BlockUnorderedList}},
	})
	if len(root.Children) != 0 {
		t.Fatalf("root has %d children, want 0", len(root.Children))
	}
	if len(warns) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warns), warns)
	}
	if !strings.Contains(warns[1].Message, "<ul> has no items") {
		t.Errorf("warning = %q", warns[1])
	}

	// A document without any element cannot be rendered.
	if _, err := root.Render(); !errors.Is(err, htmltree.ErrStructural) {
		t.Errorf("Render() error = %v, want ErrStructural", err)
	}
}

func TestCompile_OrderedListSkipsEmptyItems(t *testing.T) {
	t.Parallel()

	root, warns := Compile([]Block{
		{Text: "1. a\n2. \n3", Kind: BlockKind{Type: BlockOrderedList}},
	})
	got, err := root.Render()
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if got != "<div><ol><li>a</li></ol></div>" {
		t.Errorf("Render() = %q", got)
	}
	if len(warns) != 2 {
		t.Errorf("got %d warnings, want 2: %v", len(warns), warns)
	}
	for _, w := range warns {
		if w.Block != 1 {
			t.Errorf("warning block = %d, want 1", w.Block)
		}
	}
}

func TestCompile_EmptyDocument(t *testing.T) {
	t.Parallel()

	root, warns := ToHTMLNode("")
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
	if _, err := root.Render(); !errors.Is(err, htmltree.ErrStructural) {
		t.Errorf("Render() error = %v, want ErrStructural", err)
	}
}

func TestInlineTexts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block string
		kind  BlockKind
		want  []string
	}{
		{"paragraph lines joined", "one\ntwo", BlockKind{Type: BlockParagraph}, []string{"one two"}},
		{"heading keeps trailing space", "##  Title ", BlockKind{Type: BlockHeading, Level: 2}, []string{"Title "}},
		{"quote markers stripped", "> a\n>b\n  >  c", BlockKind{Type: BlockQuote}, []string{"a\nb\nc"}},
		{"unordered items", "- one\n- \n- two", BlockKind{Type: BlockUnorderedList}, []string{"one", "two"}},
		{"ordered items", "1. one\n2. \n3. two", BlockKind{Type: BlockOrderedList}, []string{"one", "two"}},
		{"code block", "```\nx\n```", BlockKind{Type: BlockCode}, nil},
		{"image block", "![a](b)", BlockKind{Type: BlockImage}, nil},
		{"link block", "[a](b)", BlockKind{Type: BlockLink}, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := Block{Text: tt.block, Kind: tt.kind}
			if diff := cmp.Diff(tt.want, InlineTexts(b)); diff != "" {
				t.Errorf("InlineTexts(%q) mismatch (-want +got):\n%s", tt.block, diff)
			}
		})
	}
}
