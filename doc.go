// Package mdsite converts a restricted Markdown dialect to HTML pages for
// static sites.
//
// # Quick Start
//
// Create a converter once and convert any number of documents with it:
//
//	conv, err := mdsite.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdsite.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", result.HTML, 0644)
//
// The result holds the page title, the rendered body element (result.Body),
// the full page (result.HTML) and any warnings about input that was
// recovered rather than rejected.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Source normalization (line endings, blank lines)
//  2. Title extraction from the first "# " line
//  3. Block segmentation, classification and compilation to an element tree
//  4. Optional syntax highlighting of code blocks (chroma)
//  5. Template substitution of {{ Title }} and {{ Content }}
//  6. Stylesheet injection and base path rewriting
//
// # Supported Markdown
//
// Blocks are separated by blank lines. A block is a heading ("# " to
// "###### "), a fenced code block, a quote (every line starts with ">"), an
// unordered list ("- "), an ordered list ("1. "), a standalone image or link,
// or a paragraph. Inline markup covers **bold**, __bold__, *italic*,
// _italic_, `code`, [links](url) and ![images](src). There is no nesting and
// no escaping: text is inserted verbatim.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := mdsite.NewConverter(
//	    mdsite.WithTemplateName("bare"),
//	    mdsite.WithAssetPath("/path/to/custom/assets"),
//	    mdsite.WithBasePath("/docs"),
//	    mdsite.WithHighlightStyle("monokai"),
//	)
//
// # Concurrency
//
// A Converter is immutable after construction and safe for concurrent use.
//
// # Error Handling
//
// Errors are wrapped sentinels; test them with errors.Is:
//
//	if errors.Is(err, mdsite.ErrTitleNotFound) {
//	    // page has no "# " line
//	}
package mdsite
