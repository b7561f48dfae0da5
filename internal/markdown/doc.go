// Package markdown parses the restricted markdown dialect used for site pages
// into an htmltree.
//
// The pipeline is:
//
//	document -> Segment -> Classify -> Compile -> *htmltree.Container ("div")
//
// Inline content of each block goes through TextToSpans, which first pulls
// out images and links and then runs the marker tokenizer (bold, italic,
// code, link) over the remaining plain text. Emphasis does not nest.
//
// Malformed input never fails: unterminated markers and broken links fall
// back to literal text and empty lists are dropped. Each such recovery is
// reported as a Warning. The only error in the package is ErrTitleNotFound
// from ExtractTitle.
//
// All functions are pure and safe for concurrent use.
package markdown
