package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ErrInvalidBasePath indicates a base path that is not an absolute URL path.
var ErrInvalidBasePath = errors.New("invalid base path")

// rewrittenAttrs lists, per element, the attributes holding site URLs.
var rewrittenAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"source": "src",
}

// NormalizeBasePath validates a deployment base path and returns it without
// trailing slash. "" and "/" both mean the site is served from the root and
// normalize to "".
func NormalizeBasePath(basePath string) (string, error) {
	if basePath == "" || basePath == "/" {
		return "", nil
	}
	if !strings.HasPrefix(basePath, "/") || strings.HasPrefix(basePath, "//") {
		return "", fmt.Errorf("%w: %q must start with a single /", ErrInvalidBasePath, basePath)
	}
	if strings.ContainsAny(basePath, " \t\n\"'<>?#") {
		return "", fmt.Errorf("%w: %q contains invalid characters", ErrInvalidBasePath, basePath)
	}
	return strings.TrimRight(basePath, "/"), nil
}

// RewriteBasePath prefixes root-relative URLs with basePath so that a site
// built for "/" can be served from a sub-path such as "/docs".
// basePath must already be normalized; an empty basePath returns the HTML
// unchanged.
//
// Rewrites href on a and link, src on img, script and source, when the value
// starts with a single "/". Relative paths, anchors, protocol-relative and
// absolute URLs are left alone.
func RewriteBasePath(htmlContent, basePath string) (string, error) {
	if basePath == "" {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, basePath)

	return renderHTML(doc, isFragment)
}

// rewriteNode traverses the DOM and rewrites root-relative paths.
func rewriteNode(n *html.Node, basePath string) {
	if n.Type == html.ElementNode {
		if attrName, ok := rewrittenAttrs[n.Data]; ok {
			rewriteAttr(n, attrName, basePath)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, basePath)
	}
}

// rewriteAttr rewrites a single attribute if it is root-relative.
func rewriteAttr(n *html.Node, attrName, basePath string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRootRelative(attr.Val) {
			continue
		}
		n.Attr[i].Val = basePath + attr.Val
	}
}

// isRootRelative returns true for "/path" but not for "//host/path".
func isRootRelative(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//")
}
