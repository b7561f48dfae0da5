package htmltree

import "errors"

// ErrStructural indicates a node that cannot be rendered because a required
// part (tag, value or children) is missing. It signals a builder defect.
var ErrStructural = errors.New("malformed element")
