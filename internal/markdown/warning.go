package markdown

import "fmt"

// Warning describes input that was recovered instead of rejected.
// Block is the 1-based index of the block in the document, or 0 when the
// warning was produced outside of block compilation.
type Warning struct {
	Block   int
	Message string
}

func (w Warning) String() string {
	if w.Block <= 0 {
		return w.Message
	}
	return fmt.Sprintf("block %d: %s", w.Block, w.Message)
}

// warnings collects recoveries for the block currently being compiled.
// A nil collector discards everything.
type warnings struct {
	block int
	list  []Warning
}

func (w *warnings) add(format string, args ...any) {
	if w == nil {
		return
	}
	w.list = append(w.list, Warning{Block: w.block, Message: fmt.Sprintf(format, args...)})
}
