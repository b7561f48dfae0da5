package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// BlockType is the structural kind of a block.
type BlockType int

// Block types.
const (
	BlockParagraph BlockType = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
	BlockImage
	BlockLink
)

var blockTypeNames = [...]string{
	BlockParagraph:     "paragraph",
	BlockHeading:       "heading",
	BlockCode:          "code",
	BlockQuote:         "quote",
	BlockUnorderedList: "unordered_list",
	BlockOrderedList:   "ordered_list",
	BlockImage:         "image",
	BlockLink:          "link",
}

func (t BlockType) String() string {
	if t < 0 || int(t) >= len(blockTypeNames) {
		return fmt.Sprintf("BlockType(%d)", int(t))
	}
	return blockTypeNames[t]
}

// BlockKind is a block classification. Level is set for headings only.
type BlockKind struct {
	Type  BlockType
	Level int
}

func (k BlockKind) String() string {
	if k.Type == BlockHeading {
		return fmt.Sprintf("heading(%d)", k.Level)
	}
	return k.Type.String()
}

// Block is a classified run of non-blank lines.
type Block struct {
	Text string
	Kind BlockKind
}

const (
	codeFence       = "```"
	maxHeadingLevel = 6
)

var (
	blankLines      = regexp.MustCompile(`\n{2,}`)
	orderedListItem = regexp.MustCompile(`^\d+\. `)
)

// Segment splits a document into blocks on blank lines. Blocks are trimmed
// and empty blocks are dropped.
func Segment(document string) []string {
	var blocks []string
	for _, candidate := range blankLines.Split(document, -1) {
		if b := strings.TrimSpace(candidate); b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Classify returns the kind of a single block. Anything unrecognized is a
// paragraph.
func Classify(block string) BlockKind {
	if level := headingLevel(block); level > 0 {
		return BlockKind{Type: BlockHeading, Level: level}
	}

	if len(block) > 2*len(codeFence) &&
		strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence) {
		return BlockKind{Type: BlockCode}
	}

	lines := strings.Split(block, "\n")
	switch {
	case allLines(lines, func(l string) bool { return strings.HasPrefix(strings.TrimLeft(l, " \t"), ">") }):
		return BlockKind{Type: BlockQuote}
	case allLines(lines, func(l string) bool { return strings.HasPrefix(l, "- ") }):
		return BlockKind{Type: BlockUnorderedList}
	case allLines(lines, orderedListItem.MatchString):
		return BlockKind{Type: BlockOrderedList}
	case strings.HasPrefix(block, "!["):
		return BlockKind{Type: BlockImage}
	case strings.HasPrefix(block, "[") && strings.HasSuffix(block, ")"):
		return BlockKind{Type: BlockLink}
	}
	return BlockKind{Type: BlockParagraph}
}

// Blocks segments and classifies a document.
func Blocks(document string) []Block {
	raw := Segment(document)
	blocks := make([]Block, 0, len(raw))
	for _, b := range raw {
		blocks = append(blocks, Block{Text: b, Kind: Classify(b)})
	}
	return blocks
}

// headingLevel returns 1-6 for a heading block and 0 otherwise.
func headingLevel(block string) int {
	n := 0
	for n < len(block) && block[n] == '#' {
		n++
	}
	if n == 0 || n > maxHeadingLevel || n >= len(block) || block[n] != ' ' {
		return 0
	}
	return n
}

func allLines(lines []string, match func(string) bool) bool {
	for _, l := range lines {
		if !match(l) {
			return false
		}
	}
	return true
}
