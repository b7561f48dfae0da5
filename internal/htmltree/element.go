package htmltree

import (
	"fmt"
	"strings"
)

// Element is a node of the output tree.
// The set of implementations is closed: Text, *Leaf and *Container.
type Element interface {
	Render() (string, error)
	element()
}

// voidTags render as <tag attrs/> when they carry no value.
var voidTags = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// IsVoid reports whether tag is rendered self-closing.
func IsVoid(tag string) bool {
	return voidTags[tag]
}

// Text is raw content without a tag.
type Text struct {
	Value string
}

// NewText creates a Text node.
func NewText(value string) Text {
	return Text{Value: value}
}

// Render returns the content verbatim.
func (t Text) Render() (string, error) {
	return t.Value, nil
}

func (Text) element() {}

// Leaf is a childless element. An empty Tag makes it behave like Text.
type Leaf struct {
	Tag   string
	Value string
	Attrs Attrs
}

// NewLeaf creates a Leaf. Attributes can be added with Leaf.Attrs.Set.
func NewLeaf(tag, value string) *Leaf {
	return &Leaf{Tag: tag, Value: value}
}

// Render serializes the leaf.
func (l *Leaf) Render() (string, error) {
	switch {
	case l.Tag == "" && l.Value == "":
		return "", fmt.Errorf("%w: leaf has neither tag nor value", ErrStructural)
	case l.Tag == "":
		return l.Value, nil
	case l.Value == "" && IsVoid(l.Tag):
		return "<" + l.Tag + l.Attrs.String() + "/>", nil
	}
	return "<" + l.Tag + l.Attrs.String() + ">" + l.Value + "</" + l.Tag + ">", nil
}

func (*Leaf) element() {}

// Container is an element with ordered children.
type Container struct {
	Tag      string
	Children []Element
	Attrs    Attrs
}

// NewContainer creates a Container owning children.
func NewContainer(tag string, children ...Element) *Container {
	return &Container{Tag: tag, Children: children}
}

// Append adds children at the end.
func (c *Container) Append(children ...Element) {
	c.Children = append(c.Children, children...)
}

// Render serializes the container and all of its descendants.
func (c *Container) Render() (string, error) {
	var b strings.Builder
	if err := c.writeTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c *Container) writeTo(b *strings.Builder) error {
	if c.Tag == "" {
		return fmt.Errorf("%w: container has no tag", ErrStructural)
	}
	if len(c.Children) == 0 {
		return fmt.Errorf("%w: <%s> has no children", ErrStructural, c.Tag)
	}

	b.WriteString("<" + c.Tag + c.Attrs.String() + ">")
	for _, child := range c.Children {
		if nested, ok := child.(*Container); ok {
			if err := nested.writeTo(b); err != nil {
				return err
			}
			continue
		}
		s, err := child.Render()
		if err != nil {
			return fmt.Errorf("rendering child of <%s>: %w", c.Tag, err)
		}
		b.WriteString(s)
	}
	b.WriteString("</" + c.Tag + ">")
	return nil
}

func (*Container) element() {}
