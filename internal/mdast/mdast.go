// Package mdast defines a small, closed Markdown node model.
//
// The model is the contract between the structural parser (goldmark) and
// the document converter: each node kind carries only the fields valid for
// that kind, so a text node can never hold list attributes and vice versa.
package mdast

import "strings"

// Node is a Markdown AST node. The set of implementations is closed:
// block kinds (Heading, Paragraph, List, ListItem, ThematicBreak,
// CodeBlock, Blockquote) appear at the top level or inside a ListItem,
// inline kinds (Text, Strong, Emphasis, CodeSpan, Link, LineBreak,
// InlineHTML) only inside a block's children.
type Node interface {
	node()
}

// Heading is a # .. ###### heading. Level is 1-6.
type Heading struct {
	Level    int
	Children []Node
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Children []Node
}

// List is an ordered or unordered list of items.
type List struct {
	Ordered bool
	Items   []*ListItem
}

// ListItem holds the blocks of one list item, including nested lists.
type ListItem struct {
	Children []Node
}

// ThematicBreak is a ---, *** or ___ separator line.
type ThematicBreak struct{}

// CodeBlock is a fenced or indented code block with its literal text.
type CodeBlock struct {
	Raw string
}

// Blockquote is a > quoted block. The converter does not render it.
type Blockquote struct {
	Children []Node
}

// Text is literal inline text.
type Text struct {
	Raw string
}

// Strong is **bold** content.
type Strong struct {
	Children []Node
}

// Emphasis is *italic* content.
type Emphasis struct {
	Children []Node
}

// CodeSpan is `inline code` with its literal text.
type CodeSpan struct {
	Raw string
}

// Link is [text](url).
type Link struct {
	URL      string
	Children []Node
}

// LineBreak is a line break within a paragraph.
type LineBreak struct{}

// InlineHTML is raw inline HTML reduced to its visible text.
type InlineHTML struct {
	Raw string
}

func (*Heading) node()       {}
func (*Paragraph) node()     {}
func (*List) node()          {}
func (*ListItem) node()      {}
func (*ThematicBreak) node() {}
func (*CodeBlock) node()     {}
func (*Blockquote) node()    {}
func (*Text) node()          {}
func (*Strong) node()        {}
func (*Emphasis) node()      {}
func (*CodeSpan) node()      {}
func (*Link) node()          {}
func (*LineBreak) node()     {}
func (*InlineHTML) node()    {}

// Kind returns a short name for a node, used in logs.
func Kind(n Node) string {
	switch n.(type) {
	case *Heading:
		return "heading"
	case *Paragraph:
		return "paragraph"
	case *List:
		return "list"
	case *ListItem:
		return "list_item"
	case *ThematicBreak:
		return "thematic_break"
	case *CodeBlock:
		return "block_code"
	case *Blockquote:
		return "block_quote"
	case *Text:
		return "text"
	case *Strong:
		return "strong"
	case *Emphasis:
		return "emphasis"
	case *CodeSpan:
		return "codespan"
	case *Link:
		return "link"
	case *LineBreak:
		return "linebreak"
	case *InlineHTML:
		return "inline_html"
	}
	return "unknown"
}

// PlainText extracts the concatenated literal text of a node sequence,
// recursing through children and discarding all formatting.
func PlainText(nodes []Node) string {
	var buf strings.Builder
	writePlainText(&buf, nodes)
	return buf.String()
}

func writePlainText(buf *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Text:
			buf.WriteString(n.Raw)
		case *CodeSpan:
			buf.WriteString(n.Raw)
		case *CodeBlock:
			buf.WriteString(n.Raw)
		case *InlineHTML:
			buf.WriteString(n.Raw)
		case *LineBreak:
			buf.WriteString("\n")
		case *Heading:
			writePlainText(buf, n.Children)
		case *Paragraph:
			writePlainText(buf, n.Children)
		case *Strong:
			writePlainText(buf, n.Children)
		case *Emphasis:
			writePlainText(buf, n.Children)
		case *Link:
			writePlainText(buf, n.Children)
		case *Blockquote:
			writePlainText(buf, n.Children)
		case *ListItem:
			writePlainText(buf, n.Children)
		case *List:
			for _, item := range n.Items {
				writePlainText(buf, item.Children)
			}
		}
	}
}
