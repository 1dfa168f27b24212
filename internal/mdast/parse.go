package mdast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// Parse converts Markdown source into the mdast node model using goldmark.
// A panic inside goldmark or the conversion is returned as an error so the
// caller can switch to the line-based fallback.
func Parse(src string) (nodes []Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			nodes = nil
			err = fmt.Errorf("markdown parse: %v", r)
		}
	}()

	source := []byte(src)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if b := fromBlock(n, source); b != nil {
			nodes = append(nodes, b)
		}
	}
	return nodes, nil
}

func fromBlock(n ast.Node, source []byte) Node {
	switch n := n.(type) {
	case *ast.Heading:
		return &Heading{Level: n.Level, Children: fromInlines(n, source)}

	case *ast.Paragraph:
		return &Paragraph{Children: fromInlines(n, source)}

	case *ast.TextBlock:
		// Tight list items carry their content in a TextBlock.
		return &Paragraph{Children: fromInlines(n, source)}

	case *ast.List:
		list := &List{Ordered: n.IsOrdered()}
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			li := &ListItem{}
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				if b := fromBlock(c, source); b != nil {
					li.Children = append(li.Children, b)
				}
			}
			list.Items = append(list.Items, li)
		}
		return list

	case *ast.ThematicBreak:
		return &ThematicBreak{}

	case *ast.FencedCodeBlock:
		return &CodeBlock{Raw: blockLines(n, source)}

	case *ast.CodeBlock:
		return &CodeBlock{Raw: blockLines(n, source)}

	case *ast.Blockquote:
		bq := &Blockquote{}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if b := fromBlock(c, source); b != nil {
				bq.Children = append(bq.Children, b)
			}
		}
		return bq
	}

	// HTML blocks and anything else goldmark may produce are not part of
	// the model.
	return nil
}

func fromInlines(parent ast.Node, source []byte) []Node {
	var out []Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Text:
			raw := string(n.Segment.Value(source))
			if raw != "" {
				out = append(out, &Text{Raw: raw})
			}
			if n.HardLineBreak() || n.SoftLineBreak() {
				out = append(out, &LineBreak{})
			}

		case *ast.String:
			if len(n.Value) > 0 {
				out = append(out, &Text{Raw: string(n.Value)})
			}

		case *ast.Emphasis:
			children := fromInlines(n, source)
			if n.Level >= 2 {
				out = append(out, &Strong{Children: children})
			} else {
				out = append(out, &Emphasis{Children: children})
			}

		case *ast.CodeSpan:
			out = append(out, &CodeSpan{Raw: inlineText(n, source)})

		case *ast.Link:
			out = append(out, &Link{
				URL:      string(n.Destination),
				Children: fromInlines(n, source),
			})

		case *ast.AutoLink:
			url := string(n.URL(source))
			out = append(out, &Link{
				URL:      url,
				Children: []Node{&Text{Raw: string(n.Label(source))}},
			})

		case *ast.RawHTML:
			var buf bytes.Buffer
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				buf.Write(seg.Value(source))
			}
			if t := stripTags(buf.String()); t != "" {
				out = append(out, &InlineHTML{Raw: t})
			}

		default:
			// Images and other inline kinds degrade to their text content.
			if t := inlineText(n, source); t != "" {
				out = append(out, &Text{Raw: t})
			}
		}
	}
	return out
}

// inlineText collects the literal text beneath an inline node.
func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			buf.Write(c.Segment.Value(source))
		case *ast.String:
			buf.Write(c.Value)
		default:
			buf.WriteString(inlineText(c, source))
		}
	}
	return buf.String()
}

// blockLines returns the raw source lines of a block node.
func blockLines(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

// stripTags reduces an HTML fragment to its visible text.
func stripTags(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)
	return strings.TrimSpace(buf.String())
}
