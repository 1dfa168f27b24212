// Package convert turns Markdown (or plain) text into flat BHK-styled
// document paragraphs.
//
// Hierarchical Markdown constructs are flattened onto a single paragraph
// style: headings become bold paragraphs, lists become paragraphs with
// manual bullet or number markers, nesting becomes indentation. The
// converter never fails: a broken structural parse degrades to a
// line-based converter, a missing style degrades along a fixed candidate
// chain, and the caller always receives a populated document.
package convert

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dgallion1/docgen/internal/mdast"
)

// ParseFunc is the structural Markdown parser capability. A nil ParseFunc
// means no structural parser is available and every conversion uses the
// line-based fallback.
type ParseFunc func(src string) ([]mdast.Node, error)

// Converter converts one text per call. It holds no per-call state, so a
// single Converter is safe for concurrent use.
type Converter struct {
	parse ParseFunc
	log   *slog.Logger

	warnNoParser sync.Once
}

// New creates a Converter. Pass mdast.Parse as the ParseFunc for structural
// conversion, or nil to force the fallback path.
func New(parse ParseFunc, log *slog.Logger) *Converter {
	if log == nil {
		log = slog.Default()
	}
	return &Converter{parse: parse, log: log}
}

// Convert populates doc from Markdown text. It does not return an error:
// parse failures fall back to line-based conversion and style problems
// degrade inside the style chain.
func (c *Converter) Convert(doc Document, text string) {
	if c.parse == nil {
		c.warnNoParser.Do(func() {
			c.log.Warn("no markdown parser available, using line converter")
		})
		c.convertLines(doc, text)
		return
	}

	nodes, err := c.parse(text)
	if err != nil {
		c.log.Warn("markdown parse failed, using line converter", "error", err)
		c.convertLines(doc, text)
		return
	}

	if !c.walkBlocks(doc, nodes) {
		c.convertLines(doc, text)
	}
}

// walkBlocks emits one paragraph per visible block node. It reports false
// when the walk panicked, so Convert can retry with the line converter.
func (c *Converter) walkBlocks(doc Document, nodes []mdast.Node) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Warn("structural conversion failed, using line converter", "error", fmt.Sprint(r))
			ok = false
		}
	}()

	for _, n := range nodes {
		switch n := n.(type) {
		case *mdast.Heading:
			c.emitHeading(doc, n)
		case *mdast.Paragraph:
			c.emitParagraph(doc, n)
		case *mdast.List:
			c.emitList(doc, n, 0)
		case *mdast.ThematicBreak:
			// Separators produce no output.
		case *mdast.CodeBlock:
			c.emitCodeBlock(doc, n)
		default:
			c.log.Debug("skipping unhandled block node", "kind", mdast.Kind(n))
		}
	}
	return true
}

// emitHeading renders a heading of any level as a single bold paragraph.
// The level itself is discarded: BHK documents have no heading hierarchy.
func (c *Converter) emitHeading(doc Document, h *mdast.Heading) {
	p := doc.AddParagraph()
	c.applyInline(p, h.Children)
	for _, r := range p.Runs() {
		r.Bold()
	}
	c.applyStyle(p)
	p.SetSpaceAfter(headingSpaceAfterPts)
}

func (c *Converter) emitParagraph(doc Document, node *mdast.Paragraph) {
	if strings.TrimSpace(mdast.PlainText(node.Children)) == "" {
		return
	}
	p := doc.AddParagraph()
	c.applyInline(p, node.Children)
	c.applyStyle(p)
}

func (c *Converter) emitCodeBlock(doc Document, node *mdast.CodeBlock) {
	p := doc.AddParagraph()
	p.AddRun(node.Raw)
	c.applyStyle(p)
	for _, r := range p.Runs() {
		r.Font(MonospaceFont)
	}
}

// emitList renders list items as sibling paragraphs with manual markers.
// Ordered markers are regenerated from item position; numerals already in
// the source text stay literal, so "1. 1. Foo" can occur. Nested lists
// recurse as independent paragraphs indented by depth.
func (c *Converter) emitList(doc Document, list *mdast.List, depth int) {
	for idx, item := range list.Items {
		p := doc.AddParagraph()

		if list.Ordered {
			p.AddRun(fmt.Sprintf("%d. ", idx+1))
		} else {
			p.AddRun("• ")
		}

		for _, child := range item.Children {
			switch child := child.(type) {
			case *mdast.List:
				c.emitList(doc, child, depth+1)
			case *mdast.Paragraph:
				c.applyInline(p, child.Children)
			default:
				c.applyInline(p, []mdast.Node{child})
			}
		}

		c.applyStyle(p)
		if depth > 0 {
			p.SetLeftIndent(indentPerDepthInches * float64(depth))
		}
	}
}

const (
	headingSpaceAfterPts = 6
	indentPerDepthInches = 0.25
)

// styleCandidates is the degradation chain for paragraph styles.
var styleCandidates = []string{StyleBHKStandard, StyleNormal}

// applyStyle tries each style candidate in order and returns the name of
// the first one that applied, or "" when the paragraph stays unstyled.
// It never fails.
func (c *Converter) applyStyle(p Paragraph) string {
	for _, name := range styleCandidates {
		if err := p.SetStyle(name); err == nil {
			return name
		}
	}
	c.log.Debug("no paragraph style available, leaving unstyled")
	return ""
}

// ConvertPlain is the legacy non-Markdown mode: the first short line
// becomes a bold title paragraph, the rest splits on blank lines into
// plain paragraphs.
func (c *Converter) ConvertPlain(doc Document, text string) {
	lines := strings.Split(text, "\n")
	body := text
	if len(lines) > 0 && lines[0] != "" && len(lines[0]) < 100 && !strings.HasPrefix(lines[0], " ") {
		p := doc.AddParagraph()
		p.AddRun(lines[0]).Bold()
		c.applyStyle(p)
		p.SetSpaceAfter(headingSpaceAfterPts)
		body = strings.Join(lines[1:], "\n")
	}

	for _, block := range strings.Split(body, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		p := doc.AddParagraph()
		p.AddRun(block)
		c.applyStyle(p)
	}
}
