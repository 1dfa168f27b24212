package convert

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	headingLine = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	bulletLine  = regexp.MustCompile(`^\s*[-*+]\s+(.+)$`)
	orderedLine = regexp.MustCompile(`^\s*(\d+)\.\s+(.+)$`)
)

// convertLines is the line-oriented fallback converter. Each line matches
// at most one rule, checked top to bottom: separator, heading, unordered
// item, ordered item, plain paragraph. Blank lines produce nothing, and
// there is no nesting; fallback lists are flat.
func (c *Converter) convertLines(doc Document, text string) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Warn("line conversion failed, emitting plain paragraphs", "error", fmt.Sprint(r))
			c.convertPlainLines(doc, text)
		}
	}()

	for _, line := range strings.Split(text, "\n") {
		switch trimmed := strings.TrimSpace(line); trimmed {
		case "---", "***", "___":
			continue
		case "":
			continue
		}

		if m := headingLine.FindStringSubmatch(line); m != nil {
			p := doc.AddParagraph()
			c.applyInlineFallback(p, m[2])
			for _, r := range p.Runs() {
				r.Bold()
			}
			c.applyStyle(p)
			p.SetSpaceAfter(headingSpaceAfterPts)
			continue
		}

		if m := bulletLine.FindStringSubmatch(line); m != nil {
			p := doc.AddParagraph()
			p.AddRun("• ")
			c.applyInlineFallback(p, m[1])
			c.applyStyle(p)
			continue
		}

		if m := orderedLine.FindStringSubmatch(line); m != nil {
			// Unlike the structural converter, the source numeral is kept.
			p := doc.AddParagraph()
			p.AddRun(m[1] + ". ")
			c.applyInlineFallback(p, m[2])
			c.applyStyle(p)
			continue
		}

		p := doc.AddParagraph()
		c.applyInlineFallback(p, line)
		c.applyStyle(p)
	}
}

// convertPlainLines is the last-resort tier: every non-blank line becomes
// one unstyled paragraph.
func (c *Converter) convertPlainLines(doc Document, text string) {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		doc.AddParagraph().AddRun(line)
	}
}
