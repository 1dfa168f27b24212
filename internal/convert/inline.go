package convert

import (
	"fmt"
	"regexp"

	"github.com/dgallion1/docgen/internal/mdast"
)

// applyInline appends runs for a sequence of inline nodes, in order.
// Formatting is flat: nested formatting inside strong/emphasis collapses
// to plain text carrying only the outer attribute, so bold+italic is not
// representable.
func (c *Converter) applyInline(p Paragraph, nodes []mdast.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *mdast.Text:
			p.AddRun(n.Raw)

		case *mdast.Strong:
			p.AddRun(mdast.PlainText(n.Children)).Bold()

		case *mdast.Emphasis:
			p.AddRun(mdast.PlainText(n.Children)).Italic()

		case *mdast.CodeSpan:
			p.AddRun(n.Raw).Font(MonospaceFont)

		case *mdast.Link:
			// URLs stay visible text, never hyperlink fields.
			text := fmt.Sprintf("%s (%s)", mdast.PlainText(n.Children), n.URL)
			p.AddRun(text).Underline()

		case *mdast.LineBreak:
			p.AddRun("\n")

		default:
			if t := mdast.PlainText([]mdast.Node{n}); t != "" {
				p.AddRun(t)
			}
		}
	}
}

var (
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*|__(.+?)__`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*|_(.+?)_`)
)

// applyInlineFallback is the regex inline pass used by the line converter.
// It repeatedly takes the leftmost bold or italic match (bold wins ties),
// emitting unstyled text before the match and one styled run for the
// captured group. Unterminated markers end up as literal text.
func (c *Converter) applyInlineFallback(p Paragraph, text string) {
	remaining := text
	for remaining != "" {
		bold := boldPattern.FindStringSubmatchIndex(remaining)
		italic := italicPattern.FindStringSubmatchIndex(remaining)

		var match []int
		isBold := false
		switch {
		case bold != nil && (italic == nil || bold[0] <= italic[0]):
			match, isBold = bold, true
		case italic != nil:
			match = italic
		default:
			p.AddRun(remaining)
			return
		}

		if before := remaining[:match[0]]; before != "" {
			p.AddRun(before)
		}

		r := p.AddRun(captured(remaining, match))
		if isBold {
			r.Bold()
		} else {
			r.Italic()
		}

		remaining = remaining[match[1]:]
	}
}

// captured returns whichever alternation group matched.
func captured(s string, match []int) string {
	if match[2] >= 0 {
		return s[match[2]:match[3]]
	}
	return s[match[4]:match[5]]
}
