package convert

import "errors"

// ErrStyleNotFound is returned by Paragraph.SetStyle when the requested
// style is not defined in the underlying document.
var ErrStyleNotFound = errors.New("style not found")

// Style names tried on every emitted paragraph, in order.
const (
	StyleBHKStandard = "BHK_Standard"
	StyleNormal      = "Normal"
)

// MonospaceFont is applied to code spans and code blocks.
const MonospaceFont = "Courier New"

// Document is the output container the converter populates. Implementations
// append paragraphs in call order and own persistence.
type Document interface {
	AddParagraph() Paragraph
}

// Paragraph is one output paragraph under construction.
type Paragraph interface {
	// AddRun appends a run of literal text and returns it for styling.
	AddRun(text string) Run
	// Runs returns the runs appended so far, in order.
	Runs() []Run
	// SetStyle requests a named paragraph style. Returns ErrStyleNotFound
	// (possibly wrapped) when the style is absent.
	SetStyle(name string) error
	// SetSpaceAfter sets trailing spacing in points.
	SetSpaceAfter(points int)
	// SetLeftIndent sets the left indent in inches.
	SetLeftIndent(inches float64)
}

// Run is a span of text with additive formatting attributes. The setters
// only ever add an attribute; runs are never un-bolded or nested.
type Run interface {
	Bold()
	Italic()
	Underline()
	Font(name string)
}
