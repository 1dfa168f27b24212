// Package docfile implements the converter's document container on top of
// go-docx, with optional pre-loading of a BHK style template.
package docfile

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/docgen/internal/convert"
	"github.com/fumiama/go-docx"
)

// Document wraps a go-docx file and tracks which paragraph styles the
// underlying file actually defines, so style requests can degrade instead
// of producing a broken reference.
type Document struct {
	w      *docx.Docx
	styles map[string]struct{}
}

// New creates an empty document with the library's default theme. Only the
// default body style is known to exist.
func New() *Document {
	return &Document{
		w:      docx.New().WithDefaultTheme(),
		styles: map[string]struct{}{convert.StyleNormal: {}},
	}
}

// Open loads a template file, typically one carrying the BHK_Standard
// style definition.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat template: %w", err)
	}

	w, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	styles, err := readStyleIDs(path)
	if err != nil {
		// Template is usable even when the style table cannot be read;
		// every style request will then degrade to unstyled.
		styles = map[string]struct{}{}
	}

	return &Document{w: w, styles: styles}, nil
}

// AddParagraph appends a paragraph to the document body.
func (d *Document) AddParagraph() convert.Paragraph {
	return &Paragraph{doc: d, x: d.w.AddParagraph()}
}

// SaveTo writes the document to path. The marshaled archive is rewritten
// on the way out to turn the spacing sentinels left by SetSpaceAfter into
// real after-spacing attributes.
func (d *Document) SaveTo(path string) error {
	var buf bytes.Buffer
	if _, err := d.w.WriteTo(&buf); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}

	out, err := rewriteSpacingAfter(buf.Bytes())
	if err != nil {
		return fmt.Errorf("rewrite spacing: %w", err)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("create docx: %w", err)
	}
	return nil
}

// Paragraph adapts a go-docx paragraph to convert.Paragraph.
type Paragraph struct {
	doc  *Document
	x    *docx.Paragraph
	runs []convert.Run
}

func (p *Paragraph) AddRun(text string) convert.Run {
	r := &Run{x: p.x.AddText(text)}
	p.runs = append(p.runs, r)
	return r
}

func (p *Paragraph) Runs() []convert.Run {
	return p.runs
}

func (p *Paragraph) SetStyle(name string) error {
	if _, ok := p.doc.styles[name]; !ok {
		return fmt.Errorf("style %q: %w", name, convert.ErrStyleNotFound)
	}
	p.props().Style = &docx.Style{Val: name}
	return nil
}

func (p *Paragraph) SetSpaceAfter(points int) {
	// w:spacing is measured in twentieths of a point. go-docx's Spacing
	// struct has no after field, so the value rides in Val as a sentinel
	// until SaveTo rewrites the attribute name.
	p.props().Spacing = &docx.Spacing{Val: points * 20}
}

func (p *Paragraph) SetLeftIndent(inches float64) {
	// w:ind is measured in twips.
	p.props().Ind = &docx.Ind{Left: int(inches * 1440)}
}

func (p *Paragraph) props() *docx.ParagraphProperties {
	if p.x.Properties == nil {
		p.x.Properties = &docx.ParagraphProperties{}
	}
	return p.x.Properties
}

// Run adapts a go-docx run. Attributes are additive, matching the
// converter's flat formatting model.
type Run struct {
	x *docx.Run
}

func (r *Run) Bold() { r.x.Bold() }

func (r *Run) Italic() { r.x.Italic() }

func (r *Run) Underline() { r.x.Underline("single") }

func (r *Run) Font(name string) { r.x.Font(name, name, name, "") }

const documentPart = "word/document.xml"

var (
	spacingSentinel = []byte(`<w:spacing w:val="`)
	spacingAfter    = []byte(`<w:spacing w:after="`)
)

// rewriteSpacingAfter renames the val attribute of every spacing element
// in word/document.xml to after. Paragraph spacing has no val attribute
// in WordprocessingML, so only sentinels written by SetSpaceAfter match;
// spacing carried over from a template is left alone.
func rewriteSpacingAfter(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range zr.File {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, err
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		part, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		if f.Name == documentPart {
			part = bytes.ReplaceAll(part, spacingSentinel, spacingAfter)
		}
		if _, err := w.Write(part); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
