package convert

// In-memory Document implementation used across the converter tests. It
// records exactly what the converter asked for, including which style was
// applied and the paragraph format overrides.

type memDoc struct {
	styles map[string]bool
	paras  []*memPara
}

// newMemDoc creates a document that only knows the given style names.
func newMemDoc(styles ...string) *memDoc {
	d := &memDoc{styles: make(map[string]bool)}
	for _, s := range styles {
		d.styles[s] = true
	}
	return d
}

func (d *memDoc) AddParagraph() Paragraph {
	p := &memPara{doc: d}
	d.paras = append(d.paras, p)
	return p
}

type memPara struct {
	doc        *memDoc
	runs       []*memRun
	style      string
	spaceAfter int
	leftIndent float64
}

func (p *memPara) AddRun(text string) Run {
	r := &memRun{text: text}
	p.runs = append(p.runs, r)
	return r
}

func (p *memPara) Runs() []Run {
	out := make([]Run, len(p.runs))
	for i, r := range p.runs {
		out[i] = r
	}
	return out
}

func (p *memPara) SetStyle(name string) error {
	if !p.doc.styles[name] {
		return ErrStyleNotFound
	}
	p.style = name
	return nil
}

func (p *memPara) SetSpaceAfter(points int) { p.spaceAfter = points }

func (p *memPara) SetLeftIndent(inches float64) { p.leftIndent = inches }

// text concatenates the paragraph's run texts.
func (p *memPara) text() string {
	var s string
	for _, r := range p.runs {
		s += r.text
	}
	return s
}

type memRun struct {
	text      string
	bold      bool
	italic    bool
	underline bool
	font      string
}

func (r *memRun) Bold() { r.bold = true }

func (r *memRun) Italic() { r.italic = true }

func (r *memRun) Underline() { r.underline = true }

func (r *memRun) Font(name string) { r.font = name }
