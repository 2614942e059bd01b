package layout

import (
	"vocabquiz/internal/domain"
)

// Measurer wraps text to a width. The PDF renderer implements it with real font metrics.
type Measurer interface {
	SplitLines(text string, width, fontSize float64) []string
}

// Page is the page geometry in points
type Page struct {
	Width  float64
	Height float64
	Margin float64
}

// A4 is the page used for quiz documents
var A4 = Page{Width: 595.28, Height: 841.89, Margin: 16}

// Options controls the table layout
type Options struct {
	Page    Page
	Columns int
	// Widths of the id, term and meaning fields of one logical column
	Widths [FieldsPerRow]float64
	// Labels of the id, term and meaning header cells
	Labels     [FieldsPerRow]string
	Padding    float64
	LineHeight float64

	TitleSize  float64
	ScoreSize  float64
	HeaderSize float64

	HeaderDividerWidth     float64
	HorizontalDividerWidth float64
	VerticalDividerWidth   float64
}

// DefaultOptions returns the quiz sheet layout
func DefaultOptions() Options {
	return Options{
		Page:                   A4,
		Columns:                2,
		Widths:                 [FieldsPerRow]float64{30, 100, 150},
		Labels:                 [FieldsPerRow]string{"番号", "英単語", "意味"},
		Padding:                4,
		LineHeight:             1.2,
		TitleSize:              16,
		ScoreSize:              12,
		HeaderSize:             10,
		HeaderDividerWidth:     1,
		HorizontalDividerWidth: 0.5,
		VerticalDividerWidth:   0.5,
	}
}

// Paginator lays quiz sections out on pages
type Paginator struct {
	opts     Options
	measurer Measurer
}

// NewPaginator creates a paginator. A nil measurer keeps every cell on one line.
func NewPaginator(opts Options, measurer Measurer) *Paginator {
	if opts.Columns < 1 {
		opts.Columns = 1
	}
	return &Paginator{opts: opts, measurer: measurer}
}

// layoutState tracks the cursor while instructions are emitted
type layoutState struct {
	out []Instruction
	y   float64
}

func (s *layoutState) emit(in Instruction) {
	s.out = append(s.out, in)
}

// Layout returns the draw instructions for the whole quiz.
// The renderer starts on a fresh page; a new page is emitted before every
// section after the first.
func (p *Paginator) Layout(q *domain.Quiz) []Instruction {
	st := &layoutState{y: p.opts.Page.Margin}

	for i, section := range q.Sections {
		if i > 0 {
			p.newPage(st)
		}
		p.heading(st, q.Title, section)
		p.table(st, section)
	}

	return st.out
}

func (p *Paginator) newPage(st *layoutState) {
	st.emit(Instruction{Kind: KindNewPage})
	st.y = p.opts.Page.Margin
}

func (p *Paginator) contentWidth() float64 {
	return p.opts.Page.Width - 2*p.opts.Page.Margin
}

func (p *Paginator) tableWidth() float64 {
	var w float64
	for _, fw := range p.opts.Widths {
		w += fw
	}
	return w * float64(p.opts.Columns)
}

func (p *Paginator) lineHeight(size float64) float64 {
	return size * p.opts.LineHeight
}

func (p *Paginator) bottom() float64 {
	return p.opts.Page.Height - p.opts.Page.Margin
}

// heading emits a blank line, the centered title and the right-aligned score
func (p *Paginator) heading(st *layoutState, title string, section domain.Section) {
	x := p.opts.Page.Margin
	w := p.contentWidth()

	st.y += p.lineHeight(p.opts.TitleSize)
	h := p.lineHeight(p.opts.TitleSize)
	st.emit(Instruction{
		Kind:     KindText,
		X:        x,
		Y:        st.y,
		W:        w,
		H:        h,
		Text:     title + "【" + section.Kind.Label() + "】",
		Align:    AlignCenter,
		FontSize: p.opts.TitleSize,
		Leading:  h,
	})
	st.y += h

	h = p.lineHeight(p.opts.ScoreSize)
	st.emit(Instruction{
		Kind:     KindText,
		X:        x,
		Y:        st.y,
		W:        w,
		H:        h,
		Text:     section.ScoreLine(),
		Align:    AlignRight,
		FontSize: p.opts.ScoreSize,
		Leading:  h,
	})
	st.y += h
}

func (p *Paginator) aligns(kind domain.SectionKind) [FieldsPerRow]Align {
	term := AlignCenter
	if kind == domain.SectionNativeToTrans {
		term = AlignLeft
	}
	return [FieldsPerRow]Align{AlignRight, term, AlignLeft}
}

func (p *Paginator) table(st *layoutState, section domain.Section) {
	aligns := p.aligns(section.Kind)
	p.tableHeader(st, aligns)

	minHeight := RowHeight(len(section.Rows), p.opts.Columns)
	for i, row := range MergeRows(section.Rows, p.opts.Columns) {
		size := FontSize(i)
		lines := p.wrapRow(row, size)
		h := p.cellHeight(lines, size, minHeight)

		if st.y+h > p.bottom() {
			p.newPage(st)
			p.tableHeader(st, aligns)
		}

		p.cells(st, lines, aligns, size, h, false)
		p.verticalDividers(st, i == 0, h)
		st.y += h
		p.horizontalDivider(st, p.opts.HorizontalDividerWidth)
	}
}

func (p *Paginator) tableHeader(st *layoutState, aligns [FieldsPerRow]Align) {
	size := p.opts.HeaderSize
	labels := make(PhysicalRow, 0, FieldsPerRow*p.opts.Columns)
	for c := 0; c < p.opts.Columns; c++ {
		labels = append(labels, p.opts.Labels[:]...)
	}

	lines := p.wrapRow(labels, size)
	h := p.cellHeight(lines, size, 0)

	p.horizontalDivider(st, p.opts.HeaderDividerWidth)
	p.cells(st, lines, aligns, size, h, true)
	st.y += h
	p.horizontalDivider(st, p.opts.HeaderDividerWidth)
}

func (p *Paginator) wrapRow(row PhysicalRow, size float64) [][]string {
	lines := make([][]string, len(row))
	for j, text := range row {
		width := p.opts.Widths[j%FieldsPerRow] - 2*p.opts.Padding
		if p.measurer == nil || text == "" {
			lines[j] = []string{text}
			continue
		}
		lines[j] = p.measurer.SplitLines(text, width, size)
	}
	return lines
}

func (p *Paginator) cellHeight(lines [][]string, size, minHeight float64) float64 {
	n := 1
	for _, l := range lines {
		if len(l) > n {
			n = len(l)
		}
	}
	h := float64(n)*p.lineHeight(size) + 2*p.opts.Padding
	if h < minHeight {
		return minHeight
	}
	return h
}

func (p *Paginator) cells(st *layoutState, lines [][]string, aligns [FieldsPerRow]Align, size, h float64, header bool) {
	x := p.opts.Page.Margin
	for j, l := range lines {
		w := p.opts.Widths[j%FieldsPerRow]
		st.emit(Instruction{
			Kind:     KindCell,
			X:        x,
			Y:        st.y,
			W:        w,
			H:        h,
			Lines:    l,
			Align:    aligns[j%FieldsPerRow],
			FontSize: size,
			Leading:  p.lineHeight(size),
			Padding:  p.opts.Padding,
			Header:   header,
		})
		x += w
	}
}

// verticalDividers draws the column boundary on every row and the table
// edges on the first row only.
func (p *Paginator) verticalDividers(st *layoutState, first bool, h float64) {
	left := p.opts.Page.Margin
	width := p.tableWidth()

	xs := []float64{left + width/2}
	if first {
		xs = []float64{left, left + width/2, left + width}
	}

	for _, x := range xs {
		st.emit(Instruction{
			Kind:      KindLine,
			X:         x,
			Y:         st.y,
			X2:        x,
			Y2:        st.y + h,
			LineWidth: p.opts.VerticalDividerWidth,
		})
	}
}

func (p *Paginator) horizontalDivider(st *layoutState, width float64) {
	left := p.opts.Page.Margin
	st.emit(Instruction{
		Kind:      KindLine,
		X:         left,
		Y:         st.y,
		X2:        left + p.tableWidth(),
		Y2:        st.y,
		LineWidth: width,
	})
}
