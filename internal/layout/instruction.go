package layout

// Kind identifies a draw instruction
type Kind int

const (
	KindNewPage Kind = iota
	KindText
	KindCell
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindNewPage:
		return "new_page"
	case KindText:
		return "text"
	case KindCell:
		return "cell"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// Align is a horizontal alignment, using the same letters as the PDF backend
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Instruction is one drawing step.
//
// Text and cell instructions use the box (X, Y, W, H); Lines holds the
// already wrapped text of a cell, vertically centered in the box.
// Line instructions run from (X, Y) to (X2, Y2).
type Instruction struct {
	Kind      Kind
	X, Y      float64
	W, H      float64
	X2, Y2    float64
	Text      string
	Lines     []string
	Align     Align
	FontSize  float64
	Leading   float64
	LineWidth float64
	Padding   float64
	Header    bool
}
