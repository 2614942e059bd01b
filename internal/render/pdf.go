// Package render draws laid-out quiz documents.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"vocabquiz/internal/layout"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

const (
	fontFamily   = "quiz"
	fallbackFont = "Helvetica"
)

// PDFRenderer executes layout instructions on an A4 PDF document.
// It also measures text for the paginator, so use one renderer per document.
type PDFRenderer struct {
	pdf       *fpdf.Fpdf
	family    string
	translate func(string) string
	logger    *zap.Logger
}

// NewPDFRenderer creates a renderer using the TTF font at fontPath.
// When the file does not exist the core Helvetica font is used instead,
// which cannot display non-Latin text.
func NewPDFRenderer(fontPath string, page layout.Page, logger *zap.Logger) (*PDFRenderer, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	pdf.SetMargins(page.Margin, page.Margin, page.Margin)
	pdf.SetAutoPageBreak(false, page.Margin)
	pdf.SetCellMargin(0)

	r := &PDFRenderer{
		pdf:       pdf,
		family:    fontFamily,
		translate: func(s string) string { return s },
		logger:    logger,
	}

	if _, err := os.Stat(fontPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat font %s: %w", fontPath, err)
		}
		logger.Warn("Font file not found, falling back to core font",
			zap.String("font_path", fontPath),
			zap.String("fallback", fallbackFont),
		)
		r.family = fallbackFont
		r.translate = pdf.UnicodeTranslatorFromDescriptor("")
	} else {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", fontPath, err)
		}
		pdf.AddUTF8FontFromBytes(fontFamily, "", data)
		r.translate = bmpOnly
	}

	pdf.SetFont(r.family, "", 10)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	return r, nil
}

// SplitLines wraps text to width at the given font size
func (r *PDFRenderer) SplitLines(text string, width, fontSize float64) []string {
	if r.family == fallbackFont {
		return []string{text}
	}

	r.pdf.SetFontSize(fontSize)
	lines := r.pdf.SplitText(bmpOnly(text), width)
	if len(lines) == 0 {
		return []string{text}
	}
	return lines
}

// Render draws all instructions and writes the document to w
func (r *PDFRenderer) Render(w io.Writer, instructions []layout.Instruction) error {
	r.pdf.AddPage()

	for _, in := range instructions {
		r.draw(in)
		if err := r.pdf.Error(); err != nil {
			return fmt.Errorf("failed to draw %s: %w", in.Kind, err)
		}
	}

	if err := r.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// RenderFile renders to a file at path.
// A failed render may leave a partial file behind.
func (r *PDFRenderer) RenderFile(path string, instructions []layout.Instruction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := r.Render(f, instructions); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *PDFRenderer) draw(in layout.Instruction) {
	switch in.Kind {
	case layout.KindNewPage:
		r.pdf.AddPage()

	case layout.KindText:
		r.pdf.SetFontSize(in.FontSize)
		r.pdf.SetXY(in.X, in.Y)
		r.pdf.CellFormat(in.W, in.H, r.translate(in.Text), "", 0, string(in.Align)+"M", false, 0, "")

	case layout.KindCell:
		r.pdf.SetFontSize(in.FontSize)
		top := in.Y + (in.H-float64(len(in.Lines))*in.Leading)/2
		for i, line := range in.Lines {
			r.pdf.SetXY(in.X+in.Padding, top+float64(i)*in.Leading)
			r.pdf.CellFormat(in.W-2*in.Padding, in.Leading, r.translate(line), "", 0, string(in.Align)+"M", false, 0, "")
		}

	case layout.KindLine:
		r.pdf.SetLineWidth(in.LineWidth)
		r.pdf.Line(in.X, in.Y, in.X2, in.Y2)
	}
}

// bmpOnly replaces runes outside the Basic Multilingual Plane with U+FFFD.
// fpdf's UTF-8 width table stops at U+FFFF.
func bmpOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return utf8.RuneError
		}
		return r
	}, s)
}
