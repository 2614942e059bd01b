package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/layout"
	"vocabquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuiz(n int) *domain.Quiz {
	rows := make([]domain.QuizRow, n)
	for i := range rows {
		rows[i] = domain.QuizRow{ID: i + 1, Term: "apple", Meaning: "fruit"}
	}

	sections := make([]domain.Section, 0, len(domain.SectionKinds))
	for _, kind := range domain.SectionKinds {
		sections = append(sections, domain.Section{Kind: kind, Rows: rows})
	}
	return &domain.Quiz{Title: "quiz 1~10 (SEED:0001)", Sections: sections}
}

func newFallbackRenderer(t *testing.T) *PDFRenderer {
	t.Helper()

	missing := filepath.Join(t.TempDir(), "missing.ttf")
	r, err := NewPDFRenderer(missing, layout.A4, testutil.NewTestLogger())
	require.NoError(t, err)
	return r
}

func newFontRenderer(t *testing.T) *PDFRenderer {
	t.Helper()

	path, err := filepath.Abs(filepath.Join("testdata", "DejaVuSansCondensed.ttf"))
	require.NoError(t, err)

	r, err := NewPDFRenderer(path, layout.A4, testutil.NewTestLogger())
	require.NoError(t, err)
	return r
}

func TestPDFRenderer_AbsoluteFontPath(t *testing.T) {
	r := newFontRenderer(t)

	assert.Equal(t, fontFamily, r.family)
}

func TestPDFRenderer_SplitLines(t *testing.T) {
	r := newFontRenderer(t)

	lines := r.SplitLines("to dig a hole in the ground with a shovel", 60, 10)

	assert.Greater(t, len(lines), 1)
	assert.Equal(t, "to dig a hole in the ground with a shovel", strings.Join(lines, " "))
}

func TestPDFRenderer_SplitLines_AstralRunes(t *testing.T) {
	r := newFontRenderer(t)

	var lines []string
	require.NotPanics(t, func() {
		lines = r.SplitLines("𠮷野家 😀", 150, 8)
	})
	assert.Equal(t, []string{"\uFFFD野家 \uFFFD"}, lines)
}

func TestPDFRenderer_Render_Japanese(t *testing.T) {
	r := newFontRenderer(t)
	p := layout.NewPaginator(layout.DefaultOptions(), r)

	q := testQuiz(7)
	for i := range q.Sections {
		q.Sections[i].Rows[0] = domain.QuizRow{ID: 1, Term: "dig", Meaning: "𠮷野家で穴を掘る 😀"}
	}

	var buf bytes.Buffer
	var err error
	require.NotPanics(t, func() {
		err = r.Render(&buf, p.Layout(q))
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, 3, r.pdf.PageCount())
}

func TestBMPOnly(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ascii", in: "apple", want: "apple"},
		{name: "japanese", in: "掘る", want: "掘る"},
		{name: "astral kanji", in: "𠮷", want: "\uFFFD"},
		{name: "emoji", in: "ok 😀!", want: "ok \uFFFD!"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bmpOnly(tt.in))
		})
	}
}

func TestPDFRenderer_FallbackFont(t *testing.T) {
	r := newFallbackRenderer(t)

	assert.Equal(t, fallbackFont, r.family)
	assert.Equal(t, []string{"a long meaning"}, r.SplitLines("a long meaning", 10, 8))
}

func TestPDFRenderer_Render(t *testing.T) {
	r := newFallbackRenderer(t)
	p := layout.NewPaginator(layout.DefaultOptions(), r)

	var buf bytes.Buffer
	err := r.Render(&buf, p.Layout(testQuiz(7)))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, 3, r.pdf.PageCount())
}

func TestPDFRenderer_RenderFile(t *testing.T) {
	r := newFallbackRenderer(t)
	p := layout.NewPaginator(layout.DefaultOptions(), r)
	path := filepath.Join(t.TempDir(), "exam.pdf")

	err := r.RenderFile(path, p.Layout(testQuiz(3)))

	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPDFRenderer_RenderFile_Unwritable(t *testing.T) {
	r := newFallbackRenderer(t)
	path := filepath.Join(t.TempDir(), "no-such-dir", "exam.pdf")

	err := r.RenderFile(path, nil)

	assert.Error(t, err)
}
