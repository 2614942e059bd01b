package render

import (
	"fmt"
	"io"
	"strconv"

	"vocabquiz/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true)
	styleHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

// PrintPreview writes the quiz title and the answer key as a table
func PrintPreview(w io.Writer, q *domain.Quiz) error {
	answer, ok := q.Section(domain.SectionAnswer)
	if !ok {
		return fmt.Errorf("quiz has no %s section", domain.SectionAnswer)
	}

	rows := make([][]string, len(answer.Rows))
	for i, row := range answer.Rows {
		rows[i] = append([]string{strconv.Itoa(i)}, row.Cells()...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers("#", "id", "term", "meaning").
		Rows(rows...)

	title := fmt.Sprintf("%s (%d 点満点)", q.Title, answer.MaxScore())
	_, err := fmt.Fprintf(w, "\n%s\n%s\n", styleTitle.Render(title), t.Render())
	return err
}
