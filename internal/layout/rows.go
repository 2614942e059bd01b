// Package layout turns quiz sections into positioned draw instructions.
//
// Nothing here draws. The renderer executes the returned instructions, so
// page breaks, row merging and divider placement can be tested on their own.
package layout

import (
	"math"

	"vocabquiz/internal/domain"
)

// Row sizing bounds, in points
const (
	rowHeightBudget = 500
	minRowHeight    = 20
	maxRowHeight    = 45
)

// Font sizes for body rows; every third row starting at index 1 is emphasized
const (
	fontSizeRow      = 8
	fontSizeEmphasis = 10
)

// FieldsPerRow is the number of cells in one logical quiz row
const FieldsPerRow = 3

// PhysicalRow is one rendered table row holding up to `columns` quiz rows
type PhysicalRow []string

// MergeRows packs quiz rows pairwise (or `columns`-wise) into physical rows.
// The last physical row is padded with empty cells to full width.
func MergeRows(rows []domain.QuizRow, columns int) []PhysicalRow {
	if columns < 1 {
		columns = 1
	}
	width := columns * FieldsPerRow

	var merged []PhysicalRow
	for _, row := range rows {
		cells := row.Cells()
		last := len(merged) - 1
		if last < 0 || len(merged[last]) >= width {
			merged = append(merged, PhysicalRow(cells))
			continue
		}
		merged[last] = append(merged[last], cells...)
	}

	if n := len(merged); n > 0 {
		for len(merged[n-1]) < width {
			merged[n-1] = append(merged[n-1], "")
		}
	}

	return merged
}

// RowHeight returns the minimum body row height for a section of n quiz rows.
// Larger sections get thinner rows, bounded to [20, 45].
func RowHeight(n, columns int) float64 {
	if columns < 1 {
		columns = 1
	}
	physical := math.Ceil(float64(n) / float64(columns))
	if physical == 0 {
		return maxRowHeight
	}
	return math.Min(math.Max(rowHeightBudget/physical, minRowHeight), maxRowHeight)
}

// FontSize returns the body font size for the physical row at index i
func FontSize(i int) float64 {
	if i%3 == 1 {
		return fontSizeEmphasis
	}
	return fontSizeRow
}
