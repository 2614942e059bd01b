package service

import (
	"strings"
	"unicode/utf8"

	"vocabquiz/internal/domain"
)

// blankRune fills the hidden meaning cell, one per rune of the meaning
const blankRune = "　"

// Compose derives the three quiz sections from the sampled words.
// Every section keeps the sample order.
func Compose(words []domain.WordEntry) []domain.Section {
	sections := make([]domain.Section, 0, len(domain.SectionKinds))
	for _, kind := range domain.SectionKinds {
		rows := make([]domain.QuizRow, len(words))
		for i, w := range words {
			rows[i] = composeRow(kind, w)
		}
		sections = append(sections, domain.Section{Kind: kind, Rows: rows})
	}
	return sections
}

func composeRow(kind domain.SectionKind, w domain.WordEntry) domain.QuizRow {
	switch kind {
	case domain.SectionTransToNative:
		return domain.QuizRow{ID: w.ID, Term: w.Term, Meaning: blank(w.Meaning)}
	case domain.SectionNativeToTrans:
		return domain.QuizRow{ID: w.ID, Term: "(" + initial(w.Term) + ")", Meaning: w.Meaning}
	default:
		return domain.QuizRow{ID: w.ID, Term: w.Term, Meaning: w.Meaning}
	}
}

// blank hides s while keeping its length visible
func blank(s string) string {
	return strings.Repeat(blankRune, utf8.RuneCountInString(s))
}

func initial(s string) string {
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}
