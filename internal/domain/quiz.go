package domain

import (
	"fmt"
	"strconv"
)

// SectionKind identifies one of the three parallel quiz views
type SectionKind string

const (
	SectionTransToNative SectionKind = "trans-to-native"
	SectionNativeToTrans SectionKind = "native-to-trans"
	SectionAnswer        SectionKind = "answer"
)

// SectionKinds lists the sections in document order
var SectionKinds = []SectionKind{
	SectionTransToNative,
	SectionNativeToTrans,
	SectionAnswer,
}

// Label returns the heading suffix printed for the section
func (k SectionKind) Label() string {
	switch k {
	case SectionTransToNative:
		return "和訳編"
	case SectionNativeToTrans:
		return "英訳編"
	case SectionAnswer:
		return "解答編"
	default:
		return string(k)
	}
}

// QuizRow is one logical table row: id, term cell, meaning cell
type QuizRow struct {
	ID      int
	Term    string
	Meaning string
}

// Cells returns the row as three table cells
func (r QuizRow) Cells() []string {
	return []string{strconv.Itoa(r.ID), r.Term, r.Meaning}
}

// Section is one view over the sampled words
type Section struct {
	Kind SectionKind
	Rows []QuizRow
}

// MaxScore is two points per row
func (s Section) MaxScore() int {
	return len(s.Rows) * 2
}

// ScoreLine returns the score fraction printed under the heading.
// Question sheets leave the numerator blank; the answer key is pre-filled.
func (s Section) ScoreLine() string {
	if s.Kind == SectionAnswer {
		return fmt.Sprintf("%d/%d", s.MaxScore(), s.MaxScore())
	}
	return fmt.Sprintf("/%d", s.MaxScore())
}

// Quiz is the composed document content
type Quiz struct {
	Title    string
	Spec     SampleSpec
	Sections []Section
}

// Section returns the section of the given kind
func (q *Quiz) Section(kind SectionKind) (Section, bool) {
	for _, s := range q.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}
