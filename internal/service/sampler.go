package service

import (
	"sort"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/random"
)

// sampledWord is an entry with its draw from the seeded generator
type sampledWord struct {
	entry domain.WordEntry
	draw  float64
}

// BuildSampleSpec normalizes raw parameters against a word list of the given size.
// A missing or invalid seed is replaced by one from newSeed.
func BuildSampleSpec(p domain.Params, size int, newSeed func() (uint16, error)) (domain.SampleSpec, error) {
	r := domain.NormalizeRange(p.Left, p.Right, size)

	seed, ok := domain.ParseSeed(p.Seed)
	if !ok {
		var err error
		seed, err = newSeed()
		if err != nil {
			return domain.SampleSpec{}, err
		}
	}

	return domain.SampleSpec{
		Range: r,
		Count: domain.NormalizeCount(p.Count, r),
		Seed:  seed,
	}, nil
}

// Sample picks spec.Count distinct entries from spec.Range and orders them
// by their seeded draw.
//
// One draw is taken for every entry of the whole list, not only the range,
// so a given seed assigns the same draw to an entry whatever range is asked for.
func Sample(entries []domain.WordEntry, spec domain.SampleSpec) []domain.WordEntry {
	if len(entries) == 0 {
		return nil
	}

	r := domain.NormalizeRange(float64(spec.Range.Low), float64(spec.Range.High), len(entries))
	count := domain.NormalizeCount(float64(spec.Count), r)

	mt := random.NewMT19937(uint32(spec.Seed))
	drawn := make([]sampledWord, len(entries))
	for i, e := range entries {
		drawn[i] = sampledWord{entry: e, draw: mt.Float64()}
	}

	window := drawn[r.Low-1 : r.High]
	sort.SliceStable(window, func(i, j int) bool {
		return window[i].draw < window[j].draw
	})

	words := make([]domain.WordEntry, count)
	for i := range words {
		words[i] = window[i].entry
	}
	return words
}
