package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Params
	}{
		{
			name:     "no arguments",
			args:     nil,
			expected: Params{Output: "./exam.pdf", Left: math.Inf(1), Right: 1, Count: 30},
		},
		{
			name:     "all arguments",
			args:     []string{"out.pdf", "100", "200", "20", "BEEF"},
			expected: Params{Output: "out.pdf", Left: 100, Right: 200, Count: 20, Seed: "BEEF"},
		},
		{
			name:     "infinity literal",
			args:     []string{"out.pdf", "Infinity", "5"},
			expected: Params{Output: "out.pdf", Left: math.Inf(1), Right: 5, Count: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseParams(tt.args)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseParams_NonNumeric(t *testing.T) {
	p := ParseParams([]string{"", "abc", "-5", "many"})

	assert.Equal(t, "./exam.pdf", p.Output)
	assert.True(t, math.IsNaN(p.Left))
	assert.Equal(t, float64(-5), p.Right)
	assert.True(t, math.IsNaN(p.Count))
}

func TestParseParams_BlankBounds(t *testing.T) {
	p := ParseParams([]string{"out.pdf", "", " ", ""})

	assert.Equal(t, Params{Output: "out.pdf", Left: 0, Right: 0, Count: 0}, p)

	r := NormalizeRange(p.Left, p.Right, 10)
	assert.Equal(t, Range{Low: 1, High: 1}, r)
	assert.Equal(t, 1, NormalizeCount(p.Count, r))
}

func TestNormalizeRange(t *testing.T) {
	tests := []struct {
		name     string
		left     float64
		right    float64
		size     int
		expected Range
	}{
		{name: "defaults cover the whole list", left: math.Inf(1), right: 1, size: 100, expected: Range{Low: 1, High: 100}},
		{name: "in bounds", left: 10, right: 20, size: 100, expected: Range{Low: 10, High: 20}},
		{name: "inverted", left: 20, right: 10, size: 100, expected: Range{Low: 10, High: 20}},
		{name: "out of bounds", left: -3, right: 1000, size: 100, expected: Range{Low: 1, High: 100}},
		{name: "negative infinity", left: math.Inf(-1), right: 7, size: 100, expected: Range{Low: 1, High: 7}},
		{name: "fractional bounds truncate", left: 2.7, right: 5.2, size: 100, expected: Range{Low: 2, High: 5}},
		{name: "malformed left and negative right", left: math.NaN(), right: -5, size: 50, expected: Range{Low: 1, High: 50}},
		{name: "both NaN", left: math.NaN(), right: math.NaN(), size: 8, expected: Range{Low: 1, High: 8}},
		{name: "single entry list", left: 3, right: 9, size: 1, expected: Range{Low: 1, High: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeRange(tt.left, tt.right, tt.size)
			assert.Equal(t, tt.expected, result)
			assert.GreaterOrEqual(t, result.Low, 1)
			assert.LessOrEqual(t, result.Low, result.High)
			assert.LessOrEqual(t, result.High, tt.size)
		})
	}
}

func TestNormalizeRange_Idempotent(t *testing.T) {
	inputs := [][2]float64{
		{1, 1}, {5, 1}, {-10, 10}, {1e9, -1e9}, {math.NaN(), 3}, {math.Inf(1), math.Inf(-1)}, {33.3, 12.9},
	}

	for _, in := range inputs {
		once := NormalizeRange(in[0], in[1], 40)
		twice := NormalizeRange(float64(once.Low), float64(once.High), 40)
		assert.Equal(t, once, twice, "input %v", in)
	}
}

func TestNormalizeRange_MalformedArguments(t *testing.T) {
	p := ParseParams([]string{"exam.pdf", "abc", "-5"})

	assert.NotPanics(t, func() {
		r := NormalizeRange(p.Left, p.Right, 5)
		assert.Equal(t, Range{Low: 1, High: 5}, r)
	})
}

func TestNormalizeCount(t *testing.T) {
	r := Range{Low: 11, High: 20}

	tests := []struct {
		name     string
		count    float64
		expected int
	}{
		{name: "within range", count: 5, expected: 5},
		{name: "exceeds range", count: 30, expected: 10},
		{name: "zero", count: 0, expected: 1},
		{name: "negative", count: -4, expected: 1},
		{name: "NaN uses default then clamps", count: math.NaN(), expected: 10},
		{name: "fractional", count: 3.9, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCount(tt.count, r))
		})
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected uint16
		ok       bool
	}{
		{name: "plain hex", input: "1", expected: 0x1, ok: true},
		{name: "upper case", input: "BEEF", expected: 0xBEEF, ok: true},
		{name: "lower case with prefix", input: "0xbeef", expected: 0xBEEF, ok: true},
		{name: "zero is a real seed", input: "0", expected: 0, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "not hex", input: "xyz", ok: false},
		{name: "wider than 16 bits", input: "10000", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, ok := ParseSeed(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, seed)
			}
		})
	}
}

func TestSampleSpec_Title(t *testing.T) {
	spec := SampleSpec{Range: Range{Low: 1, High: 300}, Count: 30, Seed: 0xA}

	assert.Equal(t, "000A", spec.SeedHex())
	assert.Equal(t, "鉄壁テスト 1~300 (SEED:000A)", spec.Title("鉄壁テスト"))
}
