package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Defaults for omitted invocation parameters
const (
	DefaultOutput = "./exam.pdf"
	DefaultRight  = 1
	DefaultCount  = 30
)

// DefaultLeft is the left bound used when none is given.
// Clamping pulls it down to the size of the word list.
var DefaultLeft = math.Inf(1)

// Params holds raw, unvalidated invocation parameters
type Params struct {
	Output string
	Left   float64
	Right  float64
	Count  float64
	Seed   string
}

// ParseParams reads positional arguments: output, left, right, count, seed.
// Missing arguments take their defaults; blank bounds read as zero and
// non-numeric bounds become NaN, both resolved during normalization.
func ParseParams(args []string) Params {
	p := Params{
		Output: DefaultOutput,
		Left:   DefaultLeft,
		Right:  DefaultRight,
		Count:  DefaultCount,
	}

	if len(args) > 0 && args[0] != "" {
		p.Output = args[0]
	}
	if len(args) > 1 {
		p.Left = parseNumber(args[1])
	}
	if len(args) > 2 {
		p.Right = parseNumber(args[2])
	}
	if len(args) > 3 {
		p.Count = parseNumber(args[3])
	}
	if len(args) > 4 {
		p.Seed = args[4]
	}

	return p
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Range is an inclusive, 1-based window over the word list
type Range struct {
	Low  int
	High int
}

// Len returns the number of entries covered by the range
func (r Range) Len() int {
	return r.High - r.Low + 1
}

// NormalizeRange clamps both bounds into [1, size] and orders them.
// NaN bounds fall back to their defaults. size must be positive.
func NormalizeRange(left, right float64, size int) Range {
	if math.IsNaN(left) {
		left = DefaultLeft
	}
	if math.IsNaN(right) {
		right = DefaultRight
	}

	l := int(clamp(left, 1, float64(size)))
	r := int(clamp(right, 1, float64(size)))
	if l > r {
		l, r = r, l
	}

	return Range{Low: l, High: r}
}

// NormalizeCount clamps count into [1, r.Len()]
func NormalizeCount(count float64, r Range) int {
	if math.IsNaN(count) {
		count = DefaultCount
	}
	return int(clamp(count, 1, float64(r.Len())))
}

// ParseSeed parses a hexadecimal 16-bit seed, with or without a 0x prefix.
// The second result is false when s is empty or not a valid seed.
func ParseSeed(s string) (uint16, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// SampleSpec fully determines a sampling outcome
type SampleSpec struct {
	Range Range
	Count int
	Seed  uint16
}

// SeedHex returns the seed as four upper-case hex digits
func (s SampleSpec) SeedHex() string {
	return fmt.Sprintf("%04X", s.Seed)
}

// Title builds the quiz title shown on every section
func (s SampleSpec) Title(prefix string) string {
	return fmt.Sprintf("%s %d~%d (SEED:%s)", prefix, s.Range.Low, s.Range.High, s.SeedHex())
}

func clamp(v, low, high float64) float64 {
	return math.Min(math.Max(v, low), high)
}
