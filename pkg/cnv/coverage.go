package cnv

import (
	"sort"

	"github.com/samber/lo"

	"github.com/SteampunkIslande/cnv-bichat/pkg/panel"
)

// SampleCoverage is one sample's raw counts aligned to the panel, with the
// sample total cached once. Total is the sum over every panel amplicon and
// is the subtrahend base for every denominator.
type SampleCoverage struct {
	Sample string
	Counts map[string]int
	Total  int
}

// BuildCoverage validates raw counts against the panel: every amplicon must
// be present with a non-negative count.
func BuildCoverage(sample string, counts map[string]int, p *panel.Panel) (*SampleCoverage, error) {
	ordered := make([]int, 0, p.Size())
	for _, a := range p.Amplicons() {
		n, ok := counts[a.ID]
		if !ok {
			return nil, &CoverageError{Sample: sample, Amplicon: a.ID, Reason: "no read count"}
		}
		if n < 0 {
			return nil, &CoverageError{Sample: sample, Amplicon: a.ID, Reason: "negative read count"}
		}
		ordered = append(ordered, n)
	}
	return &SampleCoverage{
		Sample: sample,
		Counts: counts,
		Total:  lo.Sum(ordered),
	}, nil
}

// Matrix is the validated coverage of a whole run, samples in name order.
type Matrix struct {
	Samples []*SampleCoverage
}

// BuildMatrix validates every sample of the run against the panel.
func BuildMatrix(counts map[string]map[string]int, p *panel.Panel) (*Matrix, error) {
	names := lo.Keys(counts)
	sort.Strings(names)

	m := &Matrix{}
	for _, name := range names {
		cov, err := BuildCoverage(name, counts[name], p)
		if err != nil {
			return nil, err
		}
		m.Samples = append(m.Samples, cov)
	}
	return m, nil
}
