package cnv

import (
	"math"

	"github.com/SteampunkIslande/cnv-bichat/pkg/panel"
)

// AmpliconRatio is one classified cohort-relative ratio, in panel order.
type AmpliconRatio struct {
	Chr   string
	ID    string
	Ratio float64
	Class Classification
}

// Round3 rounds to three decimals, the precision every reported ratio
// carries.
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// ComputeRatios normalizes one sample against itself and the control
// baseline. For each amplicon in panel order:
//
//	normalized = raw / (total - raw)
//	ratio      = round(normalized / baseline, 3)
//
// A zero denominator is a RatioError; the sample produces no output.
// Classification is left to the caller.
func ComputeRatios(cov *SampleCoverage, p *panel.Panel, base panel.Baseline) ([]AmpliconRatio, error) {
	ratios := make([]AmpliconRatio, 0, p.Size())
	for _, a := range p.Amplicons() {
		raw := cov.Counts[a.ID]
		denom := cov.Total - raw
		if denom == 0 {
			return nil, &RatioError{Sample: cov.Sample, Amplicon: a.ID}
		}
		normalized := float64(raw) / float64(denom)
		ratios = append(ratios, AmpliconRatio{
			Chr:   a.Chr,
			ID:    a.ID,
			Ratio: Round3(normalized / base[a.ID]),
		})
	}
	return ratios, nil
}
