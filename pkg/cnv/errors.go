package cnv

import "fmt"

// CoverageError reports a sample whose raw counts cannot be aligned to the
// panel: an amplicon with no count, or a negative count.
type CoverageError struct {
	Sample   string
	Amplicon string
	Reason   string
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("coverage (sample %s, amplicon %s): %s", e.Sample, e.Amplicon, e.Reason)
}

// RatioError reports a zero-denominator normalization: the amplicon carries
// every read of the sample, so total - raw is 0.
type RatioError struct {
	Sample   string
	Amplicon string
}

func (e *RatioError) Error() string {
	return fmt.Sprintf("ratio (sample %s): normalization denominator is 0 for amplicon %s", e.Sample, e.Amplicon)
}

// AggregationError reports a gene with no amplicon mapped to it by the panel
// index.
type AggregationError struct {
	Gene string
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation: gene %s has no mapped amplicon", e.Gene)
}
