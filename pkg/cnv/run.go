package cnv

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SteampunkIslande/cnv-bichat/pkg/panel"
)

// SampleResult is the classified output of one sample: amplicon ratios in
// panel order plus the per-gene aggregates.
type SampleResult struct {
	Sample    string
	Amplicons []AmpliconRatio
	Genes     []GeneRatio
}

// ProcessSample runs one sample through ratio computation, classification
// and gene aggregation. Any error aborts the sample with no partial result.
func ProcessSample(cov *SampleCoverage, p *panel.Panel, base panel.Baseline, t Thresholds) (*SampleResult, error) {
	ratios, err := ComputeRatios(cov, p, base)
	if err != nil {
		return nil, err
	}
	for i := range ratios {
		ratios[i].Class = t.Classify(ratios[i].Ratio)
	}

	genes, err := AggregateGenes(ratios, p)
	if err != nil {
		return nil, err
	}
	for i := range genes {
		genes[i].Class = t.Classify(genes[i].Ratio)
	}

	return &SampleResult{Sample: cov.Sample, Amplicons: ratios, Genes: genes}, nil
}

// RunSamples processes every sample of the matrix, one goroutine per sample
// over the shared read-only panel and baseline. The first error cancels the
// samples not yet started and is returned; results of samples that already
// finished are discarded with it, matching the original run-abort policy.
func RunSamples(ctx context.Context, m *Matrix, p *panel.Panel, base panel.Baseline, t Thresholds) ([]*SampleResult, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		result *SampleResult
		err    error
	}

	results := make(chan outcome, len(m.Samples))
	var wg sync.WaitGroup
	for _, cov := range m.Samples {
		wg.Add(1)
		go func(cov *SampleCoverage) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			slog.Info("sample", "id", cov.Sample, "total", cov.Total)
			result, err := ProcessSample(cov, p, base, t)
			if err != nil {
				cancel()
			}
			results <- outcome{result: result, err: err}
		}(cov)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	byName := make(map[string]*SampleResult, len(m.Samples))
	var firstErr error
	for out := range results {
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
			}
			continue
		}
		byName[out.result.Sample] = out.result
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ordered := make([]*SampleResult, 0, len(byName))
	for _, cov := range m.Samples {
		if result, ok := byName[cov.Sample]; ok {
			ordered = append(ordered, result)
		}
	}
	return ordered, nil
}
