package cnv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSamples(t *testing.T) {
	p, b := twoAmpliconPanel(t)
	m, err := BuildMatrix(map[string]map[string]int{
		"P1": {"A1": 10, "A2": 30},
		"P2": {"A1": 20, "A2": 20},
	}, p)
	require.NoError(t, err)

	results, err := RunSamples(context.Background(), m, p, b, DefaultThresholds)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "P1", results[0].Sample)
	assert.Equal(t, "P2", results[1].Sample)

	p1 := results[0]
	require.Len(t, p1.Amplicons, 2)
	assert.Equal(t, 0.333, p1.Amplicons[0].Ratio)
	assert.Equal(t, Deletion, p1.Amplicons[0].Class)
	assert.Equal(t, 1.5, p1.Amplicons[1].Ratio)
	assert.Equal(t, Normal, p1.Amplicons[1].Class)

	require.Len(t, p1.Genes, 1)
	assert.Equal(t, 0.917, p1.Genes[0].Ratio)
	assert.Equal(t, Normal, p1.Genes[0].Class)

	// P2: normalized = 20/20 = 1.0 for both, ratios 1.0 and 0.5
	p2 := results[1]
	assert.Equal(t, 1.0, p2.Amplicons[0].Ratio)
	assert.Equal(t, 0.5, p2.Amplicons[1].Ratio)
	assert.Equal(t, Normal, p2.Amplicons[1].Class, "ratio equal to the deletion threshold is Normal")
}

func TestRunSamplesAbortsOnError(t *testing.T) {
	p, b := twoAmpliconPanel(t)
	m, err := BuildMatrix(map[string]map[string]int{
		"P1": {"A1": 10, "A2": 30},
		"P2": {"A1": 40, "A2": 0}, // zero denominator on A1
	}, p)
	require.NoError(t, err)

	results, err := RunSamples(context.Background(), m, p, b, DefaultThresholds)
	var ratioErr *RatioError
	require.ErrorAs(t, err, &ratioErr)
	assert.Equal(t, "P2", ratioErr.Sample)
	assert.Nil(t, results)
}

func TestRunSamplesValidatesThresholds(t *testing.T) {
	p, b := twoAmpliconPanel(t)
	m, err := BuildMatrix(map[string]map[string]int{
		"P1": {"A1": 10, "A2": 30},
	}, p)
	require.NoError(t, err)

	_, err = RunSamples(context.Background(), m, p, b, Thresholds{Deletion: 2, Duplication: 1})
	require.Error(t, err)
}

func TestRunSamplesCancelledContext(t *testing.T) {
	p, b := twoAmpliconPanel(t)
	m, err := BuildMatrix(map[string]map[string]int{
		"P1": {"A1": 10, "A2": 30},
	}, p)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RunSamples(ctx, m, p, b, DefaultThresholds)
	require.ErrorIs(t, err, context.Canceled)
}

func TestProcessSampleNoPartialOutput(t *testing.T) {
	p, b := twoAmpliconPanel(t)
	cov, err := BuildCoverage("P1", map[string]int{"A1": 40, "A2": 0}, p)
	require.NoError(t, err)

	result, err := ProcessSample(cov, p, b, DefaultThresholds)
	require.Error(t, err)
	assert.Nil(t, result)
}
