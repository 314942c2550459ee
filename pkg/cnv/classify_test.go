package cnv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SteampunkIslande/cnv-bichat/pkg/panel"
)

func TestClassifyBoundaries(t *testing.T) {
	thresholds := Thresholds{Deletion: 0.5, Duplication: 1.76}

	tests := []struct {
		ratio float64
		want  Classification
	}{
		{0.0, Deletion},
		{0.333, Deletion},
		{0.499, Deletion},
		{0.5, Normal}, // equality with the deletion threshold is Normal
		{0.917, Normal},
		{1.5, Normal},
		{1.759, Normal},
		{1.76, Duplication}, // equality with the duplication threshold is Duplication
		{2.4, Duplication},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, thresholds.Classify(tt.ratio), "ratio %v", tt.ratio)
	}
}

func TestClassifyIsTotal(t *testing.T) {
	thresholds := DefaultThresholds
	for _, ratio := range []float64{-1, 0, 0.4999999, 0.5, 1.7599999, 1.76, 1e9} {
		c := thresholds.Classify(ratio)
		assert.Contains(t, []Classification{Deletion, Duplication, Normal}, c)

		assert.Equal(t, ratio < thresholds.Deletion, c == Deletion)
		assert.Equal(t, ratio >= thresholds.Duplication, c == Duplication)
	}
}

func TestThresholdsValidate(t *testing.T) {
	require.NoError(t, DefaultThresholds.Validate())

	for _, bad := range []Thresholds{
		{Deletion: 1.76, Duplication: 0.5},
		{Deletion: 1.0, Duplication: 1.0},
	} {
		err := bad.Validate()
		var refErr *panel.ReferenceDataError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, "thresholds", refErr.Source)
	}
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "Deletion", Deletion.String())
	assert.Equal(t, "Duplication", Duplication.String())
	assert.Equal(t, "Normal", Normal.String())
}
