package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseline(t *testing.T) {
	p, err := New(testRows())
	require.NoError(t, err)

	b, err := NewBaseline(map[string]float64{
		"AMPL100":     1.0,
		"AMPL101":     2.5,
		"224830378.0": 0.8,
		"AMPL200":     1.1,
	}, p)
	require.NoError(t, err)

	assert.Equal(t, 0.8, b["224830378"], "baseline ids must be cleaned like panel ids")
}

func TestNewBaselineMissingAmplicon(t *testing.T) {
	p, err := New(testRows())
	require.NoError(t, err)

	_, err = NewBaseline(map[string]float64{
		"AMPL100": 1.0,
		"AMPL101": 2.5,
		"AMPL200": 1.1,
	}, p)
	var refErr *ReferenceDataError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "baseline", refErr.Source)
	assert.Contains(t, refErr.Error(), "224830378")
}

func TestNewBaselineNonPositive(t *testing.T) {
	p, err := New(testRows())
	require.NoError(t, err)

	for _, bad := range []float64{0, -0.5} {
		_, err = NewBaseline(map[string]float64{
			"AMPL100":   bad,
			"AMPL101":   2.5,
			"224830378": 0.8,
			"AMPL200":   1.1,
		}, p)
		var refErr *ReferenceDataError
		require.ErrorAs(t, err, &refErr, "baseline %g must be rejected at load", bad)
	}
}
