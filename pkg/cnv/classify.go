// Package cnv implements the copy-number engine: panel-aligned coverage,
// self-excluded normalization against the control baseline, threshold
// classification and per-gene aggregation.
package cnv

import (
	"fmt"

	"github.com/SteampunkIslande/cnv-bichat/pkg/panel"
)

// Classification is the copy-number status of a ratio.
type Classification int

const (
	Normal Classification = iota
	Deletion
	Duplication
)

func (c Classification) String() string {
	switch c {
	case Deletion:
		return "Deletion"
	case Duplication:
		return "Duplication"
	default:
		return "Normal"
	}
}

// Thresholds holds the classification boundaries.
//
// The boundaries are asymmetric on purpose: a ratio equal to Deletion
// classifies as Normal (strict <), a ratio equal to Duplication classifies
// as Duplication (inclusive >=).
type Thresholds struct {
	Deletion    float64
	Duplication float64
}

// DefaultThresholds are the validated production boundaries of the panel.
var DefaultThresholds = Thresholds{Deletion: 0.5, Duplication: 1.76}

// Validate checks the invariant Deletion < Duplication.
func (t Thresholds) Validate() error {
	if t.Deletion >= t.Duplication {
		return &panel.ReferenceDataError{
			Source: "thresholds",
			Detail: fmt.Sprintf("deletion threshold %g must be < duplication threshold %g", t.Deletion, t.Duplication),
		}
	}
	return nil
}

// Classify maps a ratio to its copy-number status.
func (t Thresholds) Classify(ratio float64) Classification {
	switch {
	case ratio < t.Deletion:
		return Deletion
	case ratio >= t.Duplication:
		return Duplication
	default:
		return Normal
	}
}
