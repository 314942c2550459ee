package panel

import "fmt"

// Baseline maps amplicon id to the mean normalized read count observed in
// the control cohort.
type Baseline map[string]float64

// NewBaseline validates control cohort values against the panel: every panel
// amplicon needs a strictly positive baseline entry. Validation happens at
// load time so a bad baseline can never surface as a ratio error later.
func NewBaseline(values map[string]float64, p *Panel) (Baseline, error) {
	b := make(Baseline, len(values))
	for id, v := range values {
		b[CleanID(id)] = v
	}
	for _, a := range p.Amplicons() {
		v, ok := b[a.ID]
		if !ok {
			return nil, &ReferenceDataError{
				Source: "baseline",
				Detail: fmt.Sprintf("no control baseline for amplicon %q", a.ID),
			}
		}
		if v <= 0 {
			return nil, &ReferenceDataError{
				Source: "baseline",
				Detail: fmt.Sprintf("baseline for amplicon %q is %g, want > 0", a.ID, v),
			}
		}
	}
	return b, nil
}
