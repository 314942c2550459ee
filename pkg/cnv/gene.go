package cnv

import (
	"gonum.org/v1/gonum/stat"

	"github.com/SteampunkIslande/cnv-bichat/pkg/panel"
)

// GeneRatio is the mean amplicon ratio of one gene. Suppressed marks
// identity-vigilance loci: the value and classification are still emitted,
// only anomaly reporting is withheld.
type GeneRatio struct {
	Chr        string
	Gene       string
	Ratio      float64
	Class      Classification
	Suppressed bool
}

// AggregateGenes means the rounded amplicon ratios per gene, using the
// panel's explicit gene index. Membership is exact, not substring matching
// on amplicon id text. Genes come out in first-appearance panel order.
func AggregateGenes(ratios []AmpliconRatio, p *panel.Panel) ([]GeneRatio, error) {
	byID := make(map[string]AmpliconRatio, len(ratios))
	for _, r := range ratios {
		byID[r.ID] = r
	}

	genes := make([]GeneRatio, 0, len(p.Genes()))
	for _, gene := range p.Genes() {
		ids := p.LookupByGene(gene)
		if len(ids) == 0 {
			return nil, &AggregationError{Gene: gene}
		}
		values := make([]float64, 0, len(ids))
		chr := ""
		for _, id := range ids {
			r := byID[id]
			values = append(values, r.Ratio)
			chr = r.Chr
		}
		genes = append(genes, GeneRatio{
			Chr:        chr,
			Gene:       gene,
			Ratio:      Round3(stat.Mean(values, nil)),
			Suppressed: p.IsIdentityMarker(gene),
		})
	}
	return genes, nil
}

// ClassifyForReport classifies a gene ratio and reports whether anomaly
// reporting must be withheld for it.
func ClassifyForReport(p *panel.Panel, gene string, ratio float64, t Thresholds) (Classification, bool) {
	return t.Classify(ratio), p.IsIdentityMarker(gene)
}
