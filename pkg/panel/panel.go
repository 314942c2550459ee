// Package panel holds the reference amplicon catalog and the control cohort
// baseline. Both are loaded once per run and shared read-only by every
// per-sample computation.
package panel

import (
	"fmt"
	"strings"
)

// Amplicon is one targeted region of the panel. Index is the position of the
// amplicon in the source row order and drives every downstream ordering.
type Amplicon struct {
	ID    string
	Gene  string
	Chr   string
	Index int
}

// Row is one source row of the reference workbook.
type Row struct {
	Chr  string
	ID   string
	Gene string
}

// Panel is the ordered amplicon catalog with its derived indexes.
type Panel struct {
	amplicons []Amplicon
	byID      map[string]int
	byGene    map[string][]string
	genes     []string
}

// ReferenceDataError reports malformed or missing reference data: panel rows,
// baseline entries or threshold configuration.
type ReferenceDataError struct {
	Source string
	Detail string
}

func (e *ReferenceDataError) Error() string {
	return fmt.Sprintf("reference data (%s): %s", e.Source, e.Detail)
}

// CleanID strips the trailing ".0" artifact that numeric amplicon ids carry
// in the legacy workbooks.
func CleanID(id string) string {
	return strings.TrimSuffix(strings.TrimSpace(id), ".0")
}

// New builds a panel from ordered reference rows and derives the
// gene → amplicons index.
func New(rows []Row) (*Panel, error) {
	if len(rows) == 0 {
		return nil, &ReferenceDataError{Source: "panel", Detail: "empty panel"}
	}

	p := &Panel{
		byID:   make(map[string]int, len(rows)),
		byGene: make(map[string][]string),
	}
	for i, row := range rows {
		id := CleanID(row.ID)
		gene := strings.TrimSpace(row.Gene)
		chr := strings.TrimSpace(row.Chr)
		if id == "" || gene == "" || chr == "" {
			return nil, &ReferenceDataError{
				Source: "panel",
				Detail: fmt.Sprintf("row %d: missing chromosome, amplicon id or gene", i+1),
			}
		}
		if _, ok := p.byID[id]; ok {
			return nil, &ReferenceDataError{
				Source: "panel",
				Detail: fmt.Sprintf("duplicate amplicon id %q", id),
			}
		}
		p.byID[id] = len(p.amplicons)
		p.amplicons = append(p.amplicons, Amplicon{ID: id, Gene: gene, Chr: chr, Index: i})
		if _, ok := p.byGene[gene]; !ok {
			p.genes = append(p.genes, gene)
		}
		p.byGene[gene] = append(p.byGene[gene], id)
	}
	return p, nil
}

// Amplicons returns the catalog in panel order.
func (p *Panel) Amplicons() []Amplicon {
	return p.amplicons
}

// Size returns the number of amplicons on the panel.
func (p *Panel) Size() int {
	return len(p.amplicons)
}

// Lookup returns the amplicon with the given id.
func (p *Panel) Lookup(id string) (Amplicon, bool) {
	i, ok := p.byID[id]
	if !ok {
		return Amplicon{}, false
	}
	return p.amplicons[i], true
}

// LookupByGene returns the amplicon ids mapped to gene, in panel order.
func (p *Panel) LookupByGene(gene string) []string {
	return p.byGene[gene]
}

// Genes returns the gene names in first-appearance panel order.
func (p *Panel) Genes() []string {
	return p.genes
}

// IsIdentityMarker reports whether gene is an identity-vigilance locus,
// excluded from anomaly reporting but never from computation.
func (p *Panel) IsIdentityMarker(gene string) bool {
	return identityMarkers[gene]
}
