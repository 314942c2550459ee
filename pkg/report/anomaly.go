package report

import (
	"os"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"github.com/SteampunkIslande/cnv-bichat/pkg/cnv"
)

// AppendAnomalies appends one sample's anomaly block to the amplicon
// anomaly log: every deletion first, then every duplication, panel order
// within each group.
func AppendAnomalies(path string, result *cnv.SampleResult) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer simpleUtil.DeferClose(out)

	fmtUtil.Fprintf(out, "********Resultats recap...patient : %s \n", result.Sample)
	for _, r := range result.Amplicons {
		if r.Class == cnv.Deletion {
			fmtUtil.Fprintf(out, "%s; Deletion on amplicon: %s ratio = %v \n", r.Chr, r.ID, r.Ratio)
		}
	}
	for _, r := range result.Amplicons {
		if r.Class == cnv.Duplication {
			fmtUtil.Fprintf(out, "%s; Duplication on amplicon: %s ratio = %v \n", r.Chr, r.ID, r.Ratio)
		}
	}
	fmtUtil.Fprintf(out, "\n-----------------\n")
	return nil
}

// AppendGeneAnomalies appends one sample's gene anomaly block. Suppressed
// genes never appear here; their ratios live in the gene workbook only.
func AppendGeneAnomalies(path string, result *cnv.SampleResult) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer simpleUtil.DeferClose(out)

	fmtUtil.Fprintf(out, "********Resultats recap...patient : %s \n", result.Sample)
	for _, g := range result.Genes {
		if g.Class == cnv.Deletion && !g.Suppressed {
			fmtUtil.Fprintf(out, "%s; Deletion on gene: %s ratio = %v \n", g.Chr, g.Gene, g.Ratio)
		}
	}
	for _, g := range result.Genes {
		if g.Class == cnv.Duplication && !g.Suppressed {
			fmtUtil.Fprintf(out, "%s; Duplication on gene: %s ratio = %v \n", g.Chr, g.Gene, g.Ratio)
		}
	}
	fmtUtil.Fprintf(out, "\n-----------------\n")
	return nil
}
