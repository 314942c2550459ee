package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/SteampunkIslande/cnv-bichat/pkg/cnv"
)

// guideRatio is the dash-dot reference line drawn above the duplication
// threshold on every plot.
const guideRatio = 2.4

var (
	deletionColor    = color.RGBA{R: 0xff, A: 0xff}
	duplicationColor = color.RGBA{B: 0xff, A: 0xff}
	normalColor      = color.RGBA{G: 0x99, A: 0xff}
)

// SampleScatter plots one sample's amplicon ratios against their panel
// index, colored by classification, with solid lines at both thresholds.
func SampleScatter(path, title string, ratios []cnv.AmpliconRatio, t cnv.Thresholds) error {
	groups := map[cnv.Classification]plotter.XYs{}
	for i, r := range ratios {
		groups[r.Class] = append(groups[r.Class], plotter.XY{X: float64(i + 1), Y: r.Ratio})
	}
	return scatter(path, title, "Amplicon-ID", "Ratio", float64(len(ratios)+1), groups, t)
}

// GeneScatter plots one sample's gene mean ratios. Suppressed genes are
// left off the plot entirely.
func GeneScatter(path, title string, genes []cnv.GeneRatio, t cnv.Thresholds) error {
	groups := map[cnv.Classification]plotter.XYs{}
	n := 0
	for _, g := range genes {
		n++
		if g.Suppressed {
			continue
		}
		groups[g.Class] = append(groups[g.Class], plotter.XY{X: float64(n), Y: g.Ratio})
	}
	return scatter(path, title, "Gene", "Ratio mean", float64(n+1), groups, t)
}

func scatter(path, title, xLabel, yLabel string, xMax float64, groups map[cnv.Classification]plotter.XYs, t cnv.Thresholds) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	for _, class := range []cnv.Classification{cnv.Deletion, cnv.Duplication, cnv.Normal} {
		points := groups[class]
		if len(points) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(points)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Radius = vg.Points(2.5)
		switch class {
		case cnv.Deletion:
			sc.GlyphStyle.Color = deletionColor
		case cnv.Duplication:
			sc.GlyphStyle.Color = duplicationColor
		default:
			sc.GlyphStyle.Color = normalColor
		}
		p.Add(sc)
		p.Legend.Add(class.String(), sc)
	}

	for _, y := range []float64{t.Deletion, t.Duplication} {
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: y}, {X: xMax, Y: y}})
		if err != nil {
			return err
		}
		p.Add(line)
	}
	guide, err := plotter.NewLine(plotter.XYs{{X: 0, Y: guideRatio}, {X: xMax, Y: guideRatio}})
	if err != nil {
		return err
	}
	guide.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}
	p.Add(guide)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
