package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"

	"github.com/SteampunkIslande/cnv-bichat/pkg/cnv"
	"github.com/SteampunkIslande/cnv-bichat/pkg/ingest"
	"github.com/SteampunkIslande/cnv-bichat/pkg/panel"
	"github.com/SteampunkIslande/cnv-bichat/pkg/prefs"
	"github.com/SteampunkIslande/cnv-bichat/pkg/report"
)

// flag
var (
	dupThreshold = flag.Float64(
		"dup",
		1.76,
		"ratio at or above which a copy number counts as a duplication",
	)
	delThreshold = flag.Float64(
		"del",
		0.5,
		"ratio below which a copy number counts as a deletion",
	)
	workDir = flag.String(
		"workdir",
		"",
		"working directory (default: current directory)",
	)
	refDir = flag.String(
		"refdir",
		"",
		"directory with the reference workbooks",
	)
)

// reference workbooks expected under -refdir
const (
	panelFile    = "GENEXUS_fichierOrdonneRegionStartGene_PanelAPHP.xlsx"
	baselineFile = "Moyenne_NormalizedRead_count_TemoinsPorphyriesGENEXUS.xlsx"
)

func main() {
	version.LogVersion()
	flag.Parse()
	if flag.NArg() != 1 {
		flag.PrintDefaults()
		log.Fatal("input archive is required")
	}
	archive := flag.Arg(0)

	var cfg Config
	simpleUtil.CheckErr(envconfig.Process("", &cfg))
	applyConfig(&cfg)

	if *workDir == "" {
		*workDir = simpleUtil.HandleError(os.Getwd())
	}
	if *refDir == "" {
		flag.PrintDefaults()
		log.Fatal("-refdir (or CNV_REF_DIR) is required")
	}

	thresholds := cnv.Thresholds{Deletion: *delThreshold, Duplication: *dupThreshold}
	if err := thresholds.Validate(); err != nil {
		log.Fatal(err)
	}

	if err := run(archive, *refDir, *workDir, thresholds); err != nil {
		log.Fatal(err)
	}
}

func run(archive, refDir, workDir string, t cnv.Thresholds) error {
	runName := ingest.RunName(archive)
	slog.Info("run", "name", runName, "archive", archive, "refdir", refDir, "workdir", workDir)

	pan, err := panel.LoadPanel(filepath.Join(refDir, panelFile))
	if err != nil {
		return err
	}
	base, err := panel.LoadBaseline(filepath.Join(refDir, baselineFile), pan)
	if err != nil {
		return err
	}
	slog.Info("panel", "amplicons", pan.Size(), "genes", len(pan.Genes()))

	rawDir, samples, err := ingest.ExtractRun(archive, workDir)
	if err != nil {
		return err
	}
	counts := make(map[string]map[string]int, len(samples))
	for _, sample := range samples {
		repaired, err := ingest.RepairLegacyExport(ingest.CoveragePath(rawDir, sample), sample)
		if err != nil {
			return err
		}
		counts[sample], err = ingest.ReadCoverage(repaired)
		if err != nil {
			return err
		}
	}

	matrixPath := filepath.Join(workDir, "fichierEntreCNV_ALLpatients.xlsx")
	if err := ingest.WriteCoverageMatrix(matrixPath, pan, samples, counts); err != nil {
		return err
	}

	matrix, err := cnv.BuildMatrix(counts, pan)
	if err != nil {
		return err
	}
	results, err := cnv.RunSamples(context.Background(), matrix, pan, base, t)
	if err != nil {
		return err
	}

	if err := writeReports(workDir, runName, results, t); err != nil {
		return err
	}

	rememberDirs(archive, refDir, workDir)
	return nil
}

func writeReports(workDir, runName string, results []*cnv.SampleResult, t cnv.Thresholds) error {
	ampDir := filepath.Join(workDir, "resultats_AMP")
	geneDir := filepath.Join(workDir, "resultats_Gene")
	for _, dir := range []string{ampDir, geneDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := report.WriteRatioWorkbook(filepath.Join(ampDir, "Resultat_Ratio_"+runName+".xlsx"), results); err != nil {
		return err
	}
	if err := report.WriteGeneWorkbook(filepath.Join(geneDir, "Resultat_MeanRatioGene_"+runName+".xlsx"), results); err != nil {
		return err
	}

	ampAnomalies := filepath.Join(ampDir, "Fichier_Anomalies des patients_"+runName+".txt")
	geneAnomalies := filepath.Join(geneDir, "Fichier_Anomalies des patients_"+runName+".txt")
	for _, result := range results {
		if err := report.AppendAnomalies(ampAnomalies, result); err != nil {
			return err
		}
		if err := report.AppendGeneAnomalies(geneAnomalies, result); err != nil {
			return err
		}
		if err := report.SampleScatter(filepath.Join(ampDir, result.Sample+".png"), result.Sample, result.Amplicons, t); err != nil {
			return err
		}
		if err := report.GeneScatter(filepath.Join(geneDir, result.Sample+".png"), result.Sample, result.Genes, t); err != nil {
			return err
		}
	}
	return nil
}

// rememberDirs persists the run's directories for the front-end. A failed
// save never fails the run.
func rememberDirs(archive, refDir, workDir string) {
	p := prefs.Load()
	p.SetString(prefs.KeyRefDir, refDir)
	p.SetString(prefs.KeyWorkDir, workDir)
	p.SetString(prefs.KeyLastZip, archive)
	if err := p.Save(); err != nil {
		slog.Warn("prefs save", "err", err)
	}
}
