// Package ingest turns a Genexus run archive into per-sample read-count
// mappings: archive extraction, legacy export repair and coverage parsing.
// The engine only ever sees the resulting amplicon id → count maps.
package ingest

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// rawDirName is the extraction directory created under the working
// directory.
const rawDirName = "rawData_extractCNV"

// coverageSuffix is the per-sample coverage export the Genexus writes in
// each sample directory.
const coverageSuffix = ".amplicon.cov.xls"

// RunName derives the run label from the archive file name, up to the first
// dot.
func RunName(archive string) string {
	return strings.Split(filepath.Base(archive), ".")[0]
}

// ExtractRun unpacks the run archive under workdir and collects each sample
// directory's coverage export at the raw-data root, renamed to
// "<sample><suffix>". It returns the raw-data directory and the sample
// names in sorted order.
func ExtractRun(archive, workdir string) (string, []string, error) {
	rawDir := filepath.Join(workdir, rawDirName)
	if err := unzip(archive, rawDir); err != nil {
		return "", nil, err
	}

	entries, err := os.ReadDir(rawDir)
	if err != nil {
		return "", nil, err
	}

	var samples []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sample := entry.Name()
		export, err := findCoverageExport(filepath.Join(rawDir, sample))
		if err != nil {
			return "", nil, err
		}
		dst := filepath.Join(rawDir, sample+coverageSuffix)
		if err := copyFile(export, dst); err != nil {
			return "", nil, err
		}
		samples = append(samples, sample)
	}
	sort.Strings(samples)

	slog.Info("extracted", "archive", archive, "rawDir", rawDir, "samples", len(samples))
	return rawDir, samples, nil
}

// CoveragePath returns the collected export path for a sample.
func CoveragePath(rawDir, sample string) string {
	return filepath.Join(rawDir, sample+coverageSuffix)
}

func findCoverageExport(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+coverageSuffix))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%s: no %s export", dir, coverageSuffix)
	}
	sort.Strings(matches)
	return matches[0], nil
}

func unzip(archive, dst string) error {
	reader, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer reader.Close()

	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}
	for _, file := range reader.File {
		target := filepath.Join(dst, filepath.Clean(file.Name))
		if !strings.HasPrefix(target, filepath.Clean(dst)+string(os.PathSeparator)) {
			return fmt.Errorf("%s: entry %q escapes extraction directory", archive, file.Name)
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := extractFile(file, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(file *zip.File, target string) error {
	in, err := file.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
