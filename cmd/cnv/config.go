package main

import "flag"

// Config carries environment-variable defaults. Precedence is
// flag > environment > built-in default.
type Config struct {
	RefDir               string  `envconfig:"CNV_REF_DIR"`
	WorkDir              string  `envconfig:"CNV_WORK_DIR"`
	DeletionThreshold    float64 `envconfig:"CNV_DELETION_THRESHOLD"`
	DuplicationThreshold float64 `envconfig:"CNV_DUPLICATION_THRESHOLD"`
}

// applyConfig overrides flags left at their default with environment
// values. Must run after flag.Parse.
func applyConfig(cfg *Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if !set["refdir"] && cfg.RefDir != "" {
		*refDir = cfg.RefDir
	}
	if !set["workdir"] && cfg.WorkDir != "" {
		*workDir = cfg.WorkDir
	}
	if !set["del"] && cfg.DeletionThreshold != 0 {
		*delThreshold = cfg.DeletionThreshold
	}
	if !set["dup"] && cfg.DuplicationThreshold != 0 {
		*dupThreshold = cfg.DuplicationThreshold
	}
}
