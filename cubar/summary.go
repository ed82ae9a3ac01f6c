package main

import "github.com/ZiBuZiBu/cubar/optimal"

// RunSummary stores summary information of a cubar run.
type RunSummary struct {
	// Version stores cubar version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// GCodeID is the NCBI genetic code id used.
	GCodeID int `json:"gcode"`
	// NSequences is the number of sequences passing the checks.
	NSequences int `json:"nSequences"`
	// NExcluded is the number of sequences removed by the checks.
	NExcluded int `json:"nExcluded"`
	// Excluded lists removed sequence ids with the failing check.
	Excluded []string `json:"excluded,omitempty"`
	// Indices lists the computed indices.
	Indices []string `json:"indices"`
	// OptimalCodons lists the codons classified as optimal, when
	// optimal codon estimation was performed.
	OptimalCodons []string `json:"optimalCodons,omitempty"`
	// Regressions stores the per-codon optimal codon records.
	Regressions []optimal.Result `json:"regressions,omitempty"`
	// Time is the computation time in seconds.
	Time float64 `json:"time"`
}
