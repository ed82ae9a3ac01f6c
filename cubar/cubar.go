/*

Cubar computes codon usage bias statistics over a set of coding
sequences: the effective number of codons (ENC), relative synonymous
codon usage (RSCU), the codon adaptation index (CAI), the fraction of
optimal codons (Fop) and the tRNA adaptation index (tAI), together
with regression-based optimal codon inference.

The basic usage looks like this:

	cubar -index enc,cai genes.fst

, this will check the coding sequences, compute ENC and CAI for every
gene and print a per-gene table.

Optimal codons and Fop:

	cubar -index optimal,fop -alpha 0.01 genes.fst

tAI from a tRNA gene copy number table:

	cubar -index tai -trna trna.tsv genes.fst

To see all the options run:

	cubar -h

*/
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"github.com/ZiBuZiBu/cubar/bio"
	"github.com/ZiBuZiBu/cubar/codon"
	"github.com/ZiBuZiBu/cubar/optimal"
	"github.com/ZiBuZiBu/cubar/store"
	"github.com/ZiBuZiBu/cubar/trna"
	"github.com/ZiBuZiBu/cubar/usage"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("cubar")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("cubar", "codon usage bias statistics").Version(version)

	// input sequences
	seqFileName = app.Arg("sequences", "coding sequences (FASTA)").Required().ExistingFile()

	// analysis parameters
	gcodeID = app.Flag("gcode", "NCBI genetic code id, standard by default").Default("1").Int()
	indices = app.Flag("index", "comma separated indices to compute "+
		"(enc, cai, fop, tai, gc, gc3, rscu, optimal)").Default("enc").String()
	refFileName  = app.Flag("ref", "reference gene set (FASTA) for CAI weights; the input set is used when absent").ExistingFile()
	trnaFileName = app.Flag("trna", "anticodon gene copy number table for tAI").ExistingFile()
	alpha        = app.Flag("alpha", "q-value cutoff for optimal codon classification").Default("0.01").Float64()
	minGenes     = app.Flag("mingenes", "minimum genes per subfamily for the regression").Default("3").Int()

	// sequence checks
	noQC    = app.Flag("noqc", "skip all coding sequence checks").Bool()
	noStart = app.Flag("nostart", "don't require a start codon").Bool()
	noStop  = app.Flag("nostop", "don't require a terminal stop codon").Bool()
	noIStop = app.Flag("noistop", "don't reject internal stop codons").Bool()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	outF     = app.Flag("out", "write the per-gene table (TSV) to a file").String()
	tableF   = app.Flag("codontable", "write the per-codon table (RSCU, weights, regressions) to a file").String()
	jsonF    = app.Flag("json", "write json summary to a file").String()
	dbFile   = app.Flag("db", "save results to a bolt database").String()
	runName  = app.Flag("run", "run name used in the result database").Default("default").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

// fmtValue formats a float for the TSV output, NaN becomes NA.
func fmtValue(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return fmt.Sprintf("%.6g", v)
}

// readCounts parses a FASTA file, applies the sequence checks and
// returns the codon count matrix together with the exclusion report.
func readCounts(fileName string, gcode *bio.GeneticCode, checks bio.CDSChecks) (*codon.CountMatrix, []bio.Exclusion, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	seqs, err := bio.ParseFasta(f)
	if err != nil {
		return nil, nil, err
	}

	var excluded []bio.Exclusion
	if !*noQC {
		var qcErr error
		seqs, excluded, qcErr = bio.CheckCDS(seqs, gcode, checks)
		if qcErr != nil {
			log.Warningf("%s: %v", fileName, qcErr)
			for _, e := range excluded {
				log.Infof("excluded %v", e)
			}
		}
	}
	if len(seqs) == 0 {
		return nil, excluded, fmt.Errorf("%s: no sequences left after checks", fileName)
	}

	cseqs, err := codon.ToCodonSequences(seqs, gcode)
	if err != nil {
		return nil, excluded, err
	}
	log.Infof("Read %d coding sequences, %d ambiguous codons", len(cseqs), cseqs.NAmbiguous())

	m, err := codon.CountCodons(cseqs)
	return m, excluded, err
}

// caiWeights builds relative adaptiveness weights from the reference
// set, or from the input set itself when no reference was supplied.
func caiWeights(m *codon.CountMatrix, gcode *bio.GeneticCode, checks bio.CDSChecks) (usage.Weights, error) {
	ref := m
	if *refFileName != "" {
		var err error
		ref, _, err = readCounts(*refFileName, gcode, checks)
		if err != nil {
			return usage.Weights{}, err
		}
		log.Infof("CAI reference: %d genes from %s", len(ref.Names), *refFileName)
	} else {
		log.Warning("No CAI reference set, using the input set")
	}
	return usage.EstimateRSCU(ref).Weights(), nil
}

func run() (summary *RunSummary, err error) {
	startTime := time.Now()
	summary = &RunSummary{
		Version:     version,
		CommandLine: os.Args,
		GCodeID:     *gcodeID,
	}

	gcode, err := bio.GetGeneticCode(*gcodeID)
	if err != nil {
		return summary, err
	}
	log.Infof("Genetic code: %d, \"%s\"", gcode.ID, gcode.Name)

	checks := bio.DefaultCDSChecks
	checks.Start = !*noStart
	checks.Stop = !*noStop
	checks.InternalStop = !*noIStop

	m, excluded, err := readCounts(*seqFileName, gcode, checks)
	if err != nil {
		return summary, err
	}
	summary.NSequences = len(m.Names)
	summary.NExcluded = len(excluded)
	for _, e := range excluded {
		summary.Excluded = append(summary.Excluded, e.String())
	}

	requested := make(map[string]bool)
	for _, name := range strings.Split(*indices, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}
		switch name {
		case "enc", "cai", "fop", "tai", "gc", "gc3", "rscu", "optimal":
			requested[name] = true
		default:
			return summary, fmt.Errorf("unknown index: %s", name)
		}
	}
	if requested["fop"] {
		// Fop needs the optimal codon set
		requested["optimal"] = true
	}

	// per-gene index tables in a stable column order
	columns := []string{}
	tables := map[string]map[string]float64{}
	addTable := func(name string, values map[string]float64) {
		columns = append(columns, name)
		tables[name] = values
		summary.Indices = append(summary.Indices, name)
	}

	var rscu usage.RSCU
	var results []optimal.Result

	if requested["enc"] || requested["optimal"] {
		log.Info("Computing ENC")
		addTable("enc", usage.ENC(m))
	}
	if requested["gc"] {
		addTable("gc", usage.GC(m))
	}
	if requested["gc3"] {
		addTable("gc3", usage.GC3(m))
	}
	if requested["rscu"] {
		log.Info("Computing RSCU")
		rscu = usage.EstimateRSCU(m)
	}
	if requested["cai"] {
		log.Info("Computing CAI")
		w, err := caiWeights(m, gcode, checks)
		if err != nil {
			return summary, err
		}
		addTable("cai", usage.CAI(m, w))
	}
	if requested["optimal"] {
		log.Infof("Estimating optimal codons (alpha=%v)", *alpha)
		results, err = optimal.Estimate(m, optimal.Options{Alpha: *alpha, MinGenes: *minGenes})
		if err != nil {
			return summary, err
		}
		set := optimal.OptimalSet(results)
		for cd := range set {
			summary.OptimalCodons = append(summary.OptimalCodons, cd)
		}
		sort.Strings(summary.OptimalCodons)
		for _, r := range results {
			if !math.IsNaN(r.P) {
				summary.Regressions = append(summary.Regressions, r)
			}
		}
		log.Noticef("Found %d optimal codons", len(summary.OptimalCodons))
		if requested["fop"] {
			log.Info("Computing Fop")
			addTable("fop", usage.Fop(m, set))
		}
	}
	if requested["tai"] {
		if *trnaFileName == "" {
			return summary, fmt.Errorf("tai requires an anticodon copy number table (-trna)")
		}
		f, err := os.Open(*trnaFileName)
		if err != nil {
			return summary, err
		}
		copies, err := trna.ReadCopies(f)
		f.Close()
		if err != nil {
			return summary, err
		}
		log.Infof("Read %d anticodons from %s", len(copies), *trnaFileName)
		w := trna.Weights(copies, gcode, trna.DefaultConstraints)
		log.Info("Computing tAI")
		addTable("tai", usage.TAI(m, w))
	}

	if err = writeGeneTable(m, columns, tables); err != nil {
		return summary, err
	}
	if err = writeCodonTable(gcode, rscu, results); err != nil {
		return summary, err
	}
	if err = saveResults(m, columns, tables); err != nil {
		return summary, err
	}

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	return summary, nil
}

// writeGeneTable prints the per-gene TSV to stdout or the -out file.
func writeGeneTable(m *codon.CountMatrix, columns []string, tables map[string]map[string]float64) error {
	if len(columns) == 0 {
		return nil
	}
	f := os.Stdout
	if *outF != "" {
		var err error
		f, err = os.Create(*outF)
		if err != nil {
			return err
		}
		defer f.Close()
	}

	fmt.Fprintf(f, "gene\tncodons\t%s\n", strings.Join(columns, "\t"))
	for _, name := range m.Names {
		row := []string{name, fmt.Sprintf("%d", m.Counts[name].Total())}
		for _, col := range columns {
			row = append(row, fmtValue(tables[col][name]))
		}
		fmt.Fprintln(f, strings.Join(row, "\t"))
	}
	return nil
}

// writeCodonTable prints the per-codon table (RSCU, weights and the
// optimal codon regressions) when requested.
func writeCodonTable(gcode *bio.GeneticCode, rscu usage.RSCU, results []optimal.Result) error {
	if rscu.Values == nil && results == nil {
		return nil
	}
	f := os.Stdout
	if *tableF != "" {
		var err error
		f, err = os.Create(*tableF)
		if err != nil {
			return err
		}
		defer f.Close()
	}

	byCodon := make(map[string]optimal.Result, len(results))
	for _, r := range results {
		byCodon[r.Codon] = r
	}

	var weights usage.Weights
	if rscu.Values != nil {
		weights = rscu.Weights()
	}

	fmt.Fprintln(f, "codon\taa\tsubfamily\trscu\tweight\tslope\tpvalue\tqvalue\toptimal")
	for n := 0; n < gcode.NCodon; n++ {
		cd := gcode.NumCodon[byte(n)]
		sf := gcode.Subfamilies[gcode.SubfamilyOf[cd]]
		rscuV, weightV := math.NaN(), math.NaN()
		if rscu.Values != nil {
			rscuV = rscu.Values[n]
			weightV = weights.Values[n]
		}
		r, tested := byCodon[cd]
		slope, p, q := math.NaN(), math.NaN(), math.NaN()
		opt := ""
		if tested {
			slope, p, q = r.Slope, r.P, r.Q
			opt = fmt.Sprintf("%v", r.Optimal)
		}
		fmt.Fprintf(f, "%s\t%c\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			cd, gcode.AA(cd), sf.Label(),
			fmtValue(rscuV), fmtValue(weightV),
			fmtValue(slope), fmtValue(p), fmtValue(q), opt)
	}
	return nil
}

// saveResults stores the per-gene tables in the bolt database when
// -db was given.
func saveResults(m *codon.CountMatrix, columns []string, tables map[string]map[string]float64) error {
	if *dbFile == "" {
		return nil
	}
	s, err := store.Open(*dbFile)
	if err != nil {
		return err
	}
	defer s.Close()
	for _, col := range columns {
		rs := store.NewResultSet(col, m.GCode.ID, tables[col])
		rs.Sequence = *seqFileName
		if err := s.Save(*runName, rs); err != nil {
			return err
		}
	}
	log.Infof("Saved %d result sets to %s (run %s)", len(columns), *dbFile, *runName)
	return nil
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "cubar")
	logging.SetLevel(level, "store")

	summary, err := run()
	if err != nil {
		log.Fatal(err)
	}

	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error("Error marshaling summary:", err)
		} else {
			if err := os.WriteFile(*jsonF, j, 0644); err != nil {
				log.Error("Error writing summary:", err)
			}
		}
	}
}
