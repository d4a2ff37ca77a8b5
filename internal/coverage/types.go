// Package coverage implements the per-sample coverage aggregation engine:
// threshold classification of exons, low-coverage region extraction,
// variant-depth intersection and report summarisation.
package coverage

// ExonStat is one exon's coverage summary, one row of the exon stats table.
type ExonStat struct {
	Gene      string
	Tx        string
	Chrom     int
	Exon      int
	ExonStart int64
	ExonEnd   int64
	Min       int
	Mean      float64
	Max       int
	// Thresholds maps a depth column name such as "20x" to the percent of
	// exon bases covered at or above that depth, 0..100.
	Thresholds map[string]int
}

// GeneSummary is one row of the per-gene stats table. Only the gene name
// participates in the report counters; the remaining columns pass through.
type GeneSummary struct {
	Gene   string
	Fields []string
}

// RawCoverage is one per-base coverage bucket of an exon. CovStart and
// CovEnd bound the bucket inclusively; Cov is the read depth observed
// across it.
type RawCoverage struct {
	Chrom     int
	ExonStart int64
	ExonEnd   int64
	Gene      string
	Tx        string
	Exon      int
	CovStart  int64
	CovEnd    int64
	Cov       int
}

// VariantCoverage is a variant matched to an exon interval with the read
// depth at its position attached.
type VariantCoverage struct {
	Gene     string
	Exon     int
	Chrom    string
	Pos      int64
	ID       string
	Ref      string
	Alt      string
	Coverage int
}

// Counters are the scalar values surfaced at the top of the report.
type Counters struct {
	TotalGenes int
	GeneIssues int
	ExonIssues int
}

// SummaryRow is one pivoted exon row. Values holds the numeric columns in
// the order given by Summary.Columns.
type SummaryRow struct {
	Gene      string
	Tx        string
	Chrom     int
	Exon      int
	ExonStart int64
	ExonEnd   int64
	Min       int
	Mean      float64
	Max       int
	// Percents holds the threshold column values aligned with the
	// threshold names in Summary.Columns[3:].
	Percents []int
}

// Summary is a pivoted exon-stats view with a canonical column order:
// min, mean, max, then the depth columns as they appeared in the input.
type Summary struct {
	Columns []string
	Rows    []SummaryRow
}

type exonKey struct {
	gene string
	exon int
}

type groupKey struct {
	gene  string
	tx    string
	chrom int
	exon  int
	start int64
	end   int64
}
