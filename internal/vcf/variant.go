// Package vcf parses variant positions from VCF-like tab-separated input.
package vcf

// Variant is a single point variant taken from the first five columns of a
// VCF-like line.
type Variant struct {
	Chrom string // chromosome name as written in the input (e.g. "17", "chr17")
	Pos   int64  // 1-based genomic position
	ID    string // variant identifier (e.g. rs ID)
	Ref   string // reference allele
	Alt   string // alternate allele
}

// NormalizeChrom returns the chromosome name without "chr" prefix, so it
// compares equal to the numeric chromosomes in the coverage tables.
func (v *Variant) NormalizeChrom() string {
	if len(v.Chrom) > 3 && v.Chrom[:3] == "chr" {
		return v.Chrom[3:]
	}
	return v.Chrom
}
