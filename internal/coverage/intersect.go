package coverage

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/eastgenomics/eggd-coverage-report/internal/vcf"
)

type intervalKey struct {
	chrom string
	start int64
	end   int64
}

type variantKey struct {
	chrom string
	pos   int64
	ref   string
	alt   string
}

// Intersect matches variants against the exon intervals present in the raw
// coverage table and attaches the read depth at each matched position.
// Matches are split at the engine threshold: coverage below it goes to low,
// the rest to high. Variants outside every exon interval are dropped.
//
// Containment is inclusive at both interval ends. Chromosome names from the
// two sources are normalised to plain strings before comparison, since the
// coverage tables carry numeric chromosomes and variant input may not.
//
// The join runs in two stages to keep memory bounded by the number of
// distinct exon intervals rather than the raw row count: variants are first
// matched against the distinct intervals, then depth is resolved only for
// the intervals something actually hit. One output row is produced per
// physical variant: duplicates keyed on (chrom, pos, ref, alt) collapse to
// the first occurrence, and when a position falls inside more than one exon
// interval the interval seen earliest in the raw table wins.
func (e *Engine) Intersect(variants []vcf.Variant, raw []RawCoverage) (low, high []VariantCoverage) {
	if len(variants) == 0 || len(raw) == 0 {
		return nil, nil
	}

	// Stage 1: distinct exon intervals, first-occurrence order retained.
	order := make(map[intervalKey]int)
	var byOrd []intervalKey
	byChrom := make(map[string][]treeEntry)
	for _, row := range raw {
		k := intervalKey{chrom: chromName(row.Chrom), start: row.ExonStart, end: row.ExonEnd}
		if _, ok := order[k]; ok {
			continue
		}
		order[k] = len(byOrd)
		byChrom[k.chrom] = append(byChrom[k.chrom], treeEntry{start: k.start, end: k.end, ord: order[k]})
		byOrd = append(byOrd, k)
	}

	trees := make(map[string]*intervalTree, len(byChrom))
	for chrom, entries := range byChrom {
		trees[chrom] = buildIntervalTree(entries)
	}

	type match struct {
		variant vcf.Variant
		chrom   string
		key     intervalKey
	}

	var matches []match
	needed := make(map[intervalKey]struct{})
	seen := make(map[variantKey]struct{})
	var outside, duplicates int

	for _, v := range variants {
		chrom := v.NormalizeChrom()
		tree, ok := trees[chrom]
		if !ok {
			outside++
			continue
		}
		hits := tree.containing(v.Pos)
		if len(hits) == 0 {
			outside++
			continue
		}

		vk := variantKey{chrom: chrom, pos: v.Pos, ref: v.Ref, alt: v.Alt}
		if _, ok := seen[vk]; ok {
			duplicates++
			continue
		}
		seen[vk] = struct{}{}

		best := hits[0]
		for _, h := range hits[1:] {
			if h.ord < best.ord {
				best = h
			}
		}
		k := byOrd[best.ord]
		needed[k] = struct{}{}
		matches = append(matches, match{variant: v, chrom: chrom, key: k})
	}

	if outside > 0 {
		e.logger.Info("variants outside capture dropped", zap.Int("count", outside))
	}
	if duplicates > 0 {
		e.logger.Info("duplicate variants collapsed", zap.Int("count", duplicates))
	}
	if len(matches) == 0 {
		return nil, nil
	}

	// Stage 2: gather raw rows only for the intervals that were hit.
	rows := make(map[intervalKey][]RawCoverage, len(needed))
	for _, row := range raw {
		k := intervalKey{chrom: chromName(row.Chrom), start: row.ExonStart, end: row.ExonEnd}
		if _, ok := needed[k]; ok {
			rows[k] = append(rows[k], row)
		}
	}

	for _, m := range matches {
		group := rows[m.key]
		gene := group[0].Gene
		exon := group[0].Exon

		// The first bucket containing the position supplies the depth;
		// later buckets covering the same base are ignored. A position in
		// a bucket gap has no observed reads, so its depth is zero.
		cov := 0
		for _, r := range group {
			if r.CovStart <= m.variant.Pos && m.variant.Pos <= r.CovEnd {
				cov = r.Cov
				gene = r.Gene
				exon = r.Exon
				break
			}
		}

		vc := VariantCoverage{
			Gene:     gene,
			Exon:     exon,
			Chrom:    m.chrom,
			Pos:      m.variant.Pos,
			ID:       m.variant.ID,
			Ref:      m.variant.Ref,
			Alt:      m.variant.Alt,
			Coverage: cov,
		}
		if cov < e.threshold {
			low = append(low, vc)
		} else {
			high = append(high, vc)
		}
	}

	return low, high
}

func chromName(chrom int) string {
	return strconv.Itoa(chrom)
}
