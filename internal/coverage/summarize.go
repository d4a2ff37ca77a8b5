package coverage

import (
	"sort"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Summarize derives the report counters and the two pivoted exon views: one
// over the full stats table and one restricted to the inadequate partition.
// thresholds gives the depth column order from the input header, which the
// pivots reproduce after min, mean and max.
func (e *Engine) Summarize(stats, inadequate []ExonStat, genes []GeneSummary, thresholds []string) (Counters, Summary, Summary) {
	counters := Counters{
		TotalGenes: len(lo.Uniq(lo.Map(genes, func(g GeneSummary, _ int) string { return g.Gene }))),
		GeneIssues: len(lo.Uniq(lo.Map(inadequate, func(s ExonStat, _ int) string { return s.Gene }))),
		// Row count, not distinct exons: an exon annotated on several
		// transcripts counts once per annotation row.
		ExonIssues: len(inadequate),
	}

	return counters, e.pivot(stats, thresholds), e.pivot(inadequate, thresholds)
}

// pivot reshapes exon stats into one row per (gene, tx, chrom, exon, start,
// end) group with a canonical numeric column order. The stats generator
// emits one row per group already; when it does not, the first row wins and
// the collision is logged rather than silently dropped.
func (e *Engine) pivot(stats []ExonStat, thresholds []string) Summary {
	columns := append([]string{"min", "mean", "max"}, thresholds...)

	seen := make(map[groupKey]struct{}, len(stats))
	rows := make([]SummaryRow, 0, len(stats))

	for _, s := range stats {
		k := groupKey{
			gene:  s.Gene,
			tx:    s.Tx,
			chrom: s.Chrom,
			exon:  s.Exon,
			start: s.ExonStart,
			end:   s.ExonEnd,
		}
		if _, ok := seen[k]; ok {
			e.logger.Warn("duplicate exon annotation in stats, keeping first",
				zap.String("gene", s.Gene),
				zap.String("tx", s.Tx),
				zap.Int("exon", s.Exon))
			continue
		}
		seen[k] = struct{}{}

		percents := make([]int, len(thresholds))
		for i, name := range thresholds {
			percents[i] = s.Thresholds[name]
		}

		rows = append(rows, SummaryRow{
			Gene:      s.Gene,
			Tx:        s.Tx,
			Chrom:     s.Chrom,
			Exon:      s.Exon,
			ExonStart: s.ExonStart,
			ExonEnd:   s.ExonEnd,
			Min:       s.Min,
			Mean:      s.Mean,
			Max:       s.Max,
			Percents:  percents,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Gene != b.Gene {
			return a.Gene < b.Gene
		}
		if a.Tx != b.Tx {
			return a.Tx < b.Tx
		}
		if a.Chrom != b.Chrom {
			return a.Chrom < b.Chrom
		}
		if a.Exon != b.Exon {
			return a.Exon < b.Exon
		}
		if a.ExonStart != b.ExonStart {
			return a.ExonStart < b.ExonStart
		}
		return a.ExonEnd < b.ExonEnd
	})

	return Summary{Columns: columns, Rows: rows}
}
