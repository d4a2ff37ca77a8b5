package coverage

// Extract selects the raw coverage rows belonging to the inadequate exons.
// Membership is decided by (gene, exon) identity alone: the key set built
// from the inadequate partition is a set, so duplicate keys have no
// multiplicity, and positions play no part. Output preserves the original
// raw-coverage row order.
//
// Where the same (gene, exon) pair is annotated on more than one
// transcript, rows for every matching transcript are returned; no
// disambiguation by transcript is attempted.
func (e *Engine) Extract(inadequate []ExonStat, raw []RawCoverage) []RawCoverage {
	if len(inadequate) == 0 {
		return nil
	}

	keys := make(map[exonKey]struct{}, len(inadequate))
	for _, row := range inadequate {
		keys[exonKey{gene: row.Gene, exon: row.Exon}] = struct{}{}
	}

	var out []RawCoverage
	for _, row := range raw {
		if _, ok := keys[exonKey{gene: row.Gene, exon: row.Exon}]; ok {
			out = append(out, row)
		}
	}

	return out
}
