package coverage

import "sort"

// Trace is the per-base depth profile of a single low-coverage exon,
// ordered by bucket start for plotting.
type Trace struct {
	Gene      string
	Tx        string
	Exon      int
	Chrom     int
	ExonStart int64
	ExonEnd   int64
	Buckets   []TraceBucket
}

// TraceBucket is one contiguous run of equal depth within an exon.
type TraceBucket struct {
	Start int64
	End   int64
	Depth int
}

// Length returns the exon span in bases.
func (t Trace) Length() int64 {
	return t.ExonEnd - t.ExonStart
}

// MaxDepth returns the highest bucket depth in the trace, so plots for a
// sample can share a y axis.
func (t Trace) MaxDepth() int {
	max := 0
	for _, b := range t.Buckets {
		if b.Depth > max {
			max = b.Depth
		}
	}
	return max
}

// Traces groups extracted raw coverage rows into one depth profile per
// (gene, exon), sorted by gene then exon number, with buckets ordered by
// start position.
func (e *Engine) Traces(raw []RawCoverage) []Trace {
	byExon := make(map[exonKey]*Trace)
	var keys []exonKey

	for _, row := range raw {
		k := exonKey{gene: row.Gene, exon: row.Exon}
		t, ok := byExon[k]
		if !ok {
			t = &Trace{
				Gene:      row.Gene,
				Tx:        row.Tx,
				Exon:      row.Exon,
				Chrom:     row.Chrom,
				ExonStart: row.ExonStart,
				ExonEnd:   row.ExonEnd,
			}
			byExon[k] = t
			keys = append(keys, k)
		}
		t.Buckets = append(t.Buckets, TraceBucket{
			Start: row.CovStart,
			End:   row.CovEnd,
			Depth: row.Cov,
		})
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].gene != keys[j].gene {
			return keys[i].gene < keys[j].gene
		}
		return keys[i].exon < keys[j].exon
	})

	traces := make([]Trace, 0, len(keys))
	for _, k := range keys {
		t := byExon[k]
		sort.Slice(t.Buckets, func(i, j int) bool {
			return t.Buckets[i].Start < t.Buckets[j].Start
		})
		traces = append(traces, *t)
	}

	return traces
}
