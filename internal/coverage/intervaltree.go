package coverage

import "sort"

// intervalTree answers point-containment queries over exon intervals using
// a sorted-slice approach with a prefix-max array. Intervals are loaded
// once per chromosome and never modified after build. Containment is
// inclusive at both ends.
type intervalTree struct {
	intervals []treeEntry
	prefixMax []int64 // prefixMax[i] = max(end) for intervals[0..i]
}

type treeEntry struct {
	start int64
	end   int64
	// ord is the first-occurrence index of the interval in the raw
	// coverage table; it fixes the tie-break when a position falls in
	// more than one exon interval.
	ord int
}

func buildIntervalTree(entries []treeEntry) *intervalTree {
	if len(entries) == 0 {
		return &intervalTree{}
	}

	intervals := make([]treeEntry, len(entries))
	copy(intervals, entries)

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].start < intervals[j].start
	})

	prefixMax := make([]int64, len(intervals))
	prefixMax[0] = intervals[0].end
	for i := 1; i < len(intervals); i++ {
		prefixMax[i] = intervals[i].end
		if prefixMax[i-1] > prefixMax[i] {
			prefixMax[i] = prefixMax[i-1]
		}
	}

	return &intervalTree{intervals: intervals, prefixMax: prefixMax}
}

// containing returns every interval with start <= pos <= end.
func (t *intervalTree) containing(pos int64) []treeEntry {
	if len(t.intervals) == 0 {
		return nil
	}

	var result []treeEntry

	// Rightmost interval with start <= pos bounds the candidate range.
	hi := sort.Search(len(t.intervals), func(i int) bool {
		return t.intervals[i].start > pos
	})

	for i := hi - 1; i >= 0; i-- {
		// prefixMax prunes: a long interval started before a short one
		// can still reach pos, so only stop once no interval in [0, i]
		// ends at or after it.
		if t.prefixMax[i] < pos {
			break
		}
		if t.intervals[i].end >= pos {
			result = append(result, t.intervals[i])
		}
	}

	return result
}
