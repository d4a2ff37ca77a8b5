package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testThresholds = []string{"10x", "20x", "30x", "50x", "100x"}

func TestSummarize_Counters(t *testing.T) {
	geneSummary := []GeneSummary{
		{Gene: "BRCA1"},
		{Gene: "BRCA2"},
		{Gene: "TP53"},
		{Gene: "TP53"}, // duplicate row, counted once
	}
	stats := []ExonStat{
		testStat("BRCA1", 1, 80),
		testStat("BRCA1", 2, 70),
		testStat("TP53", 1, 100),
	}
	inadequate := []ExonStat{stats[0], stats[1]}

	counters, _, _ := New(20).Summarize(stats, inadequate, geneSummary, testThresholds)

	assert.Equal(t, 3, counters.TotalGenes)
	assert.Equal(t, 1, counters.GeneIssues)
	assert.Equal(t, 2, counters.ExonIssues)
}

func TestSummarize_PivotColumnOrder(t *testing.T) {
	stats := []ExonStat{testStat("BRCA1", 1, 80)}

	_, all, _ := New(20).Summarize(stats, nil, nil, testThresholds)

	assert.Equal(t, []string{"min", "mean", "max", "10x", "20x", "30x", "50x", "100x"}, all.Columns)
	require.Len(t, all.Rows, 1)
	assert.Equal(t, []int{100, 80, 90, 60, 5}, all.Rows[0].Percents)
	assert.Equal(t, 12, all.Rows[0].Min)
	assert.InDelta(t, 87.5, all.Rows[0].Mean, 1e-9)
	assert.Equal(t, 310, all.Rows[0].Max)
}

func TestSummarize_PivotSorted(t *testing.T) {
	stats := []ExonStat{
		testStat("TP53", 2, 100),
		testStat("BRCA1", 2, 100),
		testStat("BRCA1", 1, 100),
	}

	_, all, _ := New(20).Summarize(stats, nil, nil, testThresholds)

	require.Len(t, all.Rows, 3)
	assert.Equal(t, "BRCA1", all.Rows[0].Gene)
	assert.Equal(t, 1, all.Rows[0].Exon)
	assert.Equal(t, "BRCA1", all.Rows[1].Gene)
	assert.Equal(t, 2, all.Rows[1].Exon)
	assert.Equal(t, "TP53", all.Rows[2].Gene)
}

func TestSummarize_DuplicateGroupKeepsFirst(t *testing.T) {
	first := testStat("BRCA1", 1, 80)
	second := testStat("BRCA1", 1, 100)
	second.Min = 99

	_, all, _ := New(20).Summarize([]ExonStat{first, second}, nil, nil, testThresholds)

	require.Len(t, all.Rows, 1)
	assert.Equal(t, 12, all.Rows[0].Min)
}

func TestSummarize_InadequateViewRestricted(t *testing.T) {
	stats := []ExonStat{
		testStat("BRCA1", 1, 80),
		testStat("BRCA1", 2, 100),
	}
	inadequate := []ExonStat{stats[0]}

	_, all, bad := New(20).Summarize(stats, inadequate, nil, testThresholds)

	assert.Len(t, all.Rows, 2)
	require.Len(t, bad.Rows, 1)
	assert.Equal(t, 1, bad.Rows[0].Exon)
	assert.Equal(t, all.Columns, bad.Columns)
}

func TestSummarize_Empty(t *testing.T) {
	counters, all, bad := New(20).Summarize(nil, nil, nil, testThresholds)

	assert.Equal(t, Counters{}, counters)
	assert.Empty(t, all.Rows)
	assert.Empty(t, bad.Rows)
}
