package tabular

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exonStatsInput = `gene	tx	chrom	exon	exon_start	exon_end	min	mean	max	10x	20x	30x	50x	100x
BRCA1	NM_007294	17	3	41244900	41245100	15	28.42	55	100	80	44	10	0
BRCA1	NM_007294	17	4	41245500	41245800	30	110.00	250	100	100	100	95	60
`

func TestParseExonStats(t *testing.T) {
	stats, err := ParseExonStats(strings.NewReader(exonStatsInput), "stats.tsv")
	require.NoError(t, err)

	assert.Equal(t, []string{"10x", "20x", "30x", "50x", "100x"}, stats.Thresholds)
	require.Len(t, stats.Rows, 2)

	row := stats.Rows[0]
	assert.Equal(t, "BRCA1", row.Gene)
	assert.Equal(t, "NM_007294", row.Tx)
	assert.Equal(t, 17, row.Chrom)
	assert.Equal(t, 3, row.Exon)
	assert.Equal(t, int64(41244900), row.ExonStart)
	assert.Equal(t, int64(41245100), row.ExonEnd)
	assert.Equal(t, 15, row.Min)
	assert.InDelta(t, 28.42, row.Mean, 1e-9)
	assert.Equal(t, 55, row.Max)
	assert.Equal(t, 80, row.Thresholds["20x"])
}

func TestParseExonStats_MissingColumn(t *testing.T) {
	input := "gene\ttx\tchrom\texon\texon_start\texon_end\tmin\tmean\n"
	_, err := ParseExonStats(strings.NewReader(input), "stats.tsv")
	require.Error(t, err)

	var miErr *MalformedInputError
	require.True(t, errors.As(err, &miErr))
	assert.Equal(t, "stats.tsv", miErr.File)
	assert.Equal(t, "max", miErr.Column)
}

func TestParseExonStats_NonNumeric(t *testing.T) {
	input := strings.ReplaceAll(exonStatsInput, "41244900", "oops")
	_, err := ParseExonStats(strings.NewReader(input), "stats.tsv")
	require.Error(t, err)

	var miErr *MalformedInputError
	require.True(t, errors.As(err, &miErr))
	assert.Equal(t, 2, miErr.Line)
	assert.Equal(t, "exon_start", miErr.Column)
	assert.Equal(t, "oops", miErr.Value)
}

func TestParseExonStats_InvertedInterval(t *testing.T) {
	input := strings.ReplaceAll(exonStatsInput, "41245100", "41244000")
	_, err := ParseExonStats(strings.NewReader(input), "stats.tsv")
	require.Error(t, err)

	var miErr *MalformedInputError
	require.True(t, errors.As(err, &miErr))
	assert.Contains(t, miErr.Reason, "exon_start")
}

func TestParseExonStats_PercentOutOfRange(t *testing.T) {
	input := strings.ReplaceAll(exonStatsInput, "\t80\t", "\t101\t")
	_, err := ParseExonStats(strings.NewReader(input), "stats.tsv")
	require.Error(t, err)

	var miErr *MalformedInputError
	require.True(t, errors.As(err, &miErr))
	assert.Equal(t, "20x", miErr.Column)
}

func TestParseExonStats_Empty(t *testing.T) {
	_, err := ParseExonStats(strings.NewReader(""), "stats.tsv")
	require.Error(t, err)
}

func TestParseExonStats_HeaderOnly(t *testing.T) {
	header := strings.SplitN(exonStatsInput, "\n", 2)[0] + "\n"
	stats, err := ParseExonStats(strings.NewReader(header), "stats.tsv")
	require.NoError(t, err)
	assert.Empty(t, stats.Rows)
}
