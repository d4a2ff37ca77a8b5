package tabular

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeneStats(t *testing.T) {
	input := "gene	tx	min	mean	max\nBRCA1	NM_007294	15	98.20	250\nTP53	NM_000546	40	180.11	400\n"

	rows, err := ParseGeneStats(strings.NewReader(input), "genes.tsv")
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "BRCA1", rows[0].Gene)
	assert.Equal(t, "TP53", rows[1].Gene)
	// Remaining columns pass through untouched.
	assert.Equal(t, []string{"BRCA1", "NM_007294", "15", "98.20", "250"}, rows[0].Fields)
}

func TestParseGeneStats_GeneNotFirstColumn(t *testing.T) {
	input := "tx	gene\nNM_007294	BRCA1\n"

	rows, err := ParseGeneStats(strings.NewReader(input), "genes.tsv")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "BRCA1", rows[0].Gene)
}

func TestParseGeneStats_MissingGeneColumn(t *testing.T) {
	input := "tx	min	max\nNM_007294	15	250\n"

	_, err := ParseGeneStats(strings.NewReader(input), "genes.tsv")
	require.Error(t, err)

	var miErr *MalformedInputError
	require.True(t, errors.As(err, &miErr))
	assert.Equal(t, "gene", miErr.Column)
}

func TestParseGeneStats_Empty(t *testing.T) {
	_, err := ParseGeneStats(strings.NewReader(""), "genes.tsv")
	require.Error(t, err)
}
