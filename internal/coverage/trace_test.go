package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraces_GroupingAndOrder(t *testing.T) {
	raw := []RawCoverage{
		testRaw("TP53", 1, 41244200, 41244300, 8),
		testRaw("BRCA1", 2, 41244100, 41244200, 12),
		testRaw("BRCA1", 2, 41244000, 41244100, 5),
	}

	traces := New(20).Traces(raw)

	require.Len(t, traces, 2)
	assert.Equal(t, "BRCA1", traces[0].Gene)
	assert.Equal(t, 2, traces[0].Exon)
	assert.Equal(t, "TP53", traces[1].Gene)

	// Buckets sorted by start position regardless of input order.
	require.Len(t, traces[0].Buckets, 2)
	assert.Equal(t, int64(41244000), traces[0].Buckets[0].Start)
	assert.Equal(t, 5, traces[0].Buckets[0].Depth)
	assert.Equal(t, int64(41244100), traces[0].Buckets[1].Start)
}

func TestTraces_MaxDepth(t *testing.T) {
	raw := []RawCoverage{
		testRaw("BRCA1", 1, 41244000, 41244100, 5),
		testRaw("BRCA1", 1, 41244100, 41244200, 42),
	}

	traces := New(20).Traces(raw)
	require.Len(t, traces, 1)
	assert.Equal(t, 42, traces[0].MaxDepth())
	assert.Equal(t, int64(500), traces[0].Length())
}

func TestTraces_Empty(t *testing.T) {
	assert.Empty(t, New(20).Traces(nil))
}
