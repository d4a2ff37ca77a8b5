package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRaw(gene string, exon int, covStart, covEnd int64, cov int) RawCoverage {
	return RawCoverage{
		Chrom:     17,
		ExonStart: 41244000,
		ExonEnd:   41244500,
		Gene:      gene,
		Tx:        "NM_000001",
		Exon:      exon,
		CovStart:  covStart,
		CovEnd:    covEnd,
		Cov:       cov,
	}
}

func TestExtract_SemiJoin(t *testing.T) {
	raw := []RawCoverage{
		testRaw("BRCA1", 1, 41244000, 41244100, 5),
		testRaw("BRCA1", 2, 41244100, 41244200, 50),
		testRaw("TP53", 1, 41244000, 41244100, 8),
		testRaw("BRCA1", 1, 41244100, 41244500, 12),
	}
	inadequate := []ExonStat{
		testStat("BRCA1", 1, 80),
		testStat("TP53", 1, 99),
	}

	out := New(20).Extract(inadequate, raw)

	// Both rows of BRCA1 exon 1 plus the TP53 row, original order kept.
	assert.Len(t, out, 3)
	assert.Equal(t, "BRCA1", out[0].Gene)
	assert.Equal(t, int64(41244000), out[0].CovStart)
	assert.Equal(t, "TP53", out[1].Gene)
	assert.Equal(t, "BRCA1", out[2].Gene)
	assert.Equal(t, int64(41244100), out[2].CovStart)
}

func TestExtract_DuplicateKeysIdempotent(t *testing.T) {
	raw := []RawCoverage{testRaw("BRCA1", 1, 41244000, 41244100, 5)}
	inadequate := []ExonStat{
		testStat("BRCA1", 1, 80),
		testStat("BRCA1", 1, 70), // same (gene, exon) twice
	}

	out := New(20).Extract(inadequate, raw)
	assert.Len(t, out, 1)
}

func TestExtract_Monotonic(t *testing.T) {
	raw := []RawCoverage{
		testRaw("BRCA1", 1, 41244000, 41244100, 5),
		testRaw("TP53", 1, 41244000, 41244100, 8),
	}
	engine := New(20)

	small := engine.Extract([]ExonStat{testStat("BRCA1", 1, 80)}, raw)
	large := engine.Extract([]ExonStat{testStat("BRCA1", 1, 80), testStat("TP53", 1, 99)}, raw)

	// A superset key set can only grow the output.
	assert.GreaterOrEqual(t, len(large), len(small))
	assert.Subset(t, large, small)
}

func TestExtract_EmptyKeySet(t *testing.T) {
	raw := []RawCoverage{testRaw("BRCA1", 1, 41244000, 41244100, 5)}
	assert.Empty(t, New(20).Extract(nil, raw))
}
