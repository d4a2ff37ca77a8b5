package coverage

import (
	"fmt"
	"strings"
)

// UnknownThresholdError reports a requested depth threshold that has no
// matching column in the exon stats table. This is a configuration error:
// the run cannot proceed with a threshold the stats were never computed at.
type UnknownThresholdError struct {
	Threshold int
	Columns   []string
}

func (e *UnknownThresholdError) Error() string {
	return fmt.Sprintf("no %q column in exon stats; available depth columns: %s",
		ThresholdColumn(e.Threshold), strings.Join(e.Columns, ", "))
}

// ThresholdColumn returns the stats column name for a depth threshold,
// e.g. 20 -> "20x".
func ThresholdColumn(threshold int) string {
	return fmt.Sprintf("%dx", threshold)
}
