package coverage

import (
	"sort"

	"go.uber.org/zap"
)

// Classify partitions exon stats rows at the engine threshold. A row is
// inadequate when the percent of bases covered at the threshold depth is
// below 100, i.e. at least one base of the exon falls short. The two
// returned slices together hold every input row exactly once, in input
// order.
//
// An empty input yields two empty partitions, not an error. A threshold
// with no matching depth column yields UnknownThresholdError.
func (e *Engine) Classify(stats []ExonStat) (inadequate, adequate []ExonStat, err error) {
	column := ThresholdColumn(e.threshold)

	inadequate = make([]ExonStat, 0, len(stats))
	adequate = make([]ExonStat, 0, len(stats))

	for _, row := range stats {
		pct, ok := row.Thresholds[column]
		if !ok {
			return nil, nil, &UnknownThresholdError{
				Threshold: e.threshold,
				Columns:   thresholdColumns(row),
			}
		}
		if pct < 100 {
			inadequate = append(inadequate, row)
		} else {
			adequate = append(adequate, row)
		}
	}

	if len(stats) > 0 && len(inadequate) == 0 {
		e.logger.Info("no exons below threshold", zap.String("column", column))
	}

	return inadequate, adequate, nil
}

func thresholdColumns(row ExonStat) []string {
	cols := make([]string, 0, len(row.Thresholds))
	for name := range row.Thresholds {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	return cols
}
