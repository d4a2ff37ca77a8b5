package tabular

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/eastgenomics/eggd-coverage-report/internal/coverage"
)

// ExonStats is the parsed exon stats table. Thresholds lists the depth
// column names in header order, e.g. ["10x", "20x", "30x", "50x", "100x"].
type ExonStats struct {
	Rows       []coverage.ExonStat
	Thresholds []string
}

var thresholdColumn = regexp.MustCompile(`^[0-9]+x$`)

var exonStatsRequired = []string{
	"gene", "tx", "chrom", "exon", "exon_start", "exon_end", "min", "mean", "max",
}

// LoadExonStats parses an exon stats file: tab-separated with a header row
// naming the columns.
func LoadExonStats(path string) (*ExonStats, error) {
	r, err := openLineReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return parseExonStats(r)
}

// ParseExonStats parses exon stats from a reader. name is used in error
// messages.
func ParseExonStats(r io.Reader, name string) (*ExonStats, error) {
	return parseExonStats(newLineReader(r, name))
}

func parseExonStats(r *lineReader) (*ExonStats, error) {
	header, err := r.next()
	if err != nil {
		if err == io.EOF {
			return nil, &MalformedInputError{File: r.path, Line: 0, Reason: "empty exon stats file"}
		}
		return nil, err
	}

	names := strings.Split(header, "\t")
	index := make(map[string]int, len(names))
	var thresholds []string
	for i, name := range names {
		index[name] = i
		if thresholdColumn.MatchString(name) {
			thresholds = append(thresholds, name)
		}
	}

	for _, name := range exonStatsRequired {
		if _, ok := index[name]; !ok {
			return nil, &MalformedInputError{
				File:   r.path,
				Line:   r.lineNumber,
				Column: name,
				Reason: "required column missing from header",
			}
		}
	}

	stats := &ExonStats{Thresholds: thresholds}

	for {
		line, err := r.next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return nil, err
		}

		fields := strings.Split(line, "\t")
		if len(fields) < len(names) {
			return nil, &MalformedInputError{
				File:   r.path,
				Line:   r.lineNumber,
				Reason: "fewer fields than header columns",
			}
		}

		row := coverage.ExonStat{
			Gene:       fields[index["gene"]],
			Tx:         fields[index["tx"]],
			Thresholds: make(map[string]int, len(thresholds)),
		}

		if row.Chrom, err = r.intField(fields, index, "chrom"); err != nil {
			return nil, err
		}
		if row.Exon, err = r.intField(fields, index, "exon"); err != nil {
			return nil, err
		}
		if row.ExonStart, err = r.int64Field(fields, index, "exon_start"); err != nil {
			return nil, err
		}
		if row.ExonEnd, err = r.int64Field(fields, index, "exon_end"); err != nil {
			return nil, err
		}
		if row.Min, err = r.intField(fields, index, "min"); err != nil {
			return nil, err
		}
		if row.Max, err = r.intField(fields, index, "max"); err != nil {
			return nil, err
		}

		mean := fields[index["mean"]]
		row.Mean, err = strconv.ParseFloat(mean, 64)
		if err != nil {
			return nil, &MalformedInputError{
				File:   r.path,
				Line:   r.lineNumber,
				Column: "mean",
				Value:  mean,
				Reason: "not a number",
			}
		}

		if row.ExonStart >= row.ExonEnd {
			return nil, &MalformedInputError{
				File:   r.path,
				Line:   r.lineNumber,
				Column: "exon_start",
				Value:  fields[index["exon_start"]],
				Reason: "exon_start must be below exon_end",
			}
		}

		for _, name := range thresholds {
			pct, err := r.intField(fields, index, name)
			if err != nil {
				return nil, err
			}
			if pct < 0 || pct > 100 {
				return nil, &MalformedInputError{
					File:   r.path,
					Line:   r.lineNumber,
					Column: name,
					Value:  fields[index[name]],
					Reason: "percent outside 0..100",
				}
			}
			row.Thresholds[name] = pct
		}

		stats.Rows = append(stats.Rows, row)
	}
}

func (r *lineReader) intField(fields []string, index map[string]int, name string) (int, error) {
	v, err := strconv.Atoi(fields[index[name]])
	if err != nil {
		return 0, &MalformedInputError{
			File:   r.path,
			Line:   r.lineNumber,
			Column: name,
			Value:  fields[index[name]],
			Reason: "not an integer",
		}
	}
	return v, nil
}

func (r *lineReader) int64Field(fields []string, index map[string]int, name string) (int64, error) {
	v, err := strconv.ParseInt(fields[index[name]], 10, 64)
	if err != nil {
		return 0, &MalformedInputError{
			File:   r.path,
			Line:   r.lineNumber,
			Column: name,
			Value:  fields[index[name]],
			Reason: "not an integer",
		}
	}
	return v, nil
}
