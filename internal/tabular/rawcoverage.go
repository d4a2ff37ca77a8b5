package tabular

import (
	"io"
	"strconv"
	"strings"

	"github.com/eastgenomics/eggd-coverage-report/internal/coverage"
)

// Raw coverage files carry no header; the column order is fixed.
var rawCoverageColumns = []string{
	"chrom", "exon_start", "exon_end", "gene", "tx", "exon",
	"cov_start", "cov_end", "cov",
}

// LoadRawCoverage parses a headerless per-base coverage file.
func LoadRawCoverage(path string) ([]coverage.RawCoverage, error) {
	r, err := openLineReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return parseRawCoverage(r)
}

// ParseRawCoverage parses raw coverage rows from a reader. name is used in
// error messages.
func ParseRawCoverage(r io.Reader, name string) ([]coverage.RawCoverage, error) {
	return parseRawCoverage(newLineReader(r, name))
}

func parseRawCoverage(r *lineReader) ([]coverage.RawCoverage, error) {
	var rows []coverage.RawCoverage

	for {
		line, err := r.next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}

		fields := strings.Split(line, "\t")
		if len(fields) < len(rawCoverageColumns) {
			return nil, &MalformedInputError{
				File:   r.path,
				Line:   r.lineNumber,
				Reason: "expected 9 columns: " + strings.Join(rawCoverageColumns, ", "),
			}
		}

		row := coverage.RawCoverage{
			Gene: fields[3],
			Tx:   fields[4],
		}

		if row.Chrom, err = r.rawInt(fields, 0); err != nil {
			return nil, err
		}
		if row.ExonStart, err = r.rawInt64(fields, 1); err != nil {
			return nil, err
		}
		if row.ExonEnd, err = r.rawInt64(fields, 2); err != nil {
			return nil, err
		}
		if row.Exon, err = r.rawInt(fields, 5); err != nil {
			return nil, err
		}
		if row.CovStart, err = r.rawInt64(fields, 6); err != nil {
			return nil, err
		}
		if row.CovEnd, err = r.rawInt64(fields, 7); err != nil {
			return nil, err
		}
		if row.Cov, err = r.rawInt(fields, 8); err != nil {
			return nil, err
		}

		if row.ExonStart >= row.ExonEnd {
			return nil, &MalformedInputError{
				File:   r.path,
				Line:   r.lineNumber,
				Column: "exon_start",
				Value:  fields[1],
				Reason: "exon_start must be below exon_end",
			}
		}
		if row.CovStart > row.CovEnd {
			return nil, &MalformedInputError{
				File:   r.path,
				Line:   r.lineNumber,
				Column: "cov_start",
				Value:  fields[6],
				Reason: "cov_start must not exceed cov_end",
			}
		}

		rows = append(rows, row)
	}
}

func (r *lineReader) rawInt(fields []string, i int) (int, error) {
	v, err := strconv.Atoi(fields[i])
	if err != nil {
		return 0, &MalformedInputError{
			File:   r.path,
			Line:   r.lineNumber,
			Column: rawCoverageColumns[i],
			Value:  fields[i],
			Reason: "not an integer",
		}
	}
	return v, nil
}

func (r *lineReader) rawInt64(fields []string, i int) (int64, error) {
	v, err := strconv.ParseInt(fields[i], 10, 64)
	if err != nil {
		return 0, &MalformedInputError{
			File:   r.path,
			Line:   r.lineNumber,
			Column: rawCoverageColumns[i],
			Value:  fields[i],
			Reason: "not an integer",
		}
	}
	return v, nil
}
