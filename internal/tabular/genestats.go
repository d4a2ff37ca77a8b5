package tabular

import (
	"io"
	"strings"

	"github.com/eastgenomics/eggd-coverage-report/internal/coverage"
)

// LoadGeneStats parses a gene stats file: tab-separated with a header row
// that must include a "gene" column. All other columns pass through
// untouched; only the gene name and row count feed the report.
func LoadGeneStats(path string) ([]coverage.GeneSummary, error) {
	r, err := openLineReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return parseGeneStats(r)
}

// ParseGeneStats parses gene stats from a reader. name is used in error
// messages.
func ParseGeneStats(r io.Reader, name string) ([]coverage.GeneSummary, error) {
	return parseGeneStats(newLineReader(r, name))
}

func parseGeneStats(r *lineReader) ([]coverage.GeneSummary, error) {
	header, err := r.next()
	if err != nil {
		if err == io.EOF {
			return nil, &MalformedInputError{File: r.path, Line: 0, Reason: "empty gene stats file"}
		}
		return nil, err
	}

	names := strings.Split(header, "\t")
	geneIdx := -1
	for i, name := range names {
		if name == "gene" {
			geneIdx = i
			break
		}
	}
	if geneIdx < 0 {
		return nil, &MalformedInputError{
			File:   r.path,
			Line:   r.lineNumber,
			Column: "gene",
			Reason: "required column missing from header",
		}
	}

	var rows []coverage.GeneSummary
	for {
		line, err := r.next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}

		fields := strings.Split(line, "\t")
		if len(fields) <= geneIdx {
			return nil, &MalformedInputError{
				File:   r.path,
				Line:   r.lineNumber,
				Column: "gene",
				Reason: "row has no gene field",
			}
		}

		rows = append(rows, coverage.GeneSummary{Gene: fields[geneIdx], Fields: fields})
	}
}
