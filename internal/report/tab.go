package report

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/eastgenomics/eggd-coverage-report/internal/coverage"
)

// SummaryWriter writes a pivoted exon summary in tab-delimited format.
type SummaryWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewSummaryWriter creates a writer for a summary with the given numeric
// column order.
func NewSummaryWriter(w io.Writer, columns []string) *SummaryWriter {
	return &SummaryWriter{
		w:       bufio.NewWriter(w),
		columns: append([]string{"gene", "tx", "chrom", "exon", "exon_start", "exon_end"}, columns...),
	}
}

// WriteHeader writes the header line.
func (sw *SummaryWriter) WriteHeader() error {
	_, err := sw.w.WriteString(strings.Join(sw.columns, "\t") + "\n")
	return err
}

// Write writes a single summary row.
func (sw *SummaryWriter) Write(row coverage.SummaryRow) error {
	values := []string{
		row.Gene,
		row.Tx,
		strconv.Itoa(row.Chrom),
		strconv.Itoa(row.Exon),
		strconv.FormatInt(row.ExonStart, 10),
		strconv.FormatInt(row.ExonEnd, 10),
		strconv.Itoa(row.Min),
		formatMean(row.Mean),
		strconv.Itoa(row.Max),
	}
	for _, pct := range row.Percents {
		values = append(values, strconv.Itoa(pct))
	}

	_, err := sw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// WriteAll writes the header and every row of a summary.
func (sw *SummaryWriter) WriteAll(s coverage.Summary) error {
	if err := sw.WriteHeader(); err != nil {
		return err
	}
	for _, row := range s.Rows {
		if err := sw.Write(row); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// Flush flushes any buffered data to the underlying writer.
func (sw *SummaryWriter) Flush() error {
	return sw.w.Flush()
}

// VariantWriter writes variant coverage rows in tab-delimited format.
type VariantWriter struct {
	w *bufio.Writer
}

var variantColumns = []string{"gene", "exon", "chrom", "pos", "id", "ref", "alt", "cov"}

// NewVariantWriter creates a tab-delimited variant coverage writer.
func NewVariantWriter(w io.Writer) *VariantWriter {
	return &VariantWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line.
func (vw *VariantWriter) WriteHeader() error {
	_, err := vw.w.WriteString(strings.Join(variantColumns, "\t") + "\n")
	return err
}

// Write writes a single variant coverage row.
func (vw *VariantWriter) Write(v coverage.VariantCoverage) error {
	values := []string{
		v.Gene,
		strconv.Itoa(v.Exon),
		v.Chrom,
		strconv.FormatInt(v.Pos, 10),
		v.ID,
		v.Ref,
		v.Alt,
		strconv.Itoa(v.Coverage),
	}
	_, err := vw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (vw *VariantWriter) Flush() error {
	return vw.w.Flush()
}

func formatMean(mean float64) string {
	return strconv.FormatFloat(mean, 'f', 2, 64)
}
