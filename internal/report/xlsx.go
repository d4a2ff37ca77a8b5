package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/eastgenomics/eggd-coverage-report/internal/coverage"
)

// WriteXLSX writes the derived tables as an Excel workbook: the full exon
// summary, the sub-threshold exons, and the two variant partitions.
func WriteXLSX(path string, d Data) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "summary"); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, "summary", d.All); err != nil {
		return err
	}

	if err := addSummarySheet(f, "low coverage", d.Inadequate); err != nil {
		return err
	}
	if err := addVariantSheet(f, "variants low", d.LowVariants); err != nil {
		return err
	}
	if err := addVariantSheet(f, "variants high", d.HighVariants); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func addSummarySheet(f *excelize.File, sheet string, s coverage.Summary) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	return writeSummarySheet(f, sheet, s)
}

func writeSummarySheet(f *excelize.File, sheet string, s coverage.Summary) error {
	header := append([]string{"gene", "tx", "chrom", "exon", "exon_start", "exon_end"}, s.Columns...)
	for col, name := range header {
		if err := setCell(f, sheet, col+1, 1, name); err != nil {
			return err
		}
	}

	for i, row := range s.Rows {
		values := []interface{}{
			row.Gene, row.Tx, row.Chrom, row.Exon, row.ExonStart, row.ExonEnd,
			row.Min, row.Mean, row.Max,
		}
		for _, pct := range row.Percents {
			values = append(values, pct)
		}
		for col, v := range values {
			if err := setCell(f, sheet, col+1, i+2, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func addVariantSheet(f *excelize.File, sheet string, variants []coverage.VariantCoverage) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	for col, name := range variantColumns {
		if err := setCell(f, sheet, col+1, 1, name); err != nil {
			return err
		}
	}

	for i, v := range variants {
		values := []interface{}{v.Gene, v.Exon, v.Chrom, v.Pos, v.ID, v.Ref, v.Alt, v.Coverage}
		for col, val := range values {
			if err := setCell(f, sheet, col+1, i+2, val); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
	}
	return nil
}
