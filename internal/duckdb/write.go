package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/eastgenomics/eggd-coverage-report/internal/coverage"
	"github.com/eastgenomics/eggd-coverage-report/internal/report"
)

// WriteReport writes one sample's derived tables. Re-writing the same
// sample replaces its previous rows, so a re-run stays idempotent.
func (s *Store) WriteReport(d report.Data) error {
	if err := s.clearSample(d.Sample); err != nil {
		return err
	}

	if err := s.writeSummary(d); err != nil {
		return err
	}
	if err := s.writeVariants(d); err != nil {
		return err
	}

	_, err := s.db.Exec(
		`INSERT INTO report_counters (sample, threshold, total_genes, gene_issues, exon_issues)
		 VALUES (?, ?, ?, ?, ?)`,
		d.Sample, d.Threshold, d.Counters.TotalGenes, d.Counters.GeneIssues, d.Counters.ExonIssues)
	if err != nil {
		return fmt.Errorf("insert counters: %w", err)
	}
	return nil
}

func (s *Store) clearSample(sample string) error {
	for _, table := range []string{"exon_summary", "exon_threshold", "variant_coverage", "report_counters"} {
		if _, err := s.db.Exec("DELETE FROM "+table+" WHERE sample = ?", sample); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func (s *Store) writeSummary(d report.Data) error {
	type rowKey struct {
		gene, tx   string
		chrom      int
		exon       int
		start, end int64
	}
	low := make(map[rowKey]bool, len(d.Inadequate.Rows))
	for _, r := range d.Inadequate.Rows {
		low[rowKey{r.Gene, r.Tx, r.Chrom, r.Exon, r.ExonStart, r.ExonEnd}] = true
	}

	err := s.withAppender("exon_summary", func(a *goduckdb.Appender) error {
		for _, r := range d.All.Rows {
			k := rowKey{r.Gene, r.Tx, r.Chrom, r.Exon, r.ExonStart, r.ExonEnd}
			if err := a.AppendRow(
				d.Sample, r.Gene, r.Tx, int32(r.Chrom), int32(r.Exon),
				r.ExonStart, r.ExonEnd, int32(r.Min), r.Mean, int32(r.Max), low[k],
			); err != nil {
				return fmt.Errorf("append exon summary: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Depth columns follow min, mean, max in the canonical column order.
	var depths []string
	if len(d.All.Columns) > 3 {
		depths = d.All.Columns[3:]
	}
	return s.withAppender("exon_threshold", func(a *goduckdb.Appender) error {
		for _, r := range d.All.Rows {
			for i, depth := range depths {
				if err := a.AppendRow(
					d.Sample, r.Gene, r.Tx, int32(r.Exon), depth, int32(r.Percents[i]),
				); err != nil {
					return fmt.Errorf("append exon threshold: %w", err)
				}
			}
		}
		return nil
	})
}

func (s *Store) writeVariants(d report.Data) error {
	return s.withAppender("variant_coverage", func(a *goduckdb.Appender) error {
		appendAll := func(variants []coverage.VariantCoverage, low bool) error {
			for _, v := range variants {
				if err := a.AppendRow(
					d.Sample, v.Chrom, v.Pos, v.Ref, v.Alt, v.ID,
					v.Gene, int32(v.Exon), int32(v.Coverage), low,
				); err != nil {
					return fmt.Errorf("append variant coverage: %w", err)
				}
			}
			return nil
		}
		if err := appendAll(d.LowVariants, true); err != nil {
			return err
		}
		return appendAll(d.HighVariants, false)
	})
}

// withAppender runs fn with a DuckDB appender for the named table, flushing
// on success.
func (s *Store) withAppender(table string, fn func(*goduckdb.Appender) error) error {
	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", table)
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	if err := fn(appender); err != nil {
		return err
	}
	return appender.Flush()
}
