// Package duckdb persists the derived coverage tables to a DuckDB file so
// downstream tooling can query results across samples.
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection holding one sample's derived tables.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path. Use an empty
// string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS exon_summary (
			sample VARCHAR,
			gene VARCHAR,
			tx VARCHAR,
			chrom INTEGER,
			exon INTEGER,
			exon_start BIGINT,
			exon_end BIGINT,
			min INTEGER,
			mean DOUBLE,
			max INTEGER,
			low BOOLEAN,
			PRIMARY KEY (sample, gene, tx, chrom, exon, exon_start, exon_end)
		)`,
		`CREATE TABLE IF NOT EXISTS exon_threshold (
			sample VARCHAR,
			gene VARCHAR,
			tx VARCHAR,
			exon INTEGER,
			depth VARCHAR,
			pct INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS variant_coverage (
			sample VARCHAR,
			chrom VARCHAR,
			pos BIGINT,
			ref VARCHAR,
			alt VARCHAR,
			id VARCHAR,
			gene VARCHAR,
			exon INTEGER,
			cov INTEGER,
			low BOOLEAN,
			PRIMARY KEY (sample, chrom, pos, ref, alt)
		)`,
		`CREATE TABLE IF NOT EXISTS report_counters (
			sample VARCHAR PRIMARY KEY,
			threshold INTEGER,
			total_genes INTEGER,
			gene_issues INTEGER,
			exon_issues INTEGER
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
