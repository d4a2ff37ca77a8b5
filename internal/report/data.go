// Package report renders the derived coverage tables for human review.
package report

import "github.com/eastgenomics/eggd-coverage-report/internal/coverage"

// Data is the rendering hand-off: everything the core derives for one
// sample, and nothing else. The writers in this package consume it
// read-only.
type Data struct {
	Sample    string
	Threshold int

	Counters   coverage.Counters
	All        coverage.Summary
	Inadequate coverage.Summary

	LowVariants  []coverage.VariantCoverage
	HighVariants []coverage.VariantCoverage

	Traces []coverage.Trace
}
