package main

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/eastgenomics/eggd-coverage-report/internal/coverage"
	"github.com/eastgenomics/eggd-coverage-report/internal/duckdb"
	"github.com/eastgenomics/eggd-coverage-report/internal/report"
	"github.com/eastgenomics/eggd-coverage-report/internal/tabular"
	"github.com/eastgenomics/eggd-coverage-report/internal/vcf"
)

func newReportCmd() *cobra.Command {
	var (
		exonStatsPath   string
		geneStatsPath   string
		rawCoveragePath string
		snpPaths        []string
		outputPath      string
		xlsxPath        string
		dbPath          string
		verbose         bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a single-sample coverage report",
		Long: `Classify exons at a depth threshold, reconstruct per-base coverage for the
exons falling short, intersect variants against the covered intervals and
render the result as an HTML report, with optional xlsx and DuckDB output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(reportOptions{
				exonStatsPath:   exonStatsPath,
				geneStatsPath:   geneStatsPath,
				rawCoveragePath: rawCoveragePath,
				snpPaths:        snpPaths,
				threshold:       viper.GetInt("threshold"),
				sample:          viper.GetString("sample"),
				outputPath:      outputPath,
				xlsxPath:        xlsxPath,
				dbPath:          dbPath,
				verbose:         verbose,
			})
		},
	}

	cmd.Flags().StringVar(&exonStatsPath, "exon-stats", "", "per-exon coverage stats file (required)")
	cmd.Flags().StringVar(&geneStatsPath, "gene-stats", "", "per-gene coverage stats file")
	cmd.Flags().StringVar(&rawCoveragePath, "raw-coverage", "", "raw per-base coverage file (required)")
	cmd.Flags().StringSliceVar(&snpPaths, "snps", nil, "VCF file(s) of variants to report depth for (repeatable)")
	cmd.Flags().Int("threshold", 20, "depth threshold defining low coverage")
	cmd.Flags().String("sample", "", "sample name shown in the report")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "report.html", "HTML report output path")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write tables to an xlsx workbook")
	cmd.Flags().StringVar(&dbPath, "db", "", "also write derived tables to a DuckDB file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	cobra.CheckErr(cmd.MarkFlagRequired("exon-stats"))
	cobra.CheckErr(cmd.MarkFlagRequired("raw-coverage"))
	cobra.CheckErr(viper.BindPFlag("threshold", cmd.Flags().Lookup("threshold")))
	cobra.CheckErr(viper.BindPFlag("sample", cmd.Flags().Lookup("sample")))

	return cmd
}

type reportOptions struct {
	exonStatsPath   string
	geneStatsPath   string
	rawCoveragePath string
	snpPaths        []string
	threshold       int
	sample          string
	outputPath      string
	xlsxPath        string
	dbPath          string
	verbose         bool
}

func runReport(opts reportOptions) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	stats, err := tabular.LoadExonStats(opts.exonStatsPath)
	if err != nil {
		return err
	}
	logger.Info("loaded exon stats",
		zap.String("file", opts.exonStatsPath),
		zap.Int("rows", len(stats.Rows)))

	raw, err := tabular.LoadRawCoverage(opts.rawCoveragePath)
	if err != nil {
		return err
	}
	logger.Info("loaded raw coverage",
		zap.String("file", opts.rawCoveragePath),
		zap.Int("rows", len(raw)))

	genes, err := loadGeneSummaries(opts.geneStatsPath, stats.Rows)
	if err != nil {
		return err
	}

	var variants []vcf.Variant
	if len(opts.snpPaths) > 0 {
		variants, err = vcf.Load(opts.snpPaths...)
		if err != nil {
			return err
		}
		logger.Info("loaded variants", zap.Int("count", len(variants)))
	}

	engine := coverage.New(opts.threshold)
	engine.SetLogger(logger)

	inadequate, adequate, err := engine.Classify(stats.Rows)
	if err != nil {
		return err
	}
	logger.Info("classified exons",
		zap.Int("inadequate", len(inadequate)),
		zap.Int("adequate", len(adequate)))

	lowRaw := engine.Extract(inadequate, raw)
	low, high := engine.Intersect(variants, raw)
	counters, all, inadequateSummary := engine.Summarize(stats.Rows, inadequate, genes, stats.Thresholds)

	data := report.Data{
		Sample:       sampleName(opts.sample, opts.exonStatsPath),
		Threshold:    opts.threshold,
		Counters:     counters,
		All:          all,
		Inadequate:   inadequateSummary,
		LowVariants:  low,
		HighVariants: high,
		Traces:       engine.Traces(lowRaw),
	}

	out, err := os.Create(opts.outputPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := report.RenderHTML(out, data); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	logger.Info("wrote report", zap.String("file", opts.outputPath))

	if opts.xlsxPath != "" {
		if err := report.WriteXLSX(opts.xlsxPath, data); err != nil {
			return err
		}
		logger.Info("wrote workbook", zap.String("file", opts.xlsxPath))
	}

	if opts.dbPath != "" {
		store, err := duckdb.Open(opts.dbPath)
		if err != nil {
			return err
		}
		if err := store.WriteReport(data); err != nil {
			store.Close()
			return err
		}
		if err := store.Close(); err != nil {
			return err
		}
		logger.Info("wrote database", zap.String("file", opts.dbPath))
	}

	return nil
}

// loadGeneSummaries loads the gene stats table when one was supplied, and
// otherwise falls back to the distinct genes of the exon stats so the
// total-genes counter stays meaningful.
func loadGeneSummaries(path string, stats []coverage.ExonStat) ([]coverage.GeneSummary, error) {
	if path != "" {
		return tabular.LoadGeneStats(path)
	}
	names := lo.Uniq(lo.Map(stats, func(s coverage.ExonStat, _ int) string { return s.Gene }))
	return lo.Map(names, func(name string, _ int) coverage.GeneSummary {
		return coverage.GeneSummary{Gene: name}
	}), nil
}

func sampleName(sample, statsPath string) string {
	if sample != "" {
		return sample
	}
	return statsPath
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	return cfg.Build()
}
