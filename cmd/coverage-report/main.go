// Package main provides the coverage-report command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "coverage-report",
		Short:   "Per-sample sequencing coverage reports",
		Long:    "Generate coverage quality reports for a single clinical or research sample\nfrom pre-aggregated exon coverage tables.",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Example: `  # Report with the default 20x threshold
  coverage-report report --exon-stats sample_exon_stats.tsv --raw-coverage sample_raw.tsv

  # Include gene-level stats and variant depth tables
  coverage-report report --exon-stats stats.tsv --gene-stats genes.tsv \
    --raw-coverage raw.tsv --snps sample.vcf --threshold 30`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".coverage-report")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("COVERAGE_REPORT")
	viper.AutomaticEnv()

	// Missing config file is fine; defaults and flags cover everything.
	_ = viper.ReadInConfig()
}
