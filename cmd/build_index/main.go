// Command build_index reads a TSV corpus and writes a three-file
// on-disk boolean index: <output>.meta, <output>.forward,
// <output>.inverted.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ermug/turkindex/internal/config"
	"github.com/ermug/turkindex/internal/index"
	"github.com/ermug/turkindex/internal/ingest"
	"github.com/ermug/turkindex/internal/observability"
	"github.com/ermug/turkindex/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		stemming   bool
		logLevel   string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "build_index <input.tsv> <output_base>",
		Short: "Build a boolean inverted index from a TSV corpus",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(runOpts{
				inputPath:  args[0],
				outputBase: args[1],
				stemming:   stemming,
				logLevel:   logLevel,
				configPath: configPath,
			})
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&stemming, "stemming", false, "enable the Turkish suffix stemmer")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "override the configured log level")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file")

	return cmd
}

type runOpts struct {
	inputPath  string
	outputBase string
	stemming   bool
	logLevel   string
	configPath string
}

func run(opts runOpts) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %v", err)
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	in, err := os.Open(opts.inputPath)
	if err != nil {
		log.Error("open input", zap.String("path", opts.inputPath), zap.Error(err))
		return err
	}
	defer in.Close()

	log.Info("building index",
		zap.String("input", opts.inputPath),
		zap.String("output_base", opts.outputBase),
		zap.Bool("stemming", opts.stemming),
	)

	builder := index.NewBuilder(opts.stemming, cfg.PostingBucketHint)

	start := time.Now()
	lastReport := start
	reportInterval := time.Duration(cfg.ReportIntervalSecs) * time.Second

	stats, err := ingest.Scan(in, func(rec ingest.Record) {
		builder.AddDocument(rec.DocID, rec.URL, rec.Title, rec.Content)

		if now := time.Now(); reportInterval > 0 && now.Sub(lastReport) >= reportInterval {
			elapsed := now.Sub(start).Seconds()
			log.Info("ingest progress",
				zap.Int("processed", builder.DocumentCount()),
				zap.Float64("docs_per_sec", float64(builder.DocumentCount())/elapsed),
			)
			lastReport = now
		}
	})
	if err != nil {
		log.Error("scan input", zap.Error(err))
		return err
	}

	log.Info("ingest complete",
		zap.Int("processed", stats.Processed),
		zap.Int("parse_errors", stats.Errors),
		zap.Duration("elapsed", time.Since(start)),
	)

	sortStart := time.Now()
	terms := builder.SortedTerms()
	log.Info("sorted index",
		zap.Int("unique_terms", len(terms)),
		zap.Duration("elapsed", time.Since(sortStart)),
	)

	saveStart := time.Now()
	if err := store.Save(opts.outputBase, store.Options{Stemmed: opts.stemming}, builder.Documents(), terms); err != nil {
		log.Error("save index", zap.Error(err))
		return err
	}

	log.Info("index built",
		zap.String("output_base", opts.outputBase),
		zap.Int("documents", builder.DocumentCount()),
		zap.Int("unique_terms", len(terms)),
		zap.Duration("save_elapsed", time.Since(saveStart)),
		zap.Duration("total_elapsed", time.Since(start)),
	)

	return nil
}
