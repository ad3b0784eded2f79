// Command search loads a boolean index and answers queries against
// it, either once from an argument or in an interactive/piped loop
// reading from stdin.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ermug/turkindex/internal/config"
	"github.com/ermug/turkindex/internal/observability"
	"github.com/ermug/turkindex/internal/repl"
	"github.com/ermug/turkindex/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel   string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "search <index_base> [query]",
		Short: "Answer boolean keyword queries against a built index",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 2 {
				query = args[1]
			}
			return run(args[0], query, logLevel, configPath)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "override the configured log level")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file")

	return cmd
}

func run(indexBase, query, logLevelFlag, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %v", err)
	}

	level := cfg.LogLevel
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	level = observability.DebugSearchLevel(os.Getenv("DEBUG_SEARCH"), level)

	logger, err := observability.NewLogger(level)
	if err != nil {
		return fmt.Errorf("build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	loader, err := store.Load(indexBase, store.LoadOptions{Logger: logger})
	if err != nil {
		logger.Error("load index", zap.Error(err))
		return err
	}

	logger.Info("index loaded",
		zap.Int("documents", int(loader.TotalDocuments())),
		zap.Int("terms", len(loader.Terms)),
	)

	if query != "" {
		repl.RunOne(os.Stdout, loader, query, cfg.ResultPageSize)
		return nil
	}

	repl.RunLoop(os.Stdout, os.Stdin, loader, cfg.ResultPageSize)
	return nil
}
