package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/edututor/internal/config"
	"github.com/abhisek/edututor/internal/llm"
	"github.com/abhisek/edututor/internal/logger"
	"github.com/abhisek/edututor/internal/store"
)

// cfg is resolved once per invocation by the root pre-run hook.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "edututor",
	Short: "AI quiz generator and tutor",
	Long: "EduTutor generates multiple-choice quizzes and short learning modules on any topic " +
		"with an LLM, validates every question before showing it, and keeps score history.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./edututor.yaml or $XDG_CONFIG_HOME/edututor/edututor.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUTUTOR_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads .env, resolves configuration and initializes logging.
func setup(cmd *cobra.Command, args []string) error {
	// A missing .env is normal.
	_ = godotenv.Load()

	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		c.Logger.Level = lvl
	}
	if err := logger.Initialize(c.Logger); err != nil {
		return err
	}
	cfg = c
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db.path from config, then EDUTUTOR_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newProvider builds the configured LLM provider, recording every call
// in the event log.
func newProvider(ctx context.Context, s *store.Store) (llm.Provider, error) {
	p, err := llm.NewProvider(ctx, cfg.LLM, s.EventRepo(), logger.Get())
	if err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	return p, nil
}

// withLLMTimeout bounds one logical LLM call, retries included.
func withLLMTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if cfg.LLM.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, cfg.LLM.Timeout)
}

// userFlag returns --user, falling back to the configured default user.
func userFlag(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	return cfg.User
}
