package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeffreywbertke/DC/internal/circuit"
	"github.com/jeffreywbertke/DC/internal/config"
	"github.com/jeffreywbertke/DC/internal/llm"
	"github.com/jeffreywbertke/DC/internal/logging"
	"github.com/jeffreywbertke/DC/internal/store"
	"github.com/jeffreywbertke/DC/internal/tutor"
)

// loadConfig reads .env, the config file and the environment, then applies
// persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		if _, err := logging.ParseLevel(lvl); err != nil {
			return config.Config{}, err
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path (from --db, DC_DB or
// the config file), falling back to the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// tuiLogPath places the TUI log next to the database.
func tuiLogPath(cfg config.Config) (string, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return "", err
	}
	if dbPath == ":memory:" {
		return "stderr", nil
	}
	return filepath.Join(filepath.Dir(dbPath), "dcmaster.log"), nil
}

// newTutor builds the explanation service. A missing LLM configuration is
// not an error: the tutor answers with its offline message and model is
// empty.
func newTutor(ctx context.Context, cfg config.Config, recorder llm.EventRecorder, logger *zap.Logger) (svc *tutor.Service, model string, err error) {
	llmCfg, err := llm.LoadConfig(llm.Overrides{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		Timeout:  cfg.LLM.Timeout,
	})
	if errors.Is(err, llm.ErrNotConfigured) {
		logger.Info("no LLM provider configured, tutor offline")
		return tutor.NewService(nil, tutor.DefaultConfig(), logger), "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("LLM config: %w", err)
	}

	provider, err := llm.NewProvider(ctx, llmCfg, recorder, logger)
	if err != nil {
		return nil, "", fmt.Errorf("LLM provider: %w", err)
	}

	tcfg := tutor.DefaultConfig()
	if llmCfg.Timeout > 0 {
		tcfg.Timeout = llmCfg.Timeout
	}
	logger.Info("tutor ready", zap.String("provider", llmCfg.Provider), zap.String("model", provider.ModelID()))
	return tutor.NewService(provider, tcfg, logger), provider.ModelID(), nil
}

// addProblemFlags registers --topology and --seed.
func addProblemFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("topology", "t", "", "Circuit topology: series, parallel or combination")
	cmd.Flags().Uint64("seed", 0, "Random seed for reproducible problems (0 = random)")
}

// problemTopology returns --topology, else the configured default.
func problemTopology(cmd *cobra.Command, cfg config.Config) (circuit.Topology, error) {
	if v, _ := cmd.Flags().GetString("topology"); v != "" {
		return circuit.ParseTopology(v)
	}
	return cfg.Practice.Topology, nil
}

// problemSource returns a source seeded from --seed, else the configured
// seed, else a random one.
func problemSource(cmd *cobra.Command, cfg config.Config) circuit.RandomSource {
	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		seed = cfg.Practice.Seed
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	return circuit.NewSeededSource(seed)
}
