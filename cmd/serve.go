package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeffreywbertke/DC/internal/logging"
	"github.com/jeffreywbertke/DC/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve practice sessions over a JSON HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr and DC_SERVER_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	logger, err := logging.New(cfg.LogLevel, false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, model, err := newTutor(ctx, cfg, st.EventRepo(), logger)
	if err != nil {
		return err
	}

	logger.Info("starting dcmaster API",
		zap.String("addr", cfg.Server.Addr),
		zap.String("tutor_model", model),
		zap.Duration("session_ttl", cfg.Server.SessionTTL),
	)
	if err := server.NewServer(cfg.Server, svc, logger).ListenAndServe(ctx); err != nil {
		return err
	}
	logger.Info("dcmaster API stopped")
	return nil
}
