package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/freshnutrients/agrichat/internal/catalog"
	"github.com/freshnutrients/agrichat/internal/chat"
	"github.com/freshnutrients/agrichat/internal/db"
	"github.com/freshnutrients/agrichat/internal/history"
	"github.com/freshnutrients/agrichat/internal/server"
	"github.com/freshnutrients/agrichat/internal/webformat"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the agrichat HTTP API server",
	Long:  `Starts the REST and WebSocket API that powers the FreshNutrients chat widget.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Server.Port = servePort
		}

		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		provider, err := buildProvider(cfg)
		if err != nil {
			return err
		}

		engine := buildEngine(database, provider, cfg.Model)
		handler := chat.NewHandler(engine, webformat.New(), cfg.Model, logger)

		srv := server.New(server.Deps{
			Config:      *cfg,
			Catalog:     catalog.NewStore(database),
			History:     history.NewStore(database),
			ChatHandler: handler,
			Logger:      logger,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown error", zap.Error(err))
			}
		}()

		logger.Info("starting agrichat",
			zap.String("version", Version),
			zap.String("provider", string(cfg.Provider)),
			zap.String("model", cfg.Model),
			zap.String("database", cfg.Database.Path),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
