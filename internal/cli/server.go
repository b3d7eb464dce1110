package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/yuzu875641/phpbbs/internal/api"
	"github.com/yuzu875641/phpbbs/pkg/log"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the bulletin board server",
	Long:  "Start the HTTP server that renders the board and accepts posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		services := initServices()

		server := api.NewServer(cfg, services.BoardHandler, log.WithComponent("api"))

		// Start server in goroutine
		serverErr := make(chan error, 1)
		go func() {
			if err := server.Start(); err != nil && err != http.ErrServerClosed {
				serverErr <- err
			}
		}()

		// Wait for interrupt signal or server error
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErr:
			return err
		case <-sigChan:
			log.Logger.Info().Msg("shutting down gracefully")
		}

		// Graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		log.Logger.Info().Msg("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
