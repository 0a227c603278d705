package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kiesman99/tiledebug/internal/logger"
	"github.com/kiesman99/tiledebug/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for grid overlays and legends",
	Long: `Start an HTTP server that provides the debug grid and legend API.

Examples:
  # Start server on default port 8080
  tiledebug serve

  # Start server on custom port
  tiledebug serve --port 3000

  # Start server with custom bind address
  tiledebug serve --bind 0.0.0.0 --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server configuration
	serveCmd.Flags().StringP("bind", "b", "localhost", "bind address")
	serveCmd.Flags().IntP("port", "p", 8080, "port to listen on")
	serveCmd.Flags().Duration("timeout", 30*time.Second, "request timeout")
	serveCmd.Flags().String("layer-id", "debugtiles", "grid overlay layer id")

	// Bind flags to viper
	viper.BindPFlag("server.bind", serveCmd.Flags().Lookup("bind"))
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("server.timeout", serveCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("server.layerid", serveCmd.Flags().Lookup("layer-id"))
}

func runServe(cmd *cobra.Command, args []string) error {
	bind := viper.GetString("server.bind")
	port := viper.GetInt("server.port")
	timeout := viper.GetDuration("server.timeout")

	addr := fmt.Sprintf("%s:%d", bind, port)

	catalogue, err := loadCatalogue()
	if err != nil {
		return err
	}

	layer, err := overlayLayer(viper.GetString("server.layerid"))
	if err != nil {
		return err
	}

	apiServer := server.NewServer(server.Config{
		Version:   version,
		Catalogue: catalogue,
		Overlay:   *layer,
		Legend:    legendDefaults(),
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.NewRouter(apiServer, timeout),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		fmt.Fprintf(cmd.ErrOrStderr(), "\nShutting down server...\n")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Logger().Error("server shutdown", "error", err)
		}
	}()

	fmt.Fprintf(cmd.ErrOrStderr(), "Starting tiledebug server on %s\n", addr)
	fmt.Fprintf(cmd.ErrOrStderr(), "Health check: http://%s/api/v1/health\n", addr)
	fmt.Fprintf(cmd.ErrOrStderr(), "Grid endpoint: http://%s/api/v1/grid/{z}/{x}/{y}\n", addr)
	fmt.Fprintf(cmd.ErrOrStderr(), "Legend endpoint: http://%s/api/v1/legends/{variable}\n", addr)

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
