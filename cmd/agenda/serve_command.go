package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/legcowatch/agenda-mcp/mcp"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var httpFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the agenda MCP server over stdio or streamable HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			svc, err := ctx.newService(logger, 0)
			if err != nil {
				return err
			}
			s := mcp.NewServer(logger, svc)

			addr := strings.TrimSpace(httpFlag)
			if addr == "" {
				addr = cfg.Server.HTTPAddress
			}
			if addr != "" {
				httpServer := &http.Server{
					Addr:              addr,
					Handler:           mcp.NewHTTPHandler(s, cfg.Server.EndpointPath),
					ReadHeaderTimeout: 10 * time.Second,
				}
				logger.Info("starting MCP server", zap.String("address", addr), zap.String("endpoint", cfg.Server.EndpointPath))
				return serveHTTP(cmd.Context(), logger, httpServer)
			}
			if !cfg.Server.Stdio {
				return errors.New("no transport configured: set server.http_address or enable server.stdio")
			}

			logger.Info("starting MCP server in stdio mode")
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&httpFlag, "http", "", "HTTP server address (e.g., ':8080')")
	return cmd
}

// serveHTTP runs httpServer until it fails or ctx is canceled.
func serveHTTP(ctx context.Context, logger *zap.Logger, httpServer *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down MCP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
