package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/mmonari/syntaxdemo/internal/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve greet, add, multiply and result as MCP tools",
		Long: `Serve the greeter and a shared calculator over the Model Context Protocol.

By default the server speaks MCP over stdin/stdout. With --listen it serves
streamable HTTP at /mcp and a health check at /health instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := opts.cfg
			if cfg.Server.Version == "dev" {
				cfg.Server.Version = version
			}
			srv := server.New(cfg)

			if listenAddr == "" {
				debugLog.Print("Serving MCP over stdio")
				return srv.Run(ctx, &sdk.StdioTransport{})
			}
			return serveHTTP(ctx, listenAddr, srv)
		},
	}

	cmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "HTTP listen address, e.g. 127.0.0.1:3000 (stdio when empty)")
	return cmd
}

// serveHTTP runs the HTTP server until ctx is cancelled, then shuts it down.
func serveHTTP(ctx context.Context, addr string, srv *server.Server) error {
	httpServer := server.NewHTTPServer(addr, srv)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving MCP on http://%s/mcp", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	}
}
