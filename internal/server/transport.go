package server

import (
	"encoding/json"
	"net/http"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mmonari/syntaxdemo/internal/calculator"
	"github.com/mmonari/syntaxdemo/internal/logger"
)

var logTransport = logger.New("server:transport")

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Result  string `json:"result"`
}

// HandleHealth reports the server identity and the calculator's current result.
func (s *Server) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status:  "healthy",
			Name:    s.cfg.Server.Name,
			Version: s.cfg.Server.Version,
			Result:  calculator.FormatNumber(s.calc.Result()),
		})
	}
}

// withRequestLogging logs each request with its duration.
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logTransport.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

// NewHTTPServer serves the MCP endpoint at /mcp over streamable HTTP and the
// health check at /health. Every session shares the same tools and calculator.
func NewHTTPServer(addr string, s *Server) *http.Server {
	mcpHandler := sdk.NewStreamableHTTPHandler(func(r *http.Request) *sdk.Server {
		logTransport.Printf("New MCP session from %s", r.RemoteAddr)
		return s.SDKServer()
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", withRequestLogging(mcpHandler))
	mux.Handle("/mcp/", withRequestLogging(mcpHandler))
	mux.HandleFunc("/health", s.HandleHealth())

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
