package app

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// healthHandler reports liveness for the daemon mode healthcheck endpoint.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// startHealthcheckServer runs the health check HTTP server in the background
// and shuts it down when ctx is cancelled.
func (a *App) startHealthcheckServer(ctx context.Context, port int) {
	a.logger.Debug("Configuring health check server.")
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)

	addr := fmt.Sprintf(":%d", port)
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		a.logger.Info("🩺 Health check server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("Health check server failed", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("Health check server shutdown failed.", "error", err)
			return
		}
		a.logger.Debug("Health check server stopped.")
	}()
}
