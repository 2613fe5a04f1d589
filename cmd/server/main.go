package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/jmartens/splittab/internal/httpapi"
	"github.com/jmartens/splittab/internal/storage/memory"
	"github.com/jmartens/splittab/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	port := getEnv("PORT", "8080")

	store := memory.New()
	defer store.Close()

	server := httpapi.New(store, slog.Default())

	// HTTP/2 without TLS, for clients behind a terminating proxy.
	handler := h2c.NewHandler(server.Handler(), &http2.Server{})

	addr := fmt.Sprintf(":%s", port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
