// Package httpapi exposes the group, transaction and balance operations as a
// JSON HTTP API.
package httpapi

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jmartens/splittab/internal/service"
	"github.com/jmartens/splittab/internal/storage"
)

// Server wires handlers and middleware using chi.
type Server struct {
	groups   *service.GroupService
	balances *service.BalanceService
	log      *slog.Logger
	rt       *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
func New(store storage.Store, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)
	r.Use(corsMiddleware)

	s := &Server{
		groups:   service.NewGroupService(store),
		balances: service.NewBalanceService(store),
		log:      logger,
		rt:       r,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

func (s *Server) routes() {
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Handle("/metrics", metricsHandler())

	s.rt.Route("/v1", func(r chi.Router) {
		r.Post("/groups", s.createGroup)
		r.Get("/groups", s.listGroups)
		r.Route("/groups/{groupID}", func(r chi.Router) {
			r.Get("/", s.getGroup)
			r.Post("/accounts", s.createAccount)
			r.Get("/accounts", s.listAccounts)
			r.Post("/transactions", s.createTransaction)
			r.Get("/transactions", s.listTransactions)
			r.Post("/transactions/preview", s.previewTransaction)
			r.Get("/balances", s.getBalances)
			r.Get("/settlement", s.getSettlement)
		})
		r.Post("/shares/convert", s.convertShares)
	})
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }
func (s *Server) readyz(w http.ResponseWriter, _ *http.Request)  { w.WriteHeader(http.StatusOK) }
