package httpapi

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
)

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := fromJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	tx, err := s.groups.CreateTransaction(r.Context(), chi.URLParam(r, "groupID"), req.toModel())
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, tx)
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.groups.ListTransactions(r.Context(), chi.URLParam(r, "groupID"))
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, transactions)
}

// previewTransaction computes the per-account effect of a transaction
// without storing it.
func (s *Server) previewTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := fromJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	effect, err := s.balances.PreviewTransaction(r.Context(), chi.URLParam(r, "groupID"), req.toModel())
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, previewResponse{Effect: effect})
}
