package httpapi

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/jmartens/splittab/internal/models"
)

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := fromJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	account, err := s.groups.CreateAccount(r.Context(), chi.URLParam(r, "groupID"), models.Account{
		Type:           req.Type,
		Name:           req.Name,
		Description:    req.Description,
		OwningUserID:   req.OwningUserID,
		ClearingShares: req.ClearingShares,
	})
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, account)
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.groups.ListAccounts(r.Context(), chi.URLParam(r, "groupID"))
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, accounts)
}
