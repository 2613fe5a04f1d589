package httpapi

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
)

func (s *Server) getBalances(w http.ResponseWriter, r *http.Request) {
	balances, unresolved, err := s.balances.Balances(r.Context(), chi.URLParam(r, "groupID"))
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, balancesResponse{
		Balances:                   balances,
		UnresolvedClearingAccounts: unresolved,
	})
}

func (s *Server) getSettlement(w http.ResponseWriter, r *http.Request) {
	entries, err := s.balances.Settlement(r.Context(), chi.URLParam(r, "groupID"))
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, settlementResponse{Settlement: entries})
}

func (s *Server) convertShares(w http.ResponseWriter, r *http.Request) {
	var req convertSharesRequest
	if err := fromJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	mode, shares, err := s.balances.ConvertShares(req.FromMode, req.ToMode, req.Shares, req.TotalValue)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	toJSON(w, http.StatusOK, convertSharesResponse{Mode: mode, Shares: shares})
}
