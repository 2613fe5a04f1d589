package httpapi

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
)

func (s *Server) createGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := fromJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	group, err := s.groups.CreateGroup(r.Context(), req.Name, req.CurrencyIdentifier)
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, group)
}

func (s *Server) getGroup(w http.ResponseWriter, r *http.Request) {
	group, err := s.groups.GetGroup(r.Context(), chi.URLParam(r, "groupID"))
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, group)
}

func (s *Server) listGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groups.ListGroups(r.Context())
	if err != nil {
		s.writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, groups)
}
