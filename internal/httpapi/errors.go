package httpapi

import (
	"errors"
	"net/http"

	"github.com/jmartens/splittab/internal/calculator"
	"github.com/jmartens/splittab/internal/storage"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg, "bad_request")
}

// writeServiceErr maps service-layer errors onto HTTP statuses. A missing
// group is 404, an unknown account reference is 422 ("the data you sent and
// the data we have disagree"), everything else from validation is 400.
func (s *Server) writeServiceErr(w http.ResponseWriter, err error) {
	var consistencyErr *calculator.ConsistencyError
	switch {
	case errors.Is(err, storage.ErrGroupNotFound):
		writeErr(w, http.StatusNotFound, err.Error(), "group_not_found")
	case errors.As(err, &consistencyErr):
		writeErr(w, http.StatusUnprocessableEntity, err.Error(), "inconsistent_data")
	default:
		badRequest(w, err.Error())
	}
}
