// Package api pkg/api/errors.go maps domain error kinds onto HTTP
// responses. Every kind gets a distinct body so the UI can render an
// appropriate message.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/opsdash/opsdash/pkg/models"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

var errorKinds = []struct {
	err    error
	status int
	kind   string
}{
	{models.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{models.ErrDuplicateIdentity, http.StatusConflict, "duplicate_identity"},
	{models.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
	{models.ErrForbidden, http.StatusForbidden, "forbidden"},
	{models.ErrInvalidFilter, http.StatusBadRequest, "invalid_filter"},
	{models.ErrNotFound, http.StatusNotFound, "not_found"},
	{models.ErrNotReady, http.StatusConflict, "not_ready"},
	{models.ErrUpstream, http.StatusBadGateway, "upstream_unavailable"},
}

func writeError(w http.ResponseWriter, err error) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			writeJSON(w, k.status, errorResponse{Error: k.err.Error(), Kind: k.kind})
			return
		}
	}

	log.Printf("Internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error: models.ErrInternal.Error(),
		Kind:  "internal_failure",
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
