// Package handler exposes the HTTP surface of the API. Handlers decode
// and validate payloads, call the usecase layer, and write the uniform
// response envelopes.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/wementor/mentor-directory-api/internal/apierror"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, map[string]any{"success": true, "data": data})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{"success": true, "message": message})
}

func respondDeleted(w http.ResponseWriter, deleted int64) {
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "deletedCount": deleted})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierror.BadRequest("invalid request body")
	}
	return nil
}

// paginationQuery reads page and limit from the query string. Missing or
// malformed values come back as zero and fall through to the usecase
// defaults.
func paginationQuery(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}
