// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rental_agency/internal/adapters/observability"
	"rental_agency/internal/app"
	"rental_agency/internal/domain"
	"rental_agency/internal/search"
)

type Handlers struct {
	Search *app.SearchService
	AI     *app.AIService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type searchResponse struct {
	Count   int               `json:"count"`
	Filters search.Raw        `json:"filters"`
	Items   []app.ListingCard `json:"items"`
}

type aiSearchRequest struct {
	Query string `json:"query"`
}

type aiSearchResponse struct {
	Filters search.Raw `json:"filters"`
	URL     string     `json:"url"`
}

const maxQueryLen = 1000

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1", func(r chi.Router) {
		r.Use(Timeout(requestTimeout))
		r.Get("/properties", h.searchProperties)
		r.Get("/properties/{id}", h.getProperty)
		r.Post("/properties/ai-search", h.aiSearch)
		r.Get("/search/schema", h.searchSchema)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSONWithETag answers 304 when the client already holds this version.
func writeJSONWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not encode response")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) searchProperties(w http.ResponseWriter, r *http.Request) {
	p, rows, err := h.Search.Search(r.Context(), search.FromQuery(r.URL.Query()))
	if err != nil {
		log.Error().Err(err).Msg("property search failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "search failed")
		return
	}
	observability.ObserveSearch("http", len(rows))

	writeJSONWithETag(w, r, searchResponse{
		Count:   len(rows),
		Filters: search.Serialize(p),
		Items:   app.ToCards(rows),
	})
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	row, err := h.Search.GetListing(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("get property failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "lookup failed")
		return
	}
	writeJSONWithETag(w, r, app.ToCard(row))
}

func (h *Handlers) aiSearch(w http.ResponseWriter, r *http.Request) {
	var req aiSearchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 16<<10)).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", `expected {"query": "..."}`)
		return
	}
	q := strings.TrimSpace(req.Query)
	if q == "" || len(q) > maxQueryLen {
		writeProblem(w, http.StatusBadRequest, "Invalid Query", "query must be between 1 and 1000 characters")
		return
	}

	p, err := h.AI.Filters(r.Context(), q)
	switch {
	case errors.Is(err, domain.ErrAIDisabled):
		writeProblem(w, http.StatusServiceUnavailable, "AI Search Unavailable", "no model is configured")
		return
	case errors.Is(err, domain.ErrNoToolCall):
		log.Warn().Err(err).Str("query", q).Msg("invalid AI response")
		writeProblem(w, http.StatusUnprocessableEntity, "Unprocessable Query", "Could not discern filters from query.")
		return
	case err != nil:
		log.Error().Err(err).Msg("ai search failed")
		writeProblem(w, http.StatusBadGateway, "Bad Gateway", "model request failed")
		return
	}

	raw := search.Serialize(p)
	url := "/v1/properties"
	if enc := raw.Encode(); enc != "" {
		url += "?" + enc
	}
	writeJSON(w, http.StatusOK, aiSearchResponse{Filters: raw, URL: url})
}

func (h *Handlers) searchSchema(w http.ResponseWriter, r *http.Request) {
	writeJSONWithETag(w, r, search.JSONSchema())
}
