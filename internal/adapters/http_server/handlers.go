package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Mr-Neutr0n/travel-agent-ai/internal/adapters/observability"
	"github.com/Mr-Neutr0n/travel-agent-ai/internal/app"
	"github.com/Mr-Neutr0n/travel-agent-ai/internal/domain"
)

type Handlers struct {
	P *app.PlanService
	Q *app.QueryService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/guides", h.createGuide)
	s.mux.Get("/v1/guides", h.listGuides)
	s.mux.Get("/v1/destinations/{destination}/record", h.getRecord)
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
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

type createGuideRequest struct {
	Destination string `json:"destination"`
}

type createGuideResponse struct {
	Destination string `json:"destination"`
	Path        string `json:"path"`
	GeneratedAt string `json:"generated_at"`
}

func (h *Handlers) createGuide(w http.ResponseWriter, r *http.Request) {
	var req createGuideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON with a destination field")
		return
	}
	dest := strings.TrimSpace(req.Destination)
	if dest == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Destination", "destination must not be empty")
		return
	}

	start := time.Now()
	path, err := h.P.GenerateGuide(r.Context(), dest)
	observability.ObserveGuide(err, time.Since(start))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeProblem(w, http.StatusBadGateway, "Upstream Unauthorized", "research API rejected our credentials")
			return
		}
		// keep paths and DSNs out of the response body
		log.Error().Err(err).Str("destination", dest).Msg("guide generation failed")
		writeProblem(w, http.StatusInternalServerError, "Guide Generation Failed", "could not generate the guide")
		return
	}

	resp := createGuideResponse{
		Destination: dest,
		Path:        path,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to write createGuide body")
	}
}

func (h *Handlers) getRecord(w http.ResponseWriter, r *http.Request) {
	dest := strings.TrimSpace(chi.URLParam(r, "destination"))
	if dest == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Destination", "destination must not be empty")
		return
	}
	rec, err := h.Q.GetRecord(r.Context(), dest)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "no record for destination")
		return
	}

	etag, body := calcETagAndBody(rec)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getRecord body")
	}
}

func (h *Handlers) listGuides(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 100 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 100")
			return
		}
		limit = l
	}

	out, err := h.Q.ListGuides(r.Context(), limit)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "List Failed", "could not list guides")
		return
	}
	if out == nil {
		out = []domain.GuideEntry{}
	}

	etag, body := calcETagAndBody(out)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listGuides body")
	}
}
