package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"lexiquiz/internal/run"
)

// CrawlHandler exposes crawl run management
type CrawlHandler struct {
	manager *run.Manager
}

// NewCrawlHandler creates a new crawl handler
func NewCrawlHandler(manager *run.Manager) *CrawlHandler {
	return &CrawlHandler{manager: manager}
}

type launchRequest struct {
	Seeds    []string `json:"seeds"`
	MaxDepth int      `json:"maxDepth"`
	MaxItems int      `json:"maxItems"`
}

// Launch handles POST /v1/crawls
func (h *CrawlHandler) Launch(w http.ResponseWriter, r *http.Request) {
	var req launchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Seeds) == 0 {
		writeError(w, http.StatusBadRequest, "seeds are required")
		return
	}
	if req.MaxDepth < 0 || req.MaxItems < 0 {
		writeError(w, http.StatusBadRequest, "maxDepth and maxItems must be non-negative")
		return
	}

	launched := h.manager.Launch(req.Seeds, req.MaxDepth, req.MaxItems)
	writeJSON(w, http.StatusAccepted, launched)
}

// Get handles GET /v1/crawls/{runId}
func (h *CrawlHandler) Get(w http.ResponseWriter, r *http.Request) {
	runID := mux.Vars(r)["runId"]

	record, ok := h.manager.Get(runID)
	if !ok {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// List handles GET /v1/crawls
func (h *CrawlHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.List())
}
