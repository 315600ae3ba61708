package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"lexiquiz/internal/repository"
)

// DatasetHandler serves generated dataset files and batch statistics
type DatasetHandler struct {
	datasetDir   string
	entryRepo    repository.EntryRepo
	questionRepo repository.QuestionRepo
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(datasetDir string, entryRepo repository.EntryRepo, questionRepo repository.QuestionRepo) *DatasetHandler {
	return &DatasetHandler{
		datasetDir:   datasetDir,
		entryRepo:    entryRepo,
		questionRepo: questionRepo,
	}
}

type datasetFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// ListFiles handles GET /v1/datasets
func (h *DatasetHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(h.datasetDir)
	if err != nil {
		if os.IsNotExist(err) {
			writeJSON(w, http.StatusOK, []datasetFile{})
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to read dataset directory")
		return
	}

	files := make([]datasetFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, datasetFile{Name: entry.Name(), Size: info.Size()})
	}

	writeJSON(w, http.StatusOK, files)
}

// GetFile handles GET /v1/datasets/{name}
func (h *DatasetHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	// Reject path traversal
	if name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		writeError(w, http.StatusBadRequest, "invalid file name")
		return
	}

	path := filepath.Join(h.datasetDir, name)
	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}

	if strings.HasSuffix(name, ".json") {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	http.ServeFile(w, r, path)
}

// EntryStats handles GET /v1/entries/stats
func (h *DatasetHandler) EntryStats(w http.ResponseWriter, r *http.Request) {
	if h.entryRepo == nil {
		writeError(w, http.StatusServiceUnavailable, "entry store not configured")
		return
	}

	count, err := h.entryRepo.Count(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count entries")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"entries": count})
}

// ListBatches handles GET /v1/batches
func (h *DatasetHandler) ListBatches(w http.ResponseWriter, r *http.Request) {
	if h.questionRepo == nil {
		writeError(w, http.StatusServiceUnavailable, "question store not configured")
		return
	}

	batches, err := h.questionRepo.GetBatches(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list batches")
		return
	}

	writeJSON(w, http.StatusOK, batches)
}

// BatchStats handles GET /v1/batches/{batchId}/stats
func (h *DatasetHandler) BatchStats(w http.ResponseWriter, r *http.Request) {
	if h.questionRepo == nil {
		writeError(w, http.StatusServiceUnavailable, "question store not configured")
		return
	}

	batchID := mux.Vars(r)["batchId"]

	batch, err := h.questionRepo.GetBatch(r.Context(), batchID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load batch")
		return
	}
	if batch == nil {
		writeError(w, http.StatusNotFound, "batch not found")
		return
	}

	stats, err := h.questionRepo.GetBatchStats(r.Context(), batchID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to aggregate batch stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
