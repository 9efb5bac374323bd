package api

import (
	"encoding/json"
	"net/http"

	"flashvocab/internal/domain"
	"flashvocab/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handlers serves store snapshots as JSON
type Handlers struct {
	store  *service.VocabStore
	logger *zap.Logger
}

// ListVocab returns the durable record {"vocabList": [...]}
func (h *Handlers) ListVocab(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Snapshot())
}

// ListPinned returns the pinned entries in the same shape as ListVocab
func (h *Handlers) ListPinned(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, domain.State{VocabList: h.store.Pinned()}.Clone())
}

// GetEntry returns a single entry by id
func (h *Handlers) GetEntry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	entry, ok := h.store.Find(id)
	if !ok {
		http.Error(w, "entry not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, entry)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
