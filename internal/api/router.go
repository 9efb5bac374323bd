package api

import (
	"fmt"
	"net/http"

	"flashvocab/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter exposes the vocabulary read-only over HTTP
func NewRouter(store *service.VocabStore, logger *zap.Logger) *mux.Router {
	h := &Handlers{store: store, logger: logger}

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, err := fmt.Fprintln(w, "OK"); err != nil {
			logger.Warn("Failed to write health response", zap.Error(err))
		}
	}).Methods("GET")
	r.HandleFunc("/api/vocab", h.ListVocab).Methods("GET")
	r.HandleFunc("/api/vocab/pinned", h.ListPinned).Methods("GET")
	r.HandleFunc("/api/vocab/{id}", h.GetEntry).Methods("GET")
	return r
}
