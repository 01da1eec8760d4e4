package health

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const StatusHealthy = "HEALTHY"

type status struct {
	Status string `json:"status"`
}

// @Summary Health check
// @Tags health
// @Success 200 {object} status
// @Router /health [get]
func RegisterRoutes(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(status{Status: StatusHealthy})
	})
}
