package handlers

import (
	"encoding/json"
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
}

// HandleHealth returns the health status of the service
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeHealth(w, "ok")
}

// HandleReadiness returns the readiness status of the service
func HandleReadiness(w http.ResponseWriter, r *http.Request) {
	writeHealth(w, "ready")
}

func writeHealth(w http.ResponseWriter, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthResponse{Status: status})
}
