package handlers

import (
	"encoding/json"
	"net/http"
)

// statusEnvelope is the wire format shared with the device firmware.
type statusEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, statusEnvelope{Status: "success", Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, statusEnvelope{Status: "error", Message: message})
}
