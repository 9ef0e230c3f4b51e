package common

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the JSON shape shared by every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *log.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Printf("JSON エンコードに失敗: %v", err)
	}
}

// WriteData writes a successful envelope carrying data.
func WriteData(logger *log.Logger, w http.ResponseWriter, status int, data any) {
	WriteJSON(logger, w, status, Envelope{Success: true, Data: data})
}

// WriteList writes a successful envelope carrying a list with its counts.
func WriteList(logger *log.Logger, w http.ResponseWriter, data any, count, total int) {
	WriteJSON(logger, w, http.StatusOK, Envelope{Success: true, Data: data, Count: IntPtr(count), Total: IntPtr(total)})
}

// WriteMessage writes a successful envelope carrying only a message.
func WriteMessage(logger *log.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(logger, w, status, Envelope{Success: true, Message: message})
}

// WriteError writes a failed envelope. message is shown to clients; errText is optional detail.
func WriteError(logger *log.Logger, w http.ResponseWriter, status int, message, errText string) {
	WriteJSON(logger, w, status, Envelope{Success: false, Message: message, Error: errText})
}
