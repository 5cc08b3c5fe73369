package shared

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON response shape shared by every endpoint.
// Payload fields are flattened next to Success.
type Envelope map[string]any

// RespondJSON writes a success envelope with the given payload fields.
func RespondJSON(w http.ResponseWriter, status int, payload Envelope) {
	body := Envelope{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	writeJSON(w, status, body)
}

// RespondError writes a failure envelope. The message is optional and
// should stay generic for internal failures.
func RespondError(w http.ResponseWriter, status int, errLabel, message string) {
	body := Envelope{"success": false, "error": errLabel}
	if message != "" {
		body["message"] = message
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
