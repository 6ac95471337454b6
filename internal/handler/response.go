package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/techq/techq-be/internal/model"
)

// respondWithError sends {"error": message} with the given status code.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJson(w, code, map[string]string{"error": message})
}

// respondWithContactError is the contact form variant, which always carries
// a success flag.
func respondWithContactError(w http.ResponseWriter, code int, message string) {
	respondWithJson(w, code, model.DTOContactResponse{Success: false, Error: message})
}

// respondWithJson marshals payload and writes it with the status code.
func respondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	dat, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal JSON response: %v", payload)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(dat)
}
