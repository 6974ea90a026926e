// internal/app/system/httpjson/httpjson.go

// Package httpjson provides small helpers for the JSON API surface.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// APIError is the uniform error body for all JSON endpoints.
type APIError struct {
	Error string `json:"error"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Read decodes the request body into dst, rejecting unknown fields.
func Read(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// Fail writes a JSON error body with the given status code.
func Fail(w http.ResponseWriter, status int, msg string) {
	Write(w, status, APIError{Error: msg})
}
