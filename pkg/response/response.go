// Package response writes the uniform JSON envelope returned by every
// endpoint:
//
//	{ "status": bool, "message": string, "data": any|null, "error": any }
//
// status is true only for 2xx outcomes, so clients can branch on a single
// field. The error field is omitted when there is no diagnostic detail.
package response

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Error   interface{} `json:"error,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 envelope with data.
func Success(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusOK, envelope{Status: true, Message: message, Data: data})
}

// Created sends a 201 envelope with data.
func Created(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusCreated, envelope{Status: true, Message: message, Data: data})
}

// Error sends a failure envelope with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: false, Message: message})
}

// Fail sends a failure envelope carrying diagnostic error detail
// (a validation map, or an underlying error message on 500s).
func Fail(w http.ResponseWriter, status int, message string, detail interface{}) {
	write(w, status, envelope{Status: false, Message: message, Error: detail})
}

// ValidationError sends a 400 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	Fail(w, http.StatusBadRequest, "Validation failed", errs)
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// ServerError sends a 500 carrying the underlying error message.
// The detail is for diagnostics only, never for client trust.
func ServerError(w http.ResponseWriter, err error) {
	Fail(w, http.StatusInternalServerError, "Server error", err.Error())
}
