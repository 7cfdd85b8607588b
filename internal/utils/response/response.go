// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Every handler in this application sends JSON back to the client. Rather
// than repeating the same three lines (set header, set status, encode) in
// every handler, we centralise them here.
//
// Error responses always use the flat shape the frontend expects:
//
//	{ "error": "Student not found" }
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the standard envelope for error cases. Success responses may
// return any JSON shape (a student, a list, a stats object).
type Response struct {
	Error string `json:"error"`
}

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() then WriteHeader() then body writes. Once
// WriteHeader is called, headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// json.NewEncoder streams directly into w, avoiding an intermediate
	// buffer. Encode appends a newline, handy for CLI testing.
	return json.NewEncoder(w).Encode(data)
}

// Error builds an error envelope from a plain message.
func Error(msg string) Response {
	return Response{Error: msg}
}

// GeneralError wraps any Go error into the standard Response shape.
// Use this for unexpected errors (decode failures, storage errors).
func GeneralError(err error) Response {
	return Response{Error: err.Error()}
}

// ValidationError converts a slice of validator.FieldError values into a
// single human-readable Response. The validator package returns one
// FieldError per failing struct field; we join them so the client sees one
// descriptive string.
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{Error: strings.Join(errMessages, ", ")}
}
