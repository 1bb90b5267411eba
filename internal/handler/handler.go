package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes caps request bodies accepted by the handlers.
const maxBodyBytes = 1 << 20

// errFieldMismatch marks a well-formed body whose fields do not fit a product
// row: unknown fields or values of the wrong type.
var errFieldMismatch = errors.New("request body does not match product fields")

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code, code and
// message. Client errors are logged at warn, server errors at error.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.RequestIDFromContext(r.Context())

	event := logger.Error()
	if status < http.StatusInternalServerError {
		event = logger.Warn()
	}
	event.
		Str("error", message).
		Str("code", code).
		Int("status", status).
		Str("request_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// decodeJSON strictly decodes a single JSON object from the request body.
// Syntax problems are returned as is; a body that parses but does not fit dst
// is wrapped with errFieldMismatch.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &syntaxErr),
			errors.As(err, &maxBytesErr),
			errors.Is(err, io.EOF),
			errors.Is(err, io.ErrUnexpectedEOF):
			return err
		default:
			return fmt.Errorf("%w: %v", errFieldMismatch, err)
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("request body must contain a single JSON object")
	}

	return nil
}
