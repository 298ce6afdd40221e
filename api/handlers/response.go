package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linesmerrill/la-crime-api/config"
	"github.com/linesmerrill/la-crime-api/logging"
	"github.com/linesmerrill/la-crime-api/models"
)

// MessageResponse is the body of a successful write
type MessageResponse struct {
	Message string `json:"message"`
}

func writeResponse(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// errorStatus maps an error kind to its status code and writes it. Store
// failures are logged with their cause and reported without it.
func errorStatus(w http.ResponseWriter, r *http.Request, err error) {
	log := logging.FromContext(r.Context())

	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Infow("validation failed", "fields", validationErr.Fields)
		config.WriteError(w, http.StatusBadRequest, models.MessageError{
			Message: "validation failed",
			Error:   validationErr.Error(),
			Fields:  validationErr.Fields,
		})
	case errors.Is(err, models.ErrInput):
		log.Infow("invalid input", "error", err)
		config.WriteError(w, http.StatusBadRequest, models.MessageError{Message: "invalid input", Error: err.Error()})
	case errors.Is(err, models.ErrNotFound):
		config.WriteError(w, http.StatusNotFound, models.MessageError{Message: "not found", Error: err.Error()})
	case errors.Is(err, models.ErrConflict):
		config.WriteError(w, http.StatusConflict, models.MessageError{Message: "conflict", Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		log.Warnw("query timed out", "error", err)
		config.WriteError(w, http.StatusRequestTimeout, models.MessageError{Message: "Request timeout", Error: "The request took too long to process"})
	default:
		log.Errorw("request failed", "error", err)
		config.WriteError(w, http.StatusInternalServerError, models.MessageError{Message: "internal error", Error: "the document store failed to process the request"})
	}
}

// decodeBody decodes a JSON request body into v
func decodeBody(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return models.NewInputError("", "request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return models.NewInputError("", "failed to decode request body: "+err.Error())
	}
	return nil
}
