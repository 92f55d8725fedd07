package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNoEmployees),
		errors.Is(err, domain.ErrNonPositiveAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateIIN):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respond writes a service result: status on success, the mapped error
// status otherwise.
func respond[T any](w http.ResponseWriter, r *http.Request, start time.Time, status int, response commons.Response[T], err error) {
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status = statusFor(err)
	}
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

func methodNotAllowed[T any](w http.ResponseWriter, r *http.Request, start time.Time) {
	response := commons.ErrorResponse[T]("method not allowed")
	writeJSON(w, http.StatusMethodNotAllowed, response)
	logResponse(r, http.StatusMethodNotAllowed, response, start)
}

// decodeBody reports false after writing a 400 response when the body is
// not valid JSON for req.
func decodeBody[T any](w http.ResponseWriter, r *http.Request, start time.Time, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[T]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return false
	}
	logRequest(r, req)
	return true
}

func protect(handler http.HandlerFunc, authMiddleware func(http.Handler) http.Handler) http.Handler {
	if authMiddleware == nil {
		return handler
	}
	return authMiddleware(handler)
}

type validatable interface {
	Validate() error
}

// validate reports false after writing a 400 response when req is invalid.
func validate[T any](w http.ResponseWriter, r *http.Request, start time.Time, req validatable) bool {
	err := req.Validate()
	if err == nil {
		return true
	}

	logError(r, err, nil)
	messages := []string{err.Error()}
	var fieldErrs models.FieldErrors
	if errors.As(err, &fieldErrs) {
		messages = fieldErrs.Messages()
	}
	response := commons.ErrorResponse[T]("validation failed", messages...)
	writeJSON(w, http.StatusBadRequest, response)
	logResponse(r, http.StatusBadRequest, response, start)
	return false
}
