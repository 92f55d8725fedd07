package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/pension-payment-processor/src/internal/logger"
)

// requestFields identifies the request in every line it logs. Identifiers
// in the path stay visible; the payload is masked by the logger.
func requestFields(r *http.Request) logger.Fields {
	fields := logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if r.Pattern != "" {
		fields["route"] = r.Pattern
	}
	if r.URL.RawQuery != "" {
		fields["query"] = r.URL.RawQuery
	}
	return fields
}

func logRequest(r *http.Request, payload any) {
	fields := requestFields(r)
	if payload != nil {
		fields["payload"] = logger.SanitizePayload(payload)
	}
	logger.Info("http request", fields)
}

// logResponse logs client errors as WARN and server errors as ERROR.
func logResponse(r *http.Request, status int, payload any, start time.Time) {
	fields := requestFields(r)
	fields["status"] = status
	fields["durationMs"] = time.Since(start).Milliseconds()
	fields["response"] = logger.SanitizePayload(payload)

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("http response", nil, fields)
	case status >= http.StatusBadRequest:
		logger.Warn("http response", fields)
	default:
		logger.Info("http response", fields)
	}
}

func logError(r *http.Request, err error, extra logger.Fields) {
	fields := requestFields(r)
	for k, v := range extra {
		fields[k] = v
	}
	logger.Error("http handler error", err, fields)
}
