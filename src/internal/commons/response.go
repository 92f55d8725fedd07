package commons

import "github.com/api-sage/pension-payment-processor/src/internal/domain"

type Response[T any] struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Data     *T               `json:"data,omitempty"`
	Errors   []string         `json:"errors,omitempty"`
	Warnings []domain.Message `json:"warnings,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

// WithWarnings keeps the response successful; warnings never block.
func (r Response[T]) WithWarnings(warnings ...domain.Message) Response[T] {
	if len(warnings) == 0 {
		return r
	}
	r.Warnings = append(r.Warnings, warnings...)
	return r
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}
