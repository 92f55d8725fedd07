package services

import (
	"context"
	"strings"
	"time"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/iin"
	"github.com/api-sage/pension-payment-processor/src/internal/logger"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.IINService = (*IINService)(nil)

type IINService struct{}

func NewIINService() *IINService {
	return &IINService{}
}

// CheckIIN accepts partial input: the birth date is derived as soon as the
// first seven digits are known, while Valid needs all twelve.
func (s *IINService) CheckIIN(_ context.Context, req models.CheckIINRequest) (commons.Response[models.CheckIINResponse], error) {
	logger.Info("iin service check request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("iin service check validation failed", err, nil)
		return commons.ErrorResponse[models.CheckIINResponse]("validation failed", err.Error()), validationError(err)
	}

	cleaned := iin.Clean(req.IIN)
	response := models.CheckIINResponse{
		IIN:          cleaned,
		FormattedIIN: iin.Format(cleaned),
		Complete:     len(cleaned) == iin.Length,
		Valid:        iin.Validate(cleaned),
	}
	if century, ok := iin.Century(cleaned); ok {
		response.Century = century
	}

	var warnings []domain.Message
	if derived, ok := iin.BirthDate(cleaned); ok {
		response.BirthDate = derived.Format(dateLayout)

		if entered := strings.TrimSpace(req.BirthDate); entered != "" {
			birthDate, _ := time.Parse(dateLayout, entered)
			if iin.BirthDateMismatch(cleaned, birthDate) {
				warnings = append(warnings, domain.BirthDateMismatchWarning())
			}
		}
	}

	logger.Info("iin service check success", logger.Fields{
		"iin":      cleaned,
		"valid":    response.Valid,
		"complete": response.Complete,
		"warnings": len(warnings),
	})

	message := "iin is invalid"
	if response.Valid {
		message = "iin is valid"
	}
	return commons.SuccessResponse(message, response).WithWarnings(warnings...), nil
}
