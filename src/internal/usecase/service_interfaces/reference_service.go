package service_interfaces

import (
	"context"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
)

type ReferenceService interface {
	GetSenderAccounts(ctx context.Context) (commons.Response[[]string], error)
	GetTaxOffice(ctx context.Context) (commons.Response[models.TaxOfficeResponse], error)
	GetPaymentTypes(ctx context.Context) (commons.Response[[]models.PaymentTypeResponse], error)
	GetPeriods(ctx context.Context) (commons.Response[models.PeriodsResponse], error)
	GetFormDefaults(ctx context.Context) (commons.Response[models.FormDefaultsResponse], error)
}
