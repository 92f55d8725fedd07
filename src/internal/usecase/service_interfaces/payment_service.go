package service_interfaces

import (
	"context"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, req models.PaymentRequest) (commons.Response[models.PaymentResponse], error)
	ValidatePayment(ctx context.Context, req models.PaymentRequest) (commons.Response[models.ValidatePaymentResponse], error)
	GetPayment(ctx context.Context, id string) (commons.Response[models.PaymentResponse], error)
	ListPayments(ctx context.Context) (commons.Response[[]models.PaymentResponse], error)
}
