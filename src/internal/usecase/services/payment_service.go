package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/logger"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.PaymentService = (*PaymentService)(nil)

type PaymentService struct {
	paymentRepo   domain.PaymentRepository
	referenceRepo domain.ReferenceRepository
}

func NewPaymentService(paymentRepo domain.PaymentRepository, referenceRepo domain.ReferenceRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, referenceRepo: referenceRepo}
}

func (s *PaymentService) CreatePayment(ctx context.Context, req models.PaymentRequest) (commons.Response[models.PaymentResponse], error) {
	logger.Info("payment service create payment request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	now := time.Now()
	errs, err := s.fieldErrors(ctx, req, now)
	if err != nil {
		logger.Error("payment service create payment reference lookup failed", err, nil)
		return commons.ErrorResponse[models.PaymentResponse]("failed to create payment", "Unable to create payment right now"), err
	}
	if len(errs) > 0 {
		logger.Error("payment service create payment validation failed", errs, nil)
		return commons.ErrorResponse[models.PaymentResponse]("validation failed", errs.Messages()...), validationError(errs)
	}

	created, err := s.create(ctx, req.ToDomain(now))
	if err != nil {
		return paymentCreateFailure(err), err
	}

	return commons.SuccessResponse("payment created successfully", mapPaymentToResponse(created)), nil
}

// ValidatePayment reports field errors without storing anything. An
// invalid payment is still a successful call.
func (s *PaymentService) ValidatePayment(ctx context.Context, req models.PaymentRequest) (commons.Response[models.ValidatePaymentResponse], error) {
	logger.Info("payment service validate payment request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	errs, err := s.fieldErrors(ctx, req, time.Now())
	if err != nil {
		logger.Error("payment service validate payment reference lookup failed", err, nil)
		return commons.ErrorResponse[models.ValidatePaymentResponse]("failed to validate payment", "Unable to validate payment right now"), err
	}

	response := models.ValidatePaymentResponse{Valid: len(errs) == 0}
	if !response.Valid {
		response.Errors = errs
	}

	logger.Info("payment service validate payment success", logger.Fields{
		"valid":  response.Valid,
		"errors": len(errs),
	})

	if !response.Valid {
		return commons.SuccessResponse("payment is invalid", response), nil
	}
	return commons.SuccessResponse("payment is valid", response), nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id string) (commons.Response[models.PaymentResponse], error) {
	logger.Info("payment service get payment request", logger.Fields{
		"paymentId": id,
	})

	if strings.TrimSpace(id) == "" {
		return commons.ErrorResponse[models.PaymentResponse]("validation failed", "id is required"), validationError(fmt.Errorf("id is required"))
	}

	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("payment service get payment failed", err, logger.Fields{
			"paymentId": id,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.PaymentResponse]("Payment not found"), err
		}
		return commons.ErrorResponse[models.PaymentResponse]("failed to get payment", "Unable to fetch payment right now"), err
	}

	return commons.SuccessResponse("payment fetched successfully", mapPaymentToResponse(payment)), nil
}

func (s *PaymentService) ListPayments(ctx context.Context) (commons.Response[[]models.PaymentResponse], error) {
	logger.Info("payment service list payments request", nil)

	payments, err := s.paymentRepo.GetAll(ctx)
	if err != nil {
		logger.Error("payment service list payments failed", err, nil)
		return commons.ErrorResponse[[]models.PaymentResponse]("failed to get payments", "Unable to fetch payments right now"), err
	}

	response := make([]models.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, mapPaymentToResponse(p))
	}

	logger.Info("payment service list payments success", logger.Fields{
		"count": len(response),
	})

	return commons.SuccessResponse("payments fetched successfully", response), nil
}

// fieldErrors runs the request checks plus the ones that need reference
// data.
func (s *PaymentService) fieldErrors(ctx context.Context, req models.PaymentRequest, now time.Time) (models.FieldErrors, error) {
	errs := req.FieldErrors(now)

	account := strings.TrimSpace(req.SenderAccount)
	if account == "" {
		return errs, nil
	}

	accounts, err := s.referenceRepo.GetSenderAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sender accounts: %w", err)
	}
	if !slices.Contains(accounts, account) {
		errs.Add("senderAccount", "senderAccount is not one of the available accounts")
	}

	return errs, nil
}

// create addresses the payment to the tax office, recomputes the amount
// and stores it as CREATED.
func (s *PaymentService) create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	payment.RecalculateAmount()
	if len(payment.Employees) == 0 {
		return domain.Payment{}, domain.ErrNoEmployees
	}
	if !payment.Amount.GreaterThan(decimal.Zero) {
		return domain.Payment{}, domain.ErrNonPositiveAmount
	}

	taxOffice, err := s.referenceRepo.GetTaxOffice(ctx)
	if err != nil {
		logger.Error("payment service tax office lookup failed", err, nil)
		return domain.Payment{}, fmt.Errorf("get tax office: %w", err)
	}

	payment.ID = ""
	payment.RecipientAccount = taxOffice.Account
	payment.RecipientBIN = taxOffice.BIN
	payment.RecipientName = taxOffice.Name
	payment.Status = domain.PaymentStatusCreated

	created, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		logger.Error("payment service create payment repository failed", err, logger.Fields{
			"documentNumber": payment.DocumentNumber,
		})
		return domain.Payment{}, err
	}

	logger.Info("payment service create payment success", logger.Fields{
		"paymentId":      created.ID,
		"documentNumber": created.DocumentNumber,
		"amount":         created.Amount.String(),
		"employees":      len(created.Employees),
	})

	return created, nil
}

func paymentCreateFailure(err error) commons.Response[models.PaymentResponse] {
	switch {
	case errors.Is(err, domain.ErrNoEmployees), errors.Is(err, domain.ErrNonPositiveAmount):
		return commons.ErrorResponse[models.PaymentResponse]("validation failed", err.Error())
	default:
		return commons.ErrorResponse[models.PaymentResponse]("failed to create payment", "Unable to create payment right now")
	}
}
