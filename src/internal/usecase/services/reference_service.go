package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/logger"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.ReferenceService = (*ReferenceService)(nil)

type ReferenceService struct {
	referenceRepo         domain.ReferenceRepository
	employeeRepo          domain.EmployeeRepository
	defaultDocumentNumber string
}

func NewReferenceService(referenceRepo domain.ReferenceRepository, employeeRepo domain.EmployeeRepository, defaultDocumentNumber string) *ReferenceService {
	return &ReferenceService{
		referenceRepo:         referenceRepo,
		employeeRepo:          employeeRepo,
		defaultDocumentNumber: defaultDocumentNumber,
	}
}

func (s *ReferenceService) GetSenderAccounts(ctx context.Context) (commons.Response[[]string], error) {
	logger.Info("reference service get sender accounts request", nil)

	accounts, err := s.referenceRepo.GetSenderAccounts(ctx)
	if err != nil {
		logger.Error("reference service get sender accounts failed", err, nil)
		return commons.ErrorResponse[[]string]("failed to get sender accounts", "Unable to fetch sender accounts right now"), err
	}

	logger.Info("reference service get sender accounts success", logger.Fields{
		"count": len(accounts),
	})

	return commons.SuccessResponse("sender accounts fetched successfully", accounts), nil
}

func (s *ReferenceService) GetTaxOffice(ctx context.Context) (commons.Response[models.TaxOfficeResponse], error) {
	logger.Info("reference service get tax office request", nil)

	taxOffice, err := s.referenceRepo.GetTaxOffice(ctx)
	if err != nil {
		logger.Error("reference service get tax office failed", err, nil)
		return commons.ErrorResponse[models.TaxOfficeResponse]("failed to get tax office", "Unable to fetch tax office right now"), err
	}

	return commons.SuccessResponse("tax office fetched successfully", mapTaxOfficeToResponse(taxOffice)), nil
}

func (s *ReferenceService) GetPaymentTypes(_ context.Context) (commons.Response[[]models.PaymentTypeResponse], error) {
	return commons.SuccessResponse("payment types fetched successfully", mapPaymentTypesToResponse()), nil
}

func (s *ReferenceService) GetPeriods(_ context.Context) (commons.Response[models.PeriodsResponse], error) {
	return commons.SuccessResponse("periods fetched successfully", mapPeriodsToResponse(time.Now())), nil
}

// GetFormDefaults loads everything a new payment form needs in one call.
func (s *ReferenceService) GetFormDefaults(ctx context.Context) (commons.Response[models.FormDefaultsResponse], error) {
	logger.Info("reference service get form defaults request", nil)

	var (
		accounts  []string
		taxOffice domain.TaxOffice
		directory []domain.Employee
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.referenceRepo.GetSenderAccounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		taxOffice, err = s.referenceRepo.GetTaxOffice(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		directory, err = s.employeeRepo.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("reference service get form defaults failed", err, nil)
		return commons.ErrorResponse[models.FormDefaultsResponse]("failed to get form defaults", "Unable to fetch form defaults right now"), err
	}

	response := models.FormDefaultsResponse{
		DocumentNumber: s.defaultDocumentNumber,
		PaymentType:    string(domain.PaymentTypeMandatory),
		PaymentPurpose: domain.PaymentTypeMandatory.Purpose(),
		SenderAccounts: accounts,
		TaxOffice:      mapTaxOfficeToResponse(taxOffice),
		PaymentTypes:   mapPaymentTypesToResponse(),
		Periods:        mapPeriodsToResponse(time.Now()),
		Directory:      mapEmployeesToResponse(directory),
	}

	logger.Info("reference service get form defaults success", logger.Fields{
		"senderAccounts": len(accounts),
		"directory":      len(directory),
	})

	return commons.SuccessResponse("form defaults fetched successfully", response), nil
}
