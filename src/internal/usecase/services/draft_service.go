package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/iin"
	"github.com/api-sage/pension-payment-processor/src/internal/logger"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.DraftService = (*DraftService)(nil)

// DraftService drives a payment form session: a draft is opened with
// defaults, edited, and either submitted as a payment or discarded.
type DraftService struct {
	draftRepo             domain.DraftRepository
	employeeRepo          domain.EmployeeRepository
	referenceRepo         domain.ReferenceRepository
	paymentService        *PaymentService
	defaultDocumentNumber string
}

func NewDraftService(
	draftRepo domain.DraftRepository,
	employeeRepo domain.EmployeeRepository,
	referenceRepo domain.ReferenceRepository,
	paymentService *PaymentService,
	defaultDocumentNumber string,
) *DraftService {
	return &DraftService{
		draftRepo:             draftRepo,
		employeeRepo:          employeeRepo,
		referenceRepo:         referenceRepo,
		paymentService:        paymentService,
		defaultDocumentNumber: defaultDocumentNumber,
	}
}

func (s *DraftService) OpenDraft(ctx context.Context) (commons.Response[models.PaymentResponse], error) {
	logger.Info("draft service open draft request", nil)

	accounts, err := s.referenceRepo.GetSenderAccounts(ctx)
	if err != nil {
		logger.Error("draft service open draft accounts lookup failed", err, nil)
		return commons.ErrorResponse[models.PaymentResponse]("failed to open draft", "Unable to open draft right now"), err
	}
	taxOffice, err := s.referenceRepo.GetTaxOffice(ctx)
	if err != nil {
		logger.Error("draft service open draft tax office lookup failed", err, nil)
		return commons.ErrorResponse[models.PaymentResponse]("failed to open draft", "Unable to open draft right now"), err
	}

	senderAccount := ""
	if len(accounts) > 0 {
		senderAccount = accounts[0]
	}

	draft, err := s.draftRepo.Save(ctx, domain.NewDraft(s.defaultDocumentNumber, senderAccount, taxOffice))
	if err != nil {
		logger.Error("draft service open draft repository failed", err, nil)
		return commons.ErrorResponse[models.PaymentResponse]("failed to open draft", "Unable to open draft right now"), err
	}

	logger.Info("draft service open draft success", logger.Fields{
		"draftId": draft.ID,
	})

	return commons.SuccessResponse("draft opened successfully", mapPaymentToResponse(draft)), nil
}

func (s *DraftService) GetDraft(ctx context.Context, id string) (commons.Response[models.PaymentResponse], error) {
	logger.Info("draft service get draft request", logger.Fields{
		"draftId": id,
	})

	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		logger.Error("draft service get draft failed", err, logger.Fields{
			"draftId": id,
		})
		return draftFailure[models.PaymentResponse]("failed to get draft", err), err
	}

	return commons.SuccessResponse("draft fetched successfully", mapPaymentToResponse(draft)), nil
}

func (s *DraftService) UpdateDraftDetails(ctx context.Context, id string, req models.UpdateDraftDetailsRequest) (commons.Response[models.PaymentResponse], error) {
	logger.Info("draft service update details request", logger.Fields{
		"draftId": id,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("draft service update details validation failed", err, nil)
		return commons.ErrorResponse[models.PaymentResponse]("validation failed", err.Error()), validationError(err)
	}

	if req.SenderAccount != nil {
		accounts, err := s.referenceRepo.GetSenderAccounts(ctx)
		if err != nil {
			logger.Error("draft service update details accounts lookup failed", err, nil)
			return commons.ErrorResponse[models.PaymentResponse]("failed to update draft", "Unable to update draft right now"), err
		}
		if !slices.Contains(accounts, strings.TrimSpace(*req.SenderAccount)) {
			err := fmt.Errorf("senderAccount is not one of the available accounts")
			return commons.ErrorResponse[models.PaymentResponse]("validation failed", "senderAccount: "+err.Error()), validationError(err)
		}
	}

	draft, err := s.draftRepo.Update(ctx, id, func(draft *domain.Payment) error {
		applyDraftDetails(draft, req)
		return nil
	})
	if err != nil {
		logger.Error("draft service update details failed", err, logger.Fields{
			"draftId": id,
		})
		return draftFailure[models.PaymentResponse]("failed to update draft", err), err
	}

	logger.Info("draft service update details success", logger.Fields{
		"draftId": draft.ID,
	})

	return commons.SuccessResponse("draft updated successfully", mapPaymentToResponse(draft)), nil
}

// AddNewEmployee appends an employee typed into the form. The employee is
// also stored in the directory unless the directory already knows the IIN.
func (s *DraftService) AddNewEmployee(ctx context.Context, id string, req models.CreateEmployeeRequest) (commons.Response[models.AddDraftEmployeeResponse], error) {
	logger.Info("draft service add new employee request", logger.Fields{
		"draftId": id,
		"payload": logger.SanitizePayload(req),
	})

	now := time.Now()
	if errs := req.FieldErrors(now); len(errs) > 0 {
		logger.Error("draft service add new employee validation failed", errs, nil)
		return commons.ErrorResponse[models.AddDraftEmployeeResponse]("validation failed", errs.Messages()...), validationError(errs)
	}
	employee := req.ToDomain(now)

	current, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		logger.Error("draft service add new employee draft lookup failed", err, logger.Fields{
			"draftId": id,
		})
		return draftFailure[models.AddDraftEmployeeResponse]("failed to add employee", err), err
	}
	if current.HasIIN(employee.IIN) {
		logger.Info("draft service add new employee duplicate iin", logger.Fields{
			"draftId": id,
			"iin":     employee.IIN,
		})
		return draftFailure[models.AddDraftEmployeeResponse]("failed to add employee", domain.ErrDuplicateIIN), domain.ErrDuplicateIIN
	}

	addedToDirectory := false
	known, err := s.employeeRepo.GetByIIN(ctx, employee.IIN)
	switch {
	case err == nil:
		employee.ID = known.ID
	case errors.Is(err, domain.ErrRecordNotFound):
		created, createErr := s.employeeRepo.Create(ctx, employee)
		if createErr != nil && !errors.Is(createErr, domain.ErrDuplicateIIN) {
			logger.Error("draft service add new employee directory create failed", createErr, logger.Fields{
				"iin": employee.IIN,
			})
			return commons.ErrorResponse[models.AddDraftEmployeeResponse]("failed to add employee", "Unable to add employee right now"), createErr
		}
		if createErr == nil {
			employee.ID = created.ID
			addedToDirectory = true
		}
	default:
		logger.Error("draft service add new employee directory lookup failed", err, logger.Fields{
			"iin": employee.IIN,
		})
		return commons.ErrorResponse[models.AddDraftEmployeeResponse]("failed to add employee", "Unable to add employee right now"), err
	}
	if employee.ID == "" {
		employee.ID = uuid.NewString()
	}

	draft, err := s.draftRepo.Update(ctx, id, func(draft *domain.Payment) error {
		return draft.AddEmployee(employee)
	})
	if err != nil {
		logger.Error("draft service add new employee failed", err, logger.Fields{
			"draftId": id,
		})
		if addedToDirectory {
			s.forgetDirectoryEmployee(ctx, employee.ID)
		}
		return draftFailure[models.AddDraftEmployeeResponse]("failed to add employee", err), err
	}

	warnings := birthDateWarnings(employee)
	response := models.AddDraftEmployeeResponse{
		Draft:            mapPaymentToResponse(draft),
		Employee:         mapEmployeeToResponse(employee),
		AddedToDirectory: addedToDirectory,
	}

	logger.Info("draft service add new employee success", logger.Fields{
		"draftId":          draft.ID,
		"employeeId":       employee.ID,
		"addedToDirectory": addedToDirectory,
		"warnings":         len(warnings),
	})

	return commons.SuccessResponse("employee added successfully", response).WithWarnings(warnings...), nil
}

// AddFromDirectory appends directory employees; ones whose IIN is already
// in the draft are skipped.
func (s *DraftService) AddFromDirectory(ctx context.Context, id string, req models.AddFromDirectoryRequest) (commons.Response[models.AddFromDirectoryResponse], error) {
	logger.Info("draft service add from directory request", logger.Fields{
		"draftId": id,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("draft service add from directory validation failed", err, nil)
		return commons.ErrorResponse[models.AddFromDirectoryResponse]("validation failed", err.Error()), validationError(err)
	}

	picked := make([]domain.Employee, 0, len(req.EmployeeIDs))
	for _, employeeID := range req.EmployeeIDs {
		employee, err := s.employeeRepo.GetByID(ctx, strings.TrimSpace(employeeID))
		if err != nil {
			logger.Error("draft service add from directory lookup failed", err, logger.Fields{
				"employeeId": employeeID,
			})
			if errors.Is(err, domain.ErrRecordNotFound) {
				return commons.ErrorResponse[models.AddFromDirectoryResponse]("Employee not found", "employee "+employeeID+" does not exist"), err
			}
			return commons.ErrorResponse[models.AddFromDirectoryResponse]("failed to add employees", "Unable to add employees right now"), err
		}
		picked = append(picked, employee)
	}

	added, skipped := 0, 0
	draft, err := s.draftRepo.Update(ctx, id, func(draft *domain.Payment) error {
		added, skipped = 0, 0
		for _, employee := range picked {
			if draft.HasIIN(employee.IIN) {
				skipped++
				continue
			}
			if err := draft.AddEmployee(employee); err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		logger.Error("draft service add from directory failed", err, logger.Fields{
			"draftId": id,
		})
		return draftFailure[models.AddFromDirectoryResponse]("failed to add employees", err), err
	}

	logger.Info("draft service add from directory success", logger.Fields{
		"draftId": draft.ID,
		"added":   added,
		"skipped": skipped,
	})

	response := models.AddFromDirectoryResponse{
		Draft:   mapPaymentToResponse(draft),
		Added:   added,
		Skipped: skipped,
	}
	return commons.SuccessResponse("employees added successfully", response), nil
}

func (s *DraftService) UpdateDraftEmployee(ctx context.Context, id string, employeeID string, req models.UpdateEmployeeRequest) (commons.Response[models.PaymentResponse], error) {
	logger.Info("draft service update employee request", logger.Fields{
		"draftId":    id,
		"employeeId": employeeID,
		"payload":    logger.SanitizePayload(req),
	})

	if errs := req.FieldErrors(time.Now()); len(errs) > 0 {
		logger.Error("draft service update employee validation failed", errs, nil)
		return commons.ErrorResponse[models.PaymentResponse]("validation failed", errs.Messages()...), validationError(errs)
	}

	draft, err := s.draftRepo.Update(ctx, id, func(draft *domain.Payment) error {
		_, err := draft.UpdateEmployee(employeeID, req.ToPatch())
		return err
	})
	if err != nil {
		logger.Error("draft service update employee failed", err, logger.Fields{
			"draftId":    id,
			"employeeId": employeeID,
		})
		return draftFailure[models.PaymentResponse]("failed to update employee", err), err
	}

	logger.Info("draft service update employee success", logger.Fields{
		"draftId":    draft.ID,
		"employeeId": employeeID,
		"amount":     draft.Amount.String(),
	})

	return commons.SuccessResponse("employee updated successfully", mapPaymentToResponse(draft)), nil
}

func (s *DraftService) RemoveDraftEmployee(ctx context.Context, id string, employeeID string) (commons.Response[models.PaymentResponse], error) {
	logger.Info("draft service remove employee request", logger.Fields{
		"draftId":    id,
		"employeeId": employeeID,
	})

	draft, err := s.draftRepo.Update(ctx, id, func(draft *domain.Payment) error {
		_, err := draft.RemoveEmployee(employeeID)
		return err
	})
	if err != nil {
		logger.Error("draft service remove employee failed", err, logger.Fields{
			"draftId":    id,
			"employeeId": employeeID,
		})
		return draftFailure[models.PaymentResponse]("failed to remove employee", err), err
	}

	logger.Info("draft service remove employee success", logger.Fields{
		"draftId":    draft.ID,
		"employeeId": employeeID,
		"amount":     draft.Amount.String(),
	})

	return commons.SuccessResponse("employee removed successfully", mapPaymentToResponse(draft)), nil
}

// SubmitDraft stores the draft as a CREATED payment and discards it. An
// invalid draft is kept and its field errors are returned.
func (s *DraftService) SubmitDraft(ctx context.Context, id string) (commons.Response[models.SubmitDraftResponse], error) {
	logger.Info("draft service submit draft request", logger.Fields{
		"draftId": id,
	})

	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		logger.Error("draft service submit draft lookup failed", err, logger.Fields{
			"draftId": id,
		})
		return draftFailure[models.SubmitDraftResponse]("failed to submit draft", err), err
	}

	errs, err := s.paymentService.fieldErrors(ctx, mapDraftToPaymentRequest(draft), time.Now())
	if err != nil {
		logger.Error("draft service submit draft reference lookup failed", err, nil)
		return commons.ErrorResponse[models.SubmitDraftResponse]("failed to submit draft", "Unable to submit draft right now"), err
	}
	if len(errs) > 0 {
		logger.Error("draft service submit draft validation failed", errs, logger.Fields{
			"draftId": id,
		})
		response := commons.ErrorResponse[models.SubmitDraftResponse]("validation failed", errs.Messages()...)
		response.Data = &models.SubmitDraftResponse{Validation: errs}
		return response, validationError(errs)
	}

	created, err := s.paymentService.create(ctx, draft.Clone())
	if err != nil {
		return draftFailure[models.SubmitDraftResponse]("failed to submit draft", err), err
	}

	if err := s.draftRepo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrDraftNotFound) {
		logger.Error("draft service submit draft discard failed", err, logger.Fields{
			"draftId":   id,
			"paymentId": created.ID,
		})
	}

	logger.Info("draft service submit draft success", logger.Fields{
		"draftId":   id,
		"paymentId": created.ID,
	})

	payment := mapPaymentToResponse(created)
	return commons.SuccessResponse("payment created successfully", models.SubmitDraftResponse{Payment: &payment}), nil
}

func (s *DraftService) DiscardDraft(ctx context.Context, id string) (commons.Response[models.PaymentResponse], error) {
	logger.Info("draft service discard draft request", logger.Fields{
		"draftId": id,
	})

	draft, err := s.draftRepo.Get(ctx, id)
	if err == nil {
		err = s.draftRepo.Delete(ctx, id)
	}
	if err != nil {
		logger.Error("draft service discard draft failed", err, logger.Fields{
			"draftId": id,
		})
		return draftFailure[models.PaymentResponse]("failed to discard draft", err), err
	}

	logger.Info("draft service discard draft success", logger.Fields{
		"draftId": id,
	})

	return commons.SuccessResponse("draft discarded successfully", mapPaymentToResponse(draft)), nil
}

// forgetDirectoryEmployee undoes a directory insert made for a draft line
// that was never stored.
func (s *DraftService) forgetDirectoryEmployee(ctx context.Context, employeeID string) {
	if _, err := s.employeeRepo.Delete(ctx, employeeID); err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		logger.Error("draft service directory rollback failed", err, logger.Fields{
			"employeeId": employeeID,
		})
	}
}

func applyDraftDetails(draft *domain.Payment, req models.UpdateDraftDetailsRequest) {
	if req.DocumentNumber != nil {
		draft.DocumentNumber = strings.TrimSpace(*req.DocumentNumber)
	}
	if req.PaymentType != nil {
		if paymentType, ok := domain.ParsePaymentType(*req.PaymentType); ok {
			draft.SetPaymentType(paymentType)
		}
	}
	if req.PaymentPurpose != nil {
		draft.PaymentPurpose = strings.TrimSpace(*req.PaymentPurpose)
	}
	if req.SenderAccount != nil {
		draft.SenderAccount = strings.TrimSpace(*req.SenderAccount)
	}
	if req.IsActualPayer != nil {
		draft.IsActualPayer = *req.IsActualPayer
	}
	if req.ActualPayerBIN != nil {
		draft.ActualPayerBIN = iin.Clean(*req.ActualPayerBIN)
	}
	if req.ActualPayerName != nil {
		draft.ActualPayerName = strings.TrimSpace(*req.ActualPayerName)
	}
	if !draft.IsActualPayer {
		draft.ActualPayerBIN = ""
		draft.ActualPayerName = ""
	}
}

// draftFailure maps a draft operation error to its response envelope.
func draftFailure[T any](fallback string, err error) commons.Response[T] {
	switch {
	case errors.Is(err, domain.ErrDraftNotFound):
		return commons.ErrorResponse[T]("Draft not found")
	case errors.Is(err, domain.ErrRecordNotFound):
		return commons.ErrorResponse[T]("Employee not found")
	case errors.Is(err, domain.ErrDuplicateIIN):
		return commons.ErrorResponse[T]("duplicate employee", domain.ErrDuplicateIIN.Error())
	case errors.Is(err, domain.ErrNoEmployees), errors.Is(err, domain.ErrNonPositiveAmount):
		return commons.ErrorResponse[T]("validation failed", err.Error())
	default:
		return commons.ErrorResponse[T](fallback, "Unable to process draft right now")
	}
}
