package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/iin"
	"github.com/api-sage/pension-payment-processor/src/internal/logger"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.EmployeeService = (*EmployeeService)(nil)

type EmployeeService struct {
	employeeRepo domain.EmployeeRepository
}

func NewEmployeeService(employeeRepo domain.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, req models.CreateEmployeeRequest) (commons.Response[models.CreateEmployeeResponse], error) {
	logger.Info("employee service create employee request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	now := time.Now()
	if errs := req.FieldErrors(now); len(errs) > 0 {
		logger.Error("employee service create employee validation failed", errs, nil)
		return commons.ErrorResponse[models.CreateEmployeeResponse]("validation failed", errs.Messages()...), validationError(errs)
	}

	employee := req.ToDomain(now)
	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		logger.Error("employee service create employee repository failed", err, logger.Fields{
			"iin": employee.IIN,
		})
		if errors.Is(err, domain.ErrDuplicateIIN) {
			return commons.ErrorResponse[models.CreateEmployeeResponse]("duplicate employee", domain.ErrDuplicateIIN.Error()), err
		}
		return commons.ErrorResponse[models.CreateEmployeeResponse]("failed to create employee", "Unable to create employee right now"), err
	}

	response := models.CreateEmployeeResponse{Employee: mapEmployeeToResponse(created)}
	if derived, ok := iin.BirthDate(created.IIN); ok {
		response.IINBirthDate = derived.Format(dateLayout)
	}
	warnings := birthDateWarnings(created)

	logger.Info("employee service create employee success", logger.Fields{
		"employeeId": created.ID,
		"iin":        created.IIN,
		"warnings":   len(warnings),
	})

	return commons.SuccessResponse("employee created successfully", response).WithWarnings(warnings...), nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id string) (commons.Response[models.EmployeeResponse], error) {
	logger.Info("employee service get employee request", logger.Fields{
		"employeeId": id,
	})

	if strings.TrimSpace(id) == "" {
		return commons.ErrorResponse[models.EmployeeResponse]("validation failed", "id is required"), validationError(fmt.Errorf("id is required"))
	}

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("employee service get employee failed", err, logger.Fields{
			"employeeId": id,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.EmployeeResponse]("Employee not found"), err
		}
		return commons.ErrorResponse[models.EmployeeResponse]("failed to get employee", "Unable to fetch employee right now"), err
	}

	logger.Info("employee service get employee success", logger.Fields{
		"employeeId": employee.ID,
	})

	return commons.SuccessResponse("employee fetched successfully", mapEmployeeToResponse(employee)), nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context) (commons.Response[[]models.EmployeeResponse], error) {
	logger.Info("employee service list employees request", nil)

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		logger.Error("employee service list employees failed", err, nil)
		return commons.ErrorResponse[[]models.EmployeeResponse]("failed to get employees", "Unable to fetch employees right now"), err
	}

	response := mapEmployeesToResponse(employees)
	logger.Info("employee service list employees success", logger.Fields{
		"count": len(response),
	})

	return commons.SuccessResponse("employees fetched successfully", response), nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id string, req models.UpdateEmployeeRequest) (commons.Response[models.EmployeeResponse], error) {
	logger.Info("employee service update employee request", logger.Fields{
		"employeeId": id,
		"payload":    logger.SanitizePayload(req),
	})

	if strings.TrimSpace(id) == "" {
		return commons.ErrorResponse[models.EmployeeResponse]("validation failed", "id is required"), validationError(fmt.Errorf("id is required"))
	}
	if errs := req.FieldErrors(time.Now()); len(errs) > 0 {
		logger.Error("employee service update employee validation failed", errs, nil)
		return commons.ErrorResponse[models.EmployeeResponse]("validation failed", errs.Messages()...), validationError(errs)
	}

	current, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("employee service update employee lookup failed", err, logger.Fields{
			"employeeId": id,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.EmployeeResponse]("Employee not found"), err
		}
		return commons.ErrorResponse[models.EmployeeResponse]("failed to update employee", "Unable to update employee right now"), err
	}

	updated, err := s.employeeRepo.Update(ctx, req.ToPatch().Apply(current))
	if err != nil {
		logger.Error("employee service update employee repository failed", err, logger.Fields{
			"employeeId": id,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.EmployeeResponse]("Employee not found"), err
		}
		return commons.ErrorResponse[models.EmployeeResponse]("failed to update employee", "Unable to update employee right now"), err
	}

	logger.Info("employee service update employee success", logger.Fields{
		"employeeId": updated.ID,
	})

	return commons.SuccessResponse("employee updated successfully", mapEmployeeToResponse(updated)), nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id string) (commons.Response[models.EmployeeResponse], error) {
	logger.Info("employee service delete employee request", logger.Fields{
		"employeeId": id,
	})

	if strings.TrimSpace(id) == "" {
		return commons.ErrorResponse[models.EmployeeResponse]("validation failed", "id is required"), validationError(fmt.Errorf("id is required"))
	}

	deleted, err := s.employeeRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("employee service delete employee failed", err, logger.Fields{
			"employeeId": id,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.EmployeeResponse]("Employee not found"), err
		}
		return commons.ErrorResponse[models.EmployeeResponse]("failed to delete employee", "Unable to delete employee right now"), err
	}

	logger.Info("employee service delete employee success", logger.Fields{
		"employeeId": deleted.ID,
	})

	return commons.SuccessResponse("employee deleted successfully", mapEmployeeToResponse(deleted)), nil
}

// SearchEmployees returns the whole directory for a blank query.
func (s *EmployeeService) SearchEmployees(ctx context.Context, query string) (commons.Response[[]models.EmployeeResponse], error) {
	logger.Info("employee service search employees request", logger.Fields{
		"query": query,
	})

	query = strings.TrimSpace(query)
	var (
		employees []domain.Employee
		err       error
	)
	if query == "" {
		employees, err = s.employeeRepo.GetAll(ctx)
	} else {
		employees, err = s.employeeRepo.Search(ctx, query)
	}
	if err != nil {
		logger.Error("employee service search employees failed", err, logger.Fields{
			"query": query,
		})
		return commons.ErrorResponse[[]models.EmployeeResponse]("failed to search employees", "Unable to search employees right now"), err
	}

	response := mapEmployeesToResponse(employees)
	logger.Info("employee service search employees success", logger.Fields{
		"query": query,
		"count": len(response),
	})

	return commons.SuccessResponse("employees fetched successfully", response), nil
}
