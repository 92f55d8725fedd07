package service_interfaces

import (
	"context"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req models.CreateEmployeeRequest) (commons.Response[models.CreateEmployeeResponse], error)
	GetEmployee(ctx context.Context, id string) (commons.Response[models.EmployeeResponse], error)
	ListEmployees(ctx context.Context) (commons.Response[[]models.EmployeeResponse], error)
	UpdateEmployee(ctx context.Context, id string, req models.UpdateEmployeeRequest) (commons.Response[models.EmployeeResponse], error)
	DeleteEmployee(ctx context.Context, id string) (commons.Response[models.EmployeeResponse], error)
	SearchEmployees(ctx context.Context, query string) (commons.Response[[]models.EmployeeResponse], error)
}
