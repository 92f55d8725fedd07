package service_interfaces

import (
	"context"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
)

type DraftService interface {
	OpenDraft(ctx context.Context) (commons.Response[models.PaymentResponse], error)
	GetDraft(ctx context.Context, id string) (commons.Response[models.PaymentResponse], error)
	UpdateDraftDetails(ctx context.Context, id string, req models.UpdateDraftDetailsRequest) (commons.Response[models.PaymentResponse], error)
	AddNewEmployee(ctx context.Context, id string, req models.CreateEmployeeRequest) (commons.Response[models.AddDraftEmployeeResponse], error)
	AddFromDirectory(ctx context.Context, id string, req models.AddFromDirectoryRequest) (commons.Response[models.AddFromDirectoryResponse], error)
	UpdateDraftEmployee(ctx context.Context, id string, employeeID string, req models.UpdateEmployeeRequest) (commons.Response[models.PaymentResponse], error)
	RemoveDraftEmployee(ctx context.Context, id string, employeeID string) (commons.Response[models.PaymentResponse], error)
	SubmitDraft(ctx context.Context, id string) (commons.Response[models.SubmitDraftResponse], error)
	DiscardDraft(ctx context.Context, id string) (commons.Response[models.PaymentResponse], error)
}
