package service_interfaces

import (
	"context"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
)

type IINService interface {
	CheckIIN(ctx context.Context, req models.CheckIINRequest) (commons.Response[models.CheckIINResponse], error)
}
