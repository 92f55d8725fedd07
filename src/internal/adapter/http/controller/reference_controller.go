package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/api-sage/pension-payment-processor/src/internal/commons"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/service_interfaces"
)

type ReferenceController struct {
	service service_interfaces.ReferenceService
}

func NewReferenceController(service service_interfaces.ReferenceService) *ReferenceController {
	return &ReferenceController{service: service}
}

func (c *ReferenceController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/references/accounts", protect(getReference(c.service.GetSenderAccounts), authMiddleware))
	mux.Handle("/references/tax-office", protect(getReference(c.service.GetTaxOffice), authMiddleware))
	mux.Handle("/references/payment-types", protect(getReference(c.service.GetPaymentTypes), authMiddleware))
	mux.Handle("/references/periods", protect(getReference(c.service.GetPeriods), authMiddleware))
	mux.Handle("/references/form-defaults", protect(getReference(c.service.GetFormDefaults), authMiddleware))
}

func getReference[T any](fetch func(ctx context.Context) (commons.Response[T], error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logRequest(r, nil)

		if r.Method != http.MethodGet {
			methodNotAllowed[T](w, r, start)
			return
		}

		response, err := fetch(r.Context())
		respond(w, r, start, http.StatusOK, response, err)
	}
}
