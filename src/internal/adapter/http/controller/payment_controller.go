package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/service_interfaces"
)

type PaymentController struct {
	service service_interfaces.PaymentService
}

func NewPaymentController(service service_interfaces.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

func (c *PaymentController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/payments", protect(c.payments, authMiddleware))
	mux.Handle("/payments/validate", protect(c.validatePayment, authMiddleware))
	mux.Handle("/payments/{id}", protect(c.payment, authMiddleware))
}

func (c *PaymentController) payments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	switch r.Method {
	case http.MethodGet:
		response, err := c.service.ListPayments(r.Context())
		respond(w, r, start, http.StatusOK, response, err)
	case http.MethodPost:
		var req models.PaymentRequest
		if !decodeBody[models.PaymentResponse](w, r, start, &req) {
			return
		}
		if !validate[models.PaymentResponse](w, r, start, req) {
			return
		}
		response, err := c.service.CreatePayment(r.Context(), req)
		respond(w, r, start, http.StatusCreated, response, err)
	default:
		methodNotAllowed[models.PaymentResponse](w, r, start)
	}
}

// validatePayment answers 200 for invalid payments too; the verdict is in
// the body.
func (c *PaymentController) validatePayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		methodNotAllowed[models.ValidatePaymentResponse](w, r, start)
		return
	}

	var req models.PaymentRequest
	if !decodeBody[models.ValidatePaymentResponse](w, r, start, &req) {
		return
	}

	response, err := c.service.ValidatePayment(r.Context(), req)
	respond(w, r, start, http.StatusOK, response, err)
}

func (c *PaymentController) payment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		methodNotAllowed[models.PaymentResponse](w, r, start)
		return
	}

	response, err := c.service.GetPayment(r.Context(), r.PathValue("id"))
	respond(w, r, start, http.StatusOK, response, err)
}
