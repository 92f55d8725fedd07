package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/service_interfaces"
)

type IINController struct {
	service service_interfaces.IINService
}

func NewIINController(service service_interfaces.IINService) *IINController {
	return &IINController{service: service}
}

func (c *IINController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/iin/check", protect(c.checkIIN, authMiddleware))
}

func (c *IINController) checkIIN(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		methodNotAllowed[models.CheckIINResponse](w, r, start)
		return
	}

	var req models.CheckIINRequest
	if !decodeBody[models.CheckIINResponse](w, r, start, &req) {
		return
	}
	if !validate[models.CheckIINResponse](w, r, start, req) {
		return
	}

	response, err := c.service.CheckIIN(r.Context(), req)
	respond(w, r, start, http.StatusOK, response, err)
}
