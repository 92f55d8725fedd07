package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/service_interfaces"
)

type DraftController struct {
	service service_interfaces.DraftService
}

func NewDraftController(service service_interfaces.DraftService) *DraftController {
	return &DraftController{service: service}
}

func (c *DraftController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/drafts", protect(c.openDraft, authMiddleware))
	mux.Handle("/drafts/{id}", protect(c.draft, authMiddleware))
	mux.Handle("/drafts/{id}/details", protect(c.updateDetails, authMiddleware))
	mux.Handle("/drafts/{id}/employees", protect(c.addNewEmployee, authMiddleware))
	mux.Handle("/drafts/{id}/employees/from-directory", protect(c.addFromDirectory, authMiddleware))
	mux.Handle("/drafts/{id}/employees/{employeeId}", protect(c.draftEmployee, authMiddleware))
	mux.Handle("/drafts/{id}/submit", protect(c.submitDraft, authMiddleware))
}

func (c *DraftController) openDraft(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		methodNotAllowed[models.PaymentResponse](w, r, start)
		return
	}

	response, err := c.service.OpenDraft(r.Context())
	respond(w, r, start, http.StatusCreated, response, err)
}

func (c *DraftController) draft(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	id := r.PathValue("id")
	switch r.Method {
	case http.MethodGet:
		response, err := c.service.GetDraft(r.Context(), id)
		respond(w, r, start, http.StatusOK, response, err)
	case http.MethodDelete:
		response, err := c.service.DiscardDraft(r.Context(), id)
		respond(w, r, start, http.StatusOK, response, err)
	default:
		methodNotAllowed[models.PaymentResponse](w, r, start)
	}
}

func (c *DraftController) updateDetails(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPatch {
		methodNotAllowed[models.PaymentResponse](w, r, start)
		return
	}

	var req models.UpdateDraftDetailsRequest
	if !decodeBody[models.PaymentResponse](w, r, start, &req) {
		return
	}
	if !validate[models.PaymentResponse](w, r, start, req) {
		return
	}

	response, err := c.service.UpdateDraftDetails(r.Context(), r.PathValue("id"), req)
	respond(w, r, start, http.StatusOK, response, err)
}

func (c *DraftController) addNewEmployee(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		methodNotAllowed[models.AddDraftEmployeeResponse](w, r, start)
		return
	}

	var req models.CreateEmployeeRequest
	if !decodeBody[models.AddDraftEmployeeResponse](w, r, start, &req) {
		return
	}
	if !validate[models.AddDraftEmployeeResponse](w, r, start, req) {
		return
	}

	response, err := c.service.AddNewEmployee(r.Context(), r.PathValue("id"), req)
	respond(w, r, start, http.StatusCreated, response, err)
}

func (c *DraftController) addFromDirectory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		methodNotAllowed[models.AddFromDirectoryResponse](w, r, start)
		return
	}

	var req models.AddFromDirectoryRequest
	if !decodeBody[models.AddFromDirectoryResponse](w, r, start, &req) {
		return
	}
	if !validate[models.AddFromDirectoryResponse](w, r, start, req) {
		return
	}

	response, err := c.service.AddFromDirectory(r.Context(), r.PathValue("id"), req)
	respond(w, r, start, http.StatusOK, response, err)
}

func (c *DraftController) draftEmployee(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	id := r.PathValue("id")
	employeeID := r.PathValue("employeeId")
	switch r.Method {
	case http.MethodPatch:
		var req models.UpdateEmployeeRequest
		if !decodeBody[models.PaymentResponse](w, r, start, &req) {
			return
		}
		if !validate[models.PaymentResponse](w, r, start, req) {
			return
		}
		response, err := c.service.UpdateDraftEmployee(r.Context(), id, employeeID, req)
		respond(w, r, start, http.StatusOK, response, err)
	case http.MethodDelete:
		response, err := c.service.RemoveDraftEmployee(r.Context(), id, employeeID)
		respond(w, r, start, http.StatusOK, response, err)
	default:
		methodNotAllowed[models.PaymentResponse](w, r, start)
	}
}

func (c *DraftController) submitDraft(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		methodNotAllowed[models.SubmitDraftResponse](w, r, start)
		return
	}

	response, err := c.service.SubmitDraft(r.Context(), r.PathValue("id"))
	respond(w, r, start, http.StatusCreated, response, err)
}
