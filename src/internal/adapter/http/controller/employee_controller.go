package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/service_interfaces"
)

type EmployeeController struct {
	service service_interfaces.EmployeeService
}

func NewEmployeeController(service service_interfaces.EmployeeService) *EmployeeController {
	return &EmployeeController{service: service}
}

func (c *EmployeeController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/employees", protect(c.employees, authMiddleware))
	mux.Handle("/employees/search", protect(c.searchEmployees, authMiddleware))
	mux.Handle("/employees/{id}", protect(c.employee, authMiddleware))
}

func (c *EmployeeController) employees(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	switch r.Method {
	case http.MethodGet:
		response, err := c.service.ListEmployees(r.Context())
		respond(w, r, start, http.StatusOK, response, err)
	case http.MethodPost:
		var req models.CreateEmployeeRequest
		if !decodeBody[models.CreateEmployeeResponse](w, r, start, &req) {
			return
		}
		if !validate[models.CreateEmployeeResponse](w, r, start, req) {
			return
		}
		response, err := c.service.CreateEmployee(r.Context(), req)
		respond(w, r, start, http.StatusCreated, response, err)
	default:
		methodNotAllowed[[]models.EmployeeResponse](w, r, start)
	}
}

func (c *EmployeeController) searchEmployees(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		methodNotAllowed[[]models.EmployeeResponse](w, r, start)
		return
	}

	response, err := c.service.SearchEmployees(r.Context(), r.URL.Query().Get("q"))
	respond(w, r, start, http.StatusOK, response, err)
}

func (c *EmployeeController) employee(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	id := r.PathValue("id")
	switch r.Method {
	case http.MethodGet:
		response, err := c.service.GetEmployee(r.Context(), id)
		respond(w, r, start, http.StatusOK, response, err)
	case http.MethodPatch:
		var req models.UpdateEmployeeRequest
		if !decodeBody[models.EmployeeResponse](w, r, start, &req) {
			return
		}
		if !validate[models.EmployeeResponse](w, r, start, req) {
			return
		}
		response, err := c.service.UpdateEmployee(r.Context(), id, req)
		respond(w, r, start, http.StatusOK, response, err)
	case http.MethodDelete:
		response, err := c.service.DeleteEmployee(r.Context(), id)
		respond(w, r, start, http.StatusOK, response, err)
	default:
		methodNotAllowed[models.EmployeeResponse](w, r, start)
	}
}
