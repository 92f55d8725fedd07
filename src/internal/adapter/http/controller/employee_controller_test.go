package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/controller"
	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
)

type employeeServiceStub struct {
	createFn func(ctx context.Context, req models.CreateEmployeeRequest) (commons.Response[models.CreateEmployeeResponse], error)
	getFn    func(ctx context.Context, id string) (commons.Response[models.EmployeeResponse], error)
	searchFn func(ctx context.Context, query string) (commons.Response[[]models.EmployeeResponse], error)
}

func (s employeeServiceStub) CreateEmployee(ctx context.Context, req models.CreateEmployeeRequest) (commons.Response[models.CreateEmployeeResponse], error) {
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return commons.SuccessResponse("employee created successfully", models.CreateEmployeeResponse{}), nil
}

func (s employeeServiceStub) GetEmployee(ctx context.Context, id string) (commons.Response[models.EmployeeResponse], error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return commons.SuccessResponse("employee fetched successfully", models.EmployeeResponse{ID: id}), nil
}

func (s employeeServiceStub) ListEmployees(_ context.Context) (commons.Response[[]models.EmployeeResponse], error) {
	return commons.SuccessResponse("employees fetched successfully", []models.EmployeeResponse{}), nil
}

func (s employeeServiceStub) UpdateEmployee(_ context.Context, id string, _ models.UpdateEmployeeRequest) (commons.Response[models.EmployeeResponse], error) {
	return commons.SuccessResponse("employee updated successfully", models.EmployeeResponse{ID: id}), nil
}

func (s employeeServiceStub) DeleteEmployee(_ context.Context, id string) (commons.Response[models.EmployeeResponse], error) {
	return commons.SuccessResponse("employee deleted successfully", models.EmployeeResponse{ID: id}), nil
}

func (s employeeServiceStub) SearchEmployees(ctx context.Context, query string) (commons.Response[[]models.EmployeeResponse], error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, query)
	}
	return commons.SuccessResponse("employees fetched successfully", []models.EmployeeResponse{}), nil
}

func newEmployeeMux(svc employeeServiceStub) *http.ServeMux {
	mux := http.NewServeMux()
	controller.NewEmployeeController(svc).RegisterRoutes(mux, nil)
	return mux
}

const validEmployeeBody = `{
	"iin": "930420302182",
	"birthDate": "1993-04-20",
	"lastName": "Журсинбеков",
	"firstName": "Максат",
	"middleName": "Нурланович",
	"amount": "250000"
}`

func TestEmployeeControllerCreateReturnsCreated(t *testing.T) {
	var got models.CreateEmployeeRequest
	mux := newEmployeeMux(employeeServiceStub{
		createFn: func(_ context.Context, req models.CreateEmployeeRequest) (commons.Response[models.CreateEmployeeResponse], error) {
			got = req
			return commons.SuccessResponse("employee created successfully", models.CreateEmployeeResponse{}), nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(validEmployeeBody))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	if got.IIN != "930420302182" || got.Amount == nil || got.Amount.IntPart() != 250000 {
		t.Fatalf("unexpected decoded request %+v", got)
	}
}

func TestEmployeeControllerCreateValidationFailure(t *testing.T) {
	mux := newEmployeeMux(employeeServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"iin":"123"}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	var body commons.Response[models.CreateEmployeeResponse]
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Success || body.Message != "validation failed" {
		t.Fatalf("unexpected body %+v", body)
	}
	if !containsMessage(body.Errors, "iin: iin must contain 12 digits") {
		t.Fatalf("expected iin length message, got %v", body.Errors)
	}
}

func TestEmployeeControllerMapsServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "duplicate", err: domain.ErrDuplicateIIN, status: http.StatusConflict},
		{name: "internal", err: context.DeadlineExceeded, status: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mux := newEmployeeMux(employeeServiceStub{
				createFn: func(_ context.Context, _ models.CreateEmployeeRequest) (commons.Response[models.CreateEmployeeResponse], error) {
					return commons.ErrorResponse[models.CreateEmployeeResponse]("failed"), tc.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(validEmployeeBody))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rr.Code)
			}
		})
	}
}

func TestEmployeeControllerGetNotFound(t *testing.T) {
	mux := newEmployeeMux(employeeServiceStub{
		getFn: func(_ context.Context, id string) (commons.Response[models.EmployeeResponse], error) {
			if id != "42" {
				t.Fatalf("expected path id 42, got %q", id)
			}
			return commons.ErrorResponse[models.EmployeeResponse]("Employee not found"), domain.ErrRecordNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/employees/42", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

func TestEmployeeControllerSearchPassesQuery(t *testing.T) {
	var query string
	mux := newEmployeeMux(employeeServiceStub{
		searchFn: func(_ context.Context, q string) (commons.Response[[]models.EmployeeResponse], error) {
			query = q
			return commons.SuccessResponse("employees fetched successfully", []models.EmployeeResponse{}), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/employees/search?q=%D0%9A%D0%B5%D1%80%D1%80", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if query != "Керр" {
		t.Fatalf("expected decoded query, got %q", query)
	}
}

func TestEmployeeControllerRejectsUnsupportedMethod(t *testing.T) {
	mux := newEmployeeMux(employeeServiceStub{})

	req := httptest.NewRequest(http.MethodPut, "/employees", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}

func containsMessage(messages []string, want string) bool {
	for _, m := range messages {
		if m == want {
			return true
		}
	}
	return false
}
