package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/controller"
	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/middleware"
	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/router"
	"github.com/api-sage/pension-payment-processor/src/internal/adapter/repository/memory"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/services"
)

const (
	channelID  = "PensionApp"
	channelKey = "PensionKey001"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	seed, err := memory.DefaultEmployees()
	if err != nil {
		t.Fatalf("failed to load seed: %v", err)
	}
	hash, err := middleware.HashChannelKey(channelKey)
	if err != nil {
		t.Fatalf("failed to hash key: %v", err)
	}

	employees := memory.NewEmployeeRepository(seed)
	references := memory.NewReferenceRepository([]string{"KZ50551Z127012909KZT"}, domain.TaxOffice{
		Name:    "Tax office",
		BIN:     "160440007161",
		Account: "KZ12009NPS0413609816",
	})
	paymentService := services.NewPaymentService(memory.NewPaymentRepository(), references)

	mux := router.New(
		controller.NewIINController(services.NewIINService()),
		controller.NewEmployeeController(services.NewEmployeeService(employees)),
		controller.NewPaymentController(paymentService),
		controller.NewDraftController(services.NewDraftService(memory.NewDraftRepository(), employees, references, paymentService, "3644")),
		controller.NewReferenceController(services.NewReferenceService(references, employees, "3644")),
		middleware.BasicAuth(channelID, hash),
	)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func call[T any](t *testing.T, server *httptest.Server, method string, path string, body string) (int, commons.Response[T]) {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.SetBasicAuth(channelID, channelKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var decoded commons.Response[T]
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode %s %s response: %v", method, path, err)
	}
	return resp.StatusCode, decoded
}

func TestRouterRequiresAuth(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.Client().Get(server.URL + "/employees")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestRouterServesSwaggerWithoutAuth(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.Client().Get(server.URL + "/swagger/openapi.json")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("expected valid openapi document: %v", err)
	}
	paths := doc["paths"].(map[string]any)
	if _, ok := paths["/drafts/{id}/submit"]; !ok {
		t.Fatal("expected draft submit path to be documented")
	}
}

func TestRouterDraftToPaymentFlow(t *testing.T) {
	server := newTestServer(t)

	status, opened := call[models.PaymentResponse](t, server, http.MethodPost, "/drafts", "")
	if status != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, status)
	}
	draftID := opened.Data.ID

	status, added := call[models.AddFromDirectoryResponse](t, server, http.MethodPost, "/drafts/"+draftID+"/employees/from-directory", `{"employeeIds":["1","4"]}`)
	if status != http.StatusOK || added.Data.Added != 2 {
		t.Fatalf("unexpected add result %d %+v", status, added)
	}
	if added.Data.Draft.Amount.String() != "2250000" {
		t.Fatalf("expected draft amount 2250000, got %s", added.Data.Draft.Amount)
	}

	status, _ = call[models.AddDraftEmployeeResponse](t, server, http.MethodPost, "/drafts/"+draftID+"/employees", `{
		"iin": "930420302182",
		"birthDate": "1993-04-20",
		"lastName": "Журсинбеков",
		"firstName": "Максат",
		"middleName": "Нурланович",
		"amount": "1"
	}`)
	if status != http.StatusConflict {
		t.Fatalf("expected duplicate IIN to return %d, got %d", http.StatusConflict, status)
	}

	status, submitted := call[models.SubmitDraftResponse](t, server, http.MethodPost, "/drafts/"+draftID+"/submit", "")
	if status != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %+v", http.StatusCreated, status, submitted)
	}
	paymentID := submitted.Data.Payment.ID

	status, payment := call[models.PaymentResponse](t, server, http.MethodGet, "/payments/"+paymentID, "")
	if status != http.StatusOK || payment.Data.Status != "CREATED" || len(payment.Data.Employees) != 2 {
		t.Fatalf("unexpected payment %d %+v", status, payment.Data)
	}

	status, _ = call[models.PaymentResponse](t, server, http.MethodGet, "/drafts/"+draftID, "")
	if status != http.StatusNotFound {
		t.Fatalf("expected submitted draft to be gone, got %d", status)
	}
}

func TestRouterIINCheckWarning(t *testing.T) {
	server := newTestServer(t)

	status, resp := call[models.CheckIINResponse](t, server, http.MethodPost, "/iin/check", `{"iin":"930420302182","birthDate":"1993-05-20"}`)
	if status != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, status)
	}
	if !resp.Data.Valid || len(resp.Warnings) != 1 {
		t.Fatalf("expected valid iin with a warning, got %+v", resp)
	}
}

func TestRouterFormDefaults(t *testing.T) {
	server := newTestServer(t)

	status, resp := call[models.FormDefaultsResponse](t, server, http.MethodGet, "/references/form-defaults", "")
	if status != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, status)
	}
	if resp.Data.DocumentNumber != "3644" || len(resp.Data.Directory) != 4 {
		t.Fatalf("unexpected defaults %+v", resp.Data)
	}
}
