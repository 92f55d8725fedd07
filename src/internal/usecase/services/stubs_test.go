package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
)

type employeeRepoStub struct {
	createFn   func(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	getByIDFn  func(ctx context.Context, id string) (domain.Employee, error)
	getByIINFn func(ctx context.Context, iin string) (domain.Employee, error)
	getAllFn   func(ctx context.Context) ([]domain.Employee, error)
	updateFn   func(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	deleteFn   func(ctx context.Context, id string) (domain.Employee, error)
	searchFn   func(ctx context.Context, query string) ([]domain.Employee, error)
}

func (s employeeRepoStub) Create(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	if s.createFn != nil {
		return s.createFn(ctx, employee)
	}
	return employee, nil
}

func (s employeeRepoStub) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.Employee{}, domain.ErrRecordNotFound
}

func (s employeeRepoStub) GetByIIN(ctx context.Context, iin string) (domain.Employee, error) {
	if s.getByIINFn != nil {
		return s.getByIINFn(ctx, iin)
	}
	return domain.Employee{}, domain.ErrRecordNotFound
}

func (s employeeRepoStub) GetAll(ctx context.Context) ([]domain.Employee, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, nil
}

func (s employeeRepoStub) Update(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, employee)
	}
	return employee, nil
}

func (s employeeRepoStub) Delete(ctx context.Context, id string) (domain.Employee, error) {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return domain.Employee{}, domain.ErrRecordNotFound
}

func (s employeeRepoStub) Search(ctx context.Context, query string) ([]domain.Employee, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, query)
	}
	return nil, nil
}

type paymentRepoStub struct {
	createFn  func(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	getByIDFn func(ctx context.Context, id string) (domain.Payment, error)
	getAllFn  func(ctx context.Context) ([]domain.Payment, error)
}

func (s paymentRepoStub) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	if s.createFn != nil {
		return s.createFn(ctx, payment)
	}
	payment.ID = "p-1"
	return payment, nil
}

func (s paymentRepoStub) GetByID(ctx context.Context, id string) (domain.Payment, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.Payment{}, domain.ErrRecordNotFound
}

func (s paymentRepoStub) GetAll(ctx context.Context) ([]domain.Payment, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, nil
}

type referenceRepoStub struct {
	getSenderAccountsFn func(ctx context.Context) ([]string, error)
	getTaxOfficeFn      func(ctx context.Context) (domain.TaxOffice, error)
}

func (s referenceRepoStub) GetSenderAccounts(ctx context.Context) ([]string, error) {
	if s.getSenderAccountsFn != nil {
		return s.getSenderAccountsFn(ctx)
	}
	return []string{testSenderAccount}, nil
}

func (s referenceRepoStub) GetTaxOffice(ctx context.Context) (domain.TaxOffice, error) {
	if s.getTaxOfficeFn != nil {
		return s.getTaxOfficeFn(ctx)
	}
	return testTaxOffice, nil
}

const testSenderAccount = "KZ50551Z127012909KZT"

var testTaxOffice = domain.TaxOffice{
	Name:    "НАО Государственная корпорация \"Правительство для граждан\"",
	BIN:     "160440007161",
	Account: "KZ12009NPS0413609816",
}

func amountPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func validEmployeeRequest() models.CreateEmployeeRequest {
	return models.CreateEmployeeRequest{
		IIN:        "930420302182",
		BirthDate:  "1993-04-20",
		LastName:   "Журсинбеков",
		FirstName:  "Максат",
		MiddleName: "Нурланович",
		Amount:     amountPtr("250000"),
		Month:      int(time.Now().Month()),
		Year:       time.Now().Year(),
	}
}

func validPaymentRequest() models.PaymentRequest {
	return models.PaymentRequest{
		DocumentNumber: "3644",
		PaymentType:    "MANDATORY",
		SenderAccount:  testSenderAccount,
		PaymentPurpose: "010. Обязательные пенсионные взносы",
		Employees: []models.PaymentEmployeeRequest{
			{CreateEmployeeRequest: validEmployeeRequest()},
		},
	}
}
