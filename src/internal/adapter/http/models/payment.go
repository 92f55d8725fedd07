package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/iin"
)

const documentNumberLength = 4

var minPaymentAmount = decimal.RequireFromString("0.01")

type PaymentEmployeeRequest struct {
	ID string `json:"id,omitempty"`
	CreateEmployeeRequest
}

type PaymentRequest struct {
	DocumentNumber  string                   `json:"documentNumber"`
	PaymentType     string                   `json:"paymentType"`
	SenderAccount   string                   `json:"senderAccount"`
	IsActualPayer   bool                     `json:"isActualPayer"`
	ActualPayerBIN  string                   `json:"actualPayerBin,omitempty"`
	ActualPayerName string                   `json:"actualPayerName,omitempty"`
	PaymentPurpose  string                   `json:"paymentPurpose"`
	Employees       []PaymentEmployeeRequest `json:"employees"`
}

func (r PaymentRequest) Validate() error {
	return r.FieldErrors(time.Now()).Err()
}

// FieldErrors checks the request on its own; whether the sender account is
// one of ours is checked by the payment service.
func (r PaymentRequest) FieldErrors(now time.Time) FieldErrors {
	errs := FieldErrors{}

	ValidateDocumentNumber(errs, r.DocumentNumber, true)
	ValidatePaymentType(errs, r.PaymentType, true)

	if strings.TrimSpace(r.SenderAccount) == "" {
		errs.Add("senderAccount", "senderAccount is required")
	}

	if r.IsActualPayer {
		ValidateActualPayer(errs, r.ActualPayerBIN, r.ActualPayerName)
	}

	if strings.TrimSpace(r.PaymentPurpose) == "" {
		errs.Add("paymentPurpose", "paymentPurpose is required")
	}

	if len(r.Employees) == 0 {
		errs.Add("employees", "at least one employee is required")
	}

	seen := make(map[string]int, len(r.Employees))
	total := decimal.Zero
	for i, employee := range r.Employees {
		prefix := "employees[" + strconv.Itoa(i) + "]."
		errs.Merge(prefix, employee.FieldErrors(now))

		cleaned := iin.Clean(employee.IIN)
		if first, dup := seen[cleaned]; dup && cleaned != "" {
			errs.Add(prefix+"iin", "iin duplicates employees["+strconv.Itoa(first)+"]")
		} else {
			seen[cleaned] = i
		}

		if employee.Amount != nil {
			total = total.Add(*employee.Amount)
		}
	}

	if len(r.Employees) > 0 && total.LessThan(minPaymentAmount) {
		errs.Add("amount", "amount must be at least 0.01")
	} else if total.GreaterThan(maxAmount) {
		errs.Add("amount", "amount is too large")
	}

	return errs
}

// ToDomain assumes the request passed validation. The amount is always the
// sum of the employee amounts.
func (r PaymentRequest) ToDomain(now time.Time) domain.Payment {
	paymentType, _ := domain.ParsePaymentType(r.PaymentType)

	payment := domain.Payment{
		DocumentNumber: strings.TrimSpace(r.DocumentNumber),
		PaymentType:    paymentType,
		SenderAccount:  strings.TrimSpace(r.SenderAccount),
		IsActualPayer:  r.IsActualPayer,
		PaymentPurpose: strings.TrimSpace(r.PaymentPurpose),
		Employees:      make([]domain.Employee, 0, len(r.Employees)),
	}
	if r.IsActualPayer {
		payment.ActualPayerBIN = iin.Clean(r.ActualPayerBIN)
		payment.ActualPayerName = strings.TrimSpace(r.ActualPayerName)
	}

	for _, e := range r.Employees {
		employee := e.ToDomain(now)
		employee.ID = strings.TrimSpace(e.ID)
		payment.Employees = append(payment.Employees, employee)
	}
	payment.RecalculateAmount()

	return payment
}

type PaymentResponse struct {
	ID               string             `json:"id"`
	DocumentNumber   string             `json:"documentNumber"`
	PaymentType      string             `json:"paymentType"`
	PaymentTypeLabel string             `json:"paymentTypeLabel"`
	KNPCode          string             `json:"knpCode"`
	KNPName          string             `json:"knpName"`
	SenderAccount    string             `json:"senderAccount"`
	IsActualPayer    bool               `json:"isActualPayer"`
	ActualPayerBIN   string             `json:"actualPayerBin,omitempty"`
	ActualPayerName  string             `json:"actualPayerName,omitempty"`
	RecipientAccount string             `json:"recipientAccount"`
	RecipientBIN     string             `json:"recipientBin"`
	RecipientName    string             `json:"recipientName"`
	PaymentPurpose   string             `json:"paymentPurpose"`
	Amount           decimal.Decimal    `json:"amount"`
	FormattedAmount  string             `json:"formattedAmount"`
	Employees        []EmployeeResponse `json:"employees"`
	Status           string             `json:"status"`
	CreatedAt        string             `json:"createdAt,omitempty"`
	UpdatedAt        string             `json:"updatedAt,omitempty"`
}

type ValidatePaymentResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

func ValidateDocumentNumber(errs FieldErrors, value string, required bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		if required {
			errs.Add("documentNumber", "documentNumber is required")
		}
		return
	}
	if len(value) != documentNumberLength || !digitsOnly(value) {
		errs.Add("documentNumber", "documentNumber must contain 4 digits")
	}
}

func ValidatePaymentType(errs FieldErrors, value string, required bool) {
	if strings.TrimSpace(value) == "" {
		if required {
			errs.Add("paymentType", "paymentType is required")
		}
		return
	}
	if _, ok := domain.ParsePaymentType(value); !ok {
		errs.Add("paymentType", "paymentType must be MANDATORY, VOLUNTARY or PROFESSIONAL")
	}
}

func ValidateActualPayer(errs FieldErrors, bin string, name string) {
	cleaned := iin.Clean(bin)
	if strings.TrimSpace(bin) == "" {
		errs.Add("actualPayerBin", "actualPayerBin is required")
	} else if len(cleaned) != iin.Length {
		errs.Add("actualPayerBin", "actualPayerBin must contain 12 digits")
	}
	if strings.TrimSpace(name) == "" {
		errs.Add("actualPayerName", "actualPayerName is required")
	}
}
