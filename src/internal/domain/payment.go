package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusDraft   PaymentStatus = "DRAFT"
	PaymentStatusCreated PaymentStatus = "CREATED"
)

type Payment struct {
	ID               string
	DocumentNumber   string
	PaymentType      PaymentType
	SenderAccount    string
	IsActualPayer    bool
	ActualPayerBIN   string
	ActualPayerName  string
	RecipientAccount string
	RecipientBIN     string
	RecipientName    string
	PaymentPurpose   string
	Amount           decimal.Decimal
	Employees        []Employee
	Status           PaymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewDraft returns an empty draft addressed to the tax office.
func NewDraft(documentNumber string, senderAccount string, taxOffice TaxOffice) Payment {
	draft := Payment{
		DocumentNumber:   documentNumber,
		SenderAccount:    senderAccount,
		RecipientAccount: taxOffice.Account,
		RecipientBIN:     taxOffice.BIN,
		RecipientName:    taxOffice.Name,
		Amount:           decimal.Zero,
		Employees:        []Employee{},
		Status:           PaymentStatusDraft,
	}
	draft.SetPaymentType(PaymentTypeMandatory)
	return draft
}

func (p Payment) KNP() KNP {
	return p.PaymentType.KNP()
}

// SetPaymentType also resets the purpose to the KNP text of the new type.
func (p *Payment) SetPaymentType(t PaymentType) {
	p.PaymentType = t
	p.PaymentPurpose = t.Purpose()
}

// TotalAmount sums the contribution amounts of all employees.
func (p Payment) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, e := range p.Employees {
		total = total.Add(e.Amount)
	}
	return total
}

func (p *Payment) RecalculateAmount() {
	p.Amount = p.TotalAmount()
}

func (p Payment) HasEmployee(id string) bool {
	return p.employeeIndex(id) >= 0
}

func (p Payment) HasIIN(iin string) bool {
	for _, e := range p.Employees {
		if e.IIN == iin {
			return true
		}
	}
	return false
}

// AddEmployee appends the employee and keeps Amount equal to the sum of
// employee amounts. An employee whose IIN is already listed is rejected.
func (p *Payment) AddEmployee(employee Employee) error {
	if p.HasIIN(employee.IIN) {
		return ErrDuplicateIIN
	}
	p.Employees = append(p.Employees, employee)
	p.RecalculateAmount()
	return nil
}

func (p *Payment) UpdateEmployee(id string, patch EmployeePatch) (Employee, error) {
	idx := p.employeeIndex(id)
	if idx < 0 {
		return Employee{}, ErrRecordNotFound
	}
	p.Employees[idx] = patch.Apply(p.Employees[idx])
	p.RecalculateAmount()
	return p.Employees[idx], nil
}

func (p *Payment) RemoveEmployee(id string) (Employee, error) {
	idx := p.employeeIndex(id)
	if idx < 0 {
		return Employee{}, ErrRecordNotFound
	}
	removed := p.Employees[idx]
	p.Employees = append(p.Employees[:idx:idx], p.Employees[idx+1:]...)
	p.RecalculateAmount()
	return removed, nil
}

// Clone returns a copy that does not share the employee slice.
func (p Payment) Clone() Payment {
	employees := make([]Employee, len(p.Employees))
	copy(employees, p.Employees)
	p.Employees = employees
	return p
}

func (p Payment) employeeIndex(id string) int {
	for i, e := range p.Employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}
