package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ResidenceResident    = "KZ"
	ResidenceNonResident = "Пусто"
)

type Employee struct {
	ID         string
	IIN        string
	FirstName  string
	LastName   string
	MiddleName string
	BirthDate  time.Time
	IsResident bool
	Amount     decimal.Decimal
	Month      int
	Year       int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName is "Last First Middle".
func (e Employee) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.LastName, e.FirstName, e.MiddleName} {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

func (e Employee) Residence() string {
	if e.IsResident {
		return ResidenceResident
	}
	return ResidenceNonResident
}

// Matches reports whether the employee is found by a directory search
// query: a case-insensitive substring of the full name, or a substring of
// the IIN once whitespace is dropped from the query.
func (e Employee) Matches(query string) bool {
	if strings.Contains(strings.ToLower(e.FullName()), strings.ToLower(query)) {
		return true
	}
	return strings.Contains(e.IIN, strings.Join(strings.Fields(query), ""))
}

// EmployeePatch carries the fields of a partial employee update; nil fields
// are left untouched.
type EmployeePatch struct {
	FirstName  *string
	LastName   *string
	MiddleName *string
	IsResident *bool
	Amount     *decimal.Decimal
	Month      *int
	Year       *int
}

func (p EmployeePatch) Apply(e Employee) Employee {
	if p.FirstName != nil {
		e.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		e.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.MiddleName != nil {
		e.MiddleName = strings.TrimSpace(*p.MiddleName)
	}
	if p.IsResident != nil {
		e.IsResident = *p.IsResident
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Month != nil {
		e.Month = *p.Month
	}
	if p.Year != nil {
		e.Year = *p.Year
	}
	return e
}
