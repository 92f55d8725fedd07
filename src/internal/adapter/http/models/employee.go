package models

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/iin"
)

const dateLayout = "2006-01-02"

const minNameLength = 2

const amountScale = 2

var maxAmount = decimal.RequireFromString("9999999999999999.99")

type CreateEmployeeRequest struct {
	IIN        string           `json:"iin"`
	IsResident bool             `json:"isResident"`
	BirthDate  string           `json:"birthDate"`
	LastName   string           `json:"lastName"`
	FirstName  string           `json:"firstName"`
	MiddleName string           `json:"middleName"`
	Amount     *decimal.Decimal `json:"amount"`
	Month      int              `json:"month,omitempty"`
	Year       int              `json:"year,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	return r.FieldErrors(time.Now()).Err()
}

func (r CreateEmployeeRequest) FieldErrors(now time.Time) FieldErrors {
	errs := FieldErrors{}

	cleaned := iin.Clean(r.IIN)
	switch {
	case strings.TrimSpace(r.IIN) == "":
		errs.Add("iin", "iin is required")
	case len(cleaned) != iin.Length:
		errs.Add("iin", "iin must contain 12 digits")
	case !iin.Validate(cleaned):
		errs.Add("iin", "iin is invalid")
	}

	birthDate := strings.TrimSpace(r.BirthDate)
	if birthDate == "" {
		errs.Add("birthDate", "birthDate is required")
	} else if parsed, err := time.Parse(dateLayout, birthDate); err != nil {
		errs.Add("birthDate", "birthDate must be in YYYY-MM-DD format")
	} else if parsed.After(now) {
		errs.Add("birthDate", "birthDate cannot be in the future")
	}

	validateName(errs, "lastName", r.LastName)
	validateName(errs, "firstName", r.FirstName)
	validateName(errs, "middleName", r.MiddleName)

	if r.Amount == nil {
		errs.Add("amount", "amount is required")
	} else {
		validateAmount(errs, *r.Amount)
	}

	if r.Month != 0 {
		validateMonth(errs, r.Month)
	}
	if r.Year != 0 {
		validateYear(errs, r.Year, now)
	}

	return errs
}

// ToDomain assumes the request passed validation. Month and year default
// to the current period.
func (r CreateEmployeeRequest) ToDomain(now time.Time) domain.Employee {
	birthDate, _ := time.Parse(dateLayout, strings.TrimSpace(r.BirthDate))

	amount := decimal.Zero
	if r.Amount != nil {
		amount = *r.Amount
	}

	month := r.Month
	if month == 0 {
		month = int(now.Month())
	}
	year := r.Year
	if year == 0 {
		year = now.Year()
	}

	return domain.Employee{
		IIN:        iin.Clean(r.IIN),
		FirstName:  strings.TrimSpace(r.FirstName),
		LastName:   strings.TrimSpace(r.LastName),
		MiddleName: strings.TrimSpace(r.MiddleName),
		BirthDate:  birthDate,
		IsResident: r.IsResident,
		Amount:     amount,
		Month:      month,
		Year:       year,
	}
}

type UpdateEmployeeRequest struct {
	FirstName  *string          `json:"firstName,omitempty"`
	LastName   *string          `json:"lastName,omitempty"`
	MiddleName *string          `json:"middleName,omitempty"`
	IsResident *bool            `json:"isResident,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Month      *int             `json:"month,omitempty"`
	Year       *int             `json:"year,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	return r.FieldErrors(time.Now()).Err()
}

func (r UpdateEmployeeRequest) FieldErrors(now time.Time) FieldErrors {
	errs := FieldErrors{}

	if r.FirstName != nil {
		validateName(errs, "firstName", *r.FirstName)
	}
	if r.LastName != nil {
		validateName(errs, "lastName", *r.LastName)
	}
	if r.MiddleName != nil {
		validateName(errs, "middleName", *r.MiddleName)
	}
	if r.Amount != nil {
		validateAmount(errs, *r.Amount)
	}
	if r.Month != nil {
		validateMonth(errs, *r.Month)
	}
	if r.Year != nil {
		validateYear(errs, *r.Year, now)
	}

	return errs
}

func (r UpdateEmployeeRequest) ToPatch() domain.EmployeePatch {
	return domain.EmployeePatch{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		MiddleName: r.MiddleName,
		IsResident: r.IsResident,
		Amount:     r.Amount,
		Month:      r.Month,
		Year:       r.Year,
	}
}

type EmployeeResponse struct {
	ID              string          `json:"id"`
	IIN             string          `json:"iin"`
	FormattedIIN    string          `json:"formattedIin"`
	FullName        string          `json:"fullName"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	MiddleName      string          `json:"middleName"`
	BirthDate       string          `json:"birthDate"`
	IsResident      bool            `json:"isResident"`
	Residence       string          `json:"residence"`
	Amount          decimal.Decimal `json:"amount"`
	FormattedAmount string          `json:"formattedAmount"`
	Month           int             `json:"month"`
	MonthLabel      string          `json:"monthLabel"`
	Year            int             `json:"year"`
	CreatedAt       string          `json:"createdAt,omitempty"`
	UpdatedAt       string          `json:"updatedAt,omitempty"`
}

type CreateEmployeeResponse struct {
	Employee     EmployeeResponse `json:"employee"`
	IINBirthDate string           `json:"iinBirthDate,omitempty"`
}

func validateName(errs FieldErrors, field string, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs.Add(field, field+" is required")
		return
	}
	if utf8.RuneCountInString(trimmed) < minNameLength {
		errs.Add(field, field+" must contain at least 2 characters")
	}
}

// validateAmount keeps amounts storable as NUMERIC(18,2) without rounding,
// so a stored total always equals the sum of its stored lines.
func validateAmount(errs FieldErrors, amount decimal.Decimal) {
	switch {
	case amount.IsNegative():
		errs.Add("amount", "amount cannot be negative")
	case !amount.Equal(amount.Round(amountScale)):
		errs.Add("amount", "amount must have at most 2 decimal places")
	case amount.GreaterThan(maxAmount):
		errs.Add("amount", "amount is too large")
	}
}

func validateMonth(errs FieldErrors, month int) {
	if month < 1 || month > 12 {
		errs.Add("month", "month must be between 1 and 12")
	}
}

func validateYear(errs FieldErrors, year int, now time.Time) {
	if !domain.IsContributionYear(year, now) {
		years := domain.ContributionYears(now)
		errs.Add("year", "year must be between "+strconv.Itoa(years[0])+" and "+strconv.Itoa(years[len(years)-1]))
	}
}
