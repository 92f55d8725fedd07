package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func testTaxOffice() TaxOffice {
	return TaxOffice{Name: "Tax office", BIN: "160440007161", Account: "KZ12009NPS0413609816"}
}

func TestNewDraftDefaults(t *testing.T) {
	draft := NewDraft("3644", "KZ50551Z127012909KZT", testTaxOffice())

	if draft.Status != PaymentStatusDraft {
		t.Fatalf("expected DRAFT status, got %s", draft.Status)
	}
	if draft.PaymentType != PaymentTypeMandatory {
		t.Fatalf("expected mandatory payment type, got %s", draft.PaymentType)
	}
	if draft.PaymentPurpose != "010. Обязательные пенсионные взносы" {
		t.Fatalf("unexpected purpose %q", draft.PaymentPurpose)
	}
	if !draft.Amount.IsZero() {
		t.Fatalf("expected zero amount, got %s", draft.Amount)
	}
	if draft.RecipientBIN != "160440007161" {
		t.Fatalf("expected tax office recipient, got %q", draft.RecipientBIN)
	}
}

func TestPaymentAmountTracksEmployees(t *testing.T) {
	draft := NewDraft("3644", "KZ50551Z127012909KZT", testTaxOffice())

	if err := draft.AddEmployee(Employee{ID: "a", IIN: "930420302182", Amount: decimal.NewFromInt(250000)}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := draft.AddEmployee(Employee{ID: "b", IIN: "680629300199", Amount: decimal.NewFromInt(2000000)}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	assertAmount(t, draft, "2250000")

	amount := decimal.RequireFromString("1000.50")
	if _, err := draft.UpdateEmployee("a", EmployeePatch{Amount: &amount}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	assertAmount(t, draft, "2001000.5")

	if _, err := draft.RemoveEmployee("b"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	assertAmount(t, draft, "1000.5")

	if _, err := draft.RemoveEmployee("a"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	assertAmount(t, draft, "0")
}

func TestPaymentRejectsDuplicateIIN(t *testing.T) {
	draft := NewDraft("3644", "KZ50551Z127012909KZT", testTaxOffice())
	_ = draft.AddEmployee(Employee{ID: "a", IIN: "930420302182"})

	err := draft.AddEmployee(Employee{ID: "b", IIN: "930420302182"})
	if !errors.Is(err, ErrDuplicateIIN) {
		t.Fatalf("expected ErrDuplicateIIN, got %v", err)
	}
	if len(draft.Employees) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(draft.Employees))
	}
}

func TestPaymentMissingEmployee(t *testing.T) {
	draft := NewDraft("3644", "KZ50551Z127012909KZT", testTaxOffice())

	if _, err := draft.RemoveEmployee("missing"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if _, err := draft.UpdateEmployee("missing", EmployeePatch{}); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestSetPaymentTypeUpdatesPurpose(t *testing.T) {
	draft := NewDraft("3644", "KZ50551Z127012909KZT", testTaxOffice())
	draft.SetPaymentType(PaymentTypeProfessional)

	if draft.KNP().Code != "015" {
		t.Fatalf("expected KNP 015, got %s", draft.KNP().Code)
	}
	if draft.PaymentPurpose != "015. Обязательные профессиональные пенсионные взносы" {
		t.Fatalf("unexpected purpose %q", draft.PaymentPurpose)
	}
}

func TestParsePaymentType(t *testing.T) {
	if pt, ok := ParsePaymentType("Добровольный"); !ok || pt != PaymentTypeVoluntary {
		t.Fatalf("expected label to parse, got %q %v", pt, ok)
	}
	if pt, ok := ParsePaymentType("mandatory"); !ok || pt != PaymentTypeMandatory {
		t.Fatalf("expected code to parse, got %q %v", pt, ok)
	}
	if _, ok := ParsePaymentType("penalty"); ok {
		t.Fatal("expected unknown type to fail")
	}
}

func TestEmployeeMatches(t *testing.T) {
	e := Employee{IIN: "930420302182", LastName: "Журсинбеков", FirstName: "Максат", MiddleName: "Нурланович"}

	if !e.Matches("максат") {
		t.Fatal("expected case-insensitive name match")
	}
	if !e.Matches("930 420") {
		t.Fatal("expected IIN match with whitespace stripped")
	}
	if e.Matches("Иванов") {
		t.Fatal("expected no match")
	}
	if e.FullName() != "Журсинбеков Максат Нурланович" {
		t.Fatalf("unexpected full name %q", e.FullName())
	}
}

func assertAmount(t *testing.T, p Payment, want string) {
	t.Helper()
	if !p.Amount.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("expected amount %s, got %s", want, p.Amount)
	}
	if !p.Amount.Equal(p.TotalAmount()) {
		t.Fatalf("amount %s does not equal employee total %s", p.Amount, p.TotalAmount())
	}
}
