package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/adapter/repository/memory"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/services"
)

type draftFixture struct {
	svc       *services.DraftService
	employees *memory.EmployeeRepository
	payments  *memory.PaymentRepository
}

func newDraftFixture(t *testing.T) draftFixture {
	t.Helper()

	seed, err := memory.DefaultEmployees()
	if err != nil {
		t.Fatalf("failed to load seed: %v", err)
	}

	employees := memory.NewEmployeeRepository(seed)
	payments := memory.NewPaymentRepository()
	references := memory.NewReferenceRepository([]string{testSenderAccount, "KZ86125KZT3006123456"}, testTaxOffice)
	paymentService := services.NewPaymentService(payments, references)

	return draftFixture{
		svc:       services.NewDraftService(memory.NewDraftRepository(), employees, references, paymentService, "3644"),
		employees: employees,
		payments:  payments,
	}
}

func TestDraftServiceOpenDraftDefaults(t *testing.T) {
	f := newDraftFixture(t)

	resp, err := f.svc.OpenDraft(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	draft := resp.Data
	if draft.ID == "" || draft.Status != "DRAFT" {
		t.Fatalf("unexpected draft %+v", draft)
	}
	if draft.DocumentNumber != "3644" || draft.SenderAccount != testSenderAccount {
		t.Fatalf("unexpected defaults %+v", draft)
	}
	if draft.KNPCode != "010" || draft.PaymentPurpose != "010. Обязательные пенсионные взносы" {
		t.Fatalf("unexpected purpose %q", draft.PaymentPurpose)
	}
	if draft.RecipientBIN != testTaxOffice.BIN || !draft.Amount.IsZero() || len(draft.Employees) != 0 {
		t.Fatalf("unexpected draft %+v", draft)
	}
}

func TestDraftServiceAmountFollowsEmployees(t *testing.T) {
	f := newDraftFixture(t)
	ctx := context.Background()

	opened, _ := f.svc.OpenDraft(ctx)
	id := opened.Data.ID

	added, err := f.svc.AddFromDirectory(ctx, id, models.AddFromDirectoryRequest{EmployeeIDs: []string{"1", "4"}})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if added.Data.Added != 2 || added.Data.Skipped != 0 {
		t.Fatalf("unexpected counts %+v", added.Data)
	}
	assertDraftAmount(t, added.Data.Draft, "2250000")

	again, err := f.svc.AddFromDirectory(ctx, id, models.AddFromDirectoryRequest{EmployeeIDs: []string{"1", "2"}})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if again.Data.Added != 1 || again.Data.Skipped != 1 {
		t.Fatalf("expected already listed employee to be skipped, got %+v", again.Data)
	}
	assertDraftAmount(t, again.Data.Draft, "2250000")

	updated, err := f.svc.UpdateDraftEmployee(ctx, id, "2", models.UpdateEmployeeRequest{Amount: amountPtr("1000.50")})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	assertDraftAmount(t, *updated.Data, "2251000.5")

	removed, err := f.svc.RemoveDraftEmployee(ctx, id, "4")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	assertDraftAmount(t, *removed.Data, "251000.5")

	if _, err := f.svc.RemoveDraftEmployee(ctx, id, "4"); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDraftServiceAddNewEmployee(t *testing.T) {
	f := newDraftFixture(t)
	ctx := context.Background()

	opened, _ := f.svc.OpenDraft(ctx)
	id := opened.Data.ID

	req := validEmployeeRequest()
	req.IIN = "050101389060"
	req.BirthDate = "2005-01-03"
	req.LastName = "Ахметов"
	req.Amount = amountPtr("120000")

	resp, err := f.svc.AddNewEmployee(ctx, id, req)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Data.AddedToDirectory {
		t.Fatal("expected new employee to be added to the directory")
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].Code != domain.CodeBirthDateMismatch {
		t.Fatalf("expected birth date warning, got %+v", resp.Warnings)
	}
	assertDraftAmount(t, resp.Data.Draft, "120000")

	if _, err := f.employees.GetByIIN(ctx, "050101389060"); err != nil {
		t.Fatalf("expected employee in directory, got %v", err)
	}

	_, err = f.svc.AddNewEmployee(ctx, id, req)
	if !errors.Is(err, domain.ErrDuplicateIIN) {
		t.Fatalf("expected ErrDuplicateIIN, got %v", err)
	}
}

// discardingDraftRepository drops the draft right before updating it, as a
// concurrent discard would.
type discardingDraftRepository struct {
	*memory.DraftRepository
}

func (r discardingDraftRepository) Update(ctx context.Context, id string, fn func(draft *domain.Payment) error) (domain.Payment, error) {
	_ = r.DraftRepository.Delete(ctx, id)
	return r.DraftRepository.Update(ctx, id, fn)
}

func TestDraftServiceAddNewEmployeeRollsBackDirectoryOnFailure(t *testing.T) {
	ctx := context.Background()
	seed, err := memory.DefaultEmployees()
	if err != nil {
		t.Fatalf("failed to load seed: %v", err)
	}

	employees := memory.NewEmployeeRepository(seed)
	references := memory.NewReferenceRepository([]string{testSenderAccount}, testTaxOffice)
	drafts := discardingDraftRepository{DraftRepository: memory.NewDraftRepository()}
	svc := services.NewDraftService(drafts, employees, references, services.NewPaymentService(memory.NewPaymentRepository(), references), "3644")

	opened, err := svc.OpenDraft(ctx)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	req := validEmployeeRequest()
	req.IIN = "050101389060"
	req.BirthDate = "2005-01-01"

	resp, err := svc.AddNewEmployee(ctx, opened.Data.ID, req)
	if !errors.Is(err, domain.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
	if resp.Success {
		t.Fatal("expected failed response")
	}

	if _, err := employees.GetByIIN(ctx, "050101389060"); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected directory entry to be rolled back, got %v", err)
	}
	all, _ := employees.GetAll(ctx)
	if len(all) != 4 {
		t.Fatalf("expected directory size to stay 4, got %d", len(all))
	}
}

func TestDraftServiceAddNewEmployeeKnownToDirectory(t *testing.T) {
	f := newDraftFixture(t)
	ctx := context.Background()

	opened, _ := f.svc.OpenDraft(ctx)

	resp, err := f.svc.AddNewEmployee(ctx, opened.Data.ID, validEmployeeRequest())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.AddedToDirectory {
		t.Fatal("expected existing directory employee to be reused")
	}
	if resp.Data.Employee.ID != "1" {
		t.Fatalf("expected directory id, got %q", resp.Data.Employee.ID)
	}

	all, _ := f.employees.GetAll(ctx)
	if len(all) != 4 {
		t.Fatalf("expected directory size to stay 4, got %d", len(all))
	}
}

func TestDraftServiceUpdateDetails(t *testing.T) {
	f := newDraftFixture(t)
	ctx := context.Background()

	opened, _ := f.svc.OpenDraft(ctx)
	id := opened.Data.ID

	paymentType := "Профессиональный"
	account := "KZ86125KZT3006123456"
	resp, err := f.svc.UpdateDraftDetails(ctx, id, models.UpdateDraftDetailsRequest{
		PaymentType:   &paymentType,
		SenderAccount: &account,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.PaymentType != "PROFESSIONAL" || resp.Data.KNPCode != "015" {
		t.Fatalf("unexpected payment type %+v", resp.Data)
	}
	if resp.Data.PaymentPurpose != "015. Обязательные профессиональные пенсионные взносы" {
		t.Fatalf("unexpected purpose %q", resp.Data.PaymentPurpose)
	}
	if resp.Data.SenderAccount != account {
		t.Fatalf("unexpected sender account %q", resp.Data.SenderAccount)
	}

	unknown := "KZ000"
	if _, err := f.svc.UpdateDraftDetails(ctx, id, models.UpdateDraftDetailsRequest{SenderAccount: &unknown}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDraftServiceSubmitDraft(t *testing.T) {
	f := newDraftFixture(t)
	ctx := context.Background()

	opened, _ := f.svc.OpenDraft(ctx)
	id := opened.Data.ID

	empty, err := f.svc.SubmitDraft(ctx, id)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for empty draft, got %v", err)
	}
	if empty.Data == nil || empty.Data.Validation["employees"] == "" {
		t.Fatalf("expected employees validation message, got %+v", empty.Data)
	}

	if _, err := f.svc.AddFromDirectory(ctx, id, models.AddFromDirectoryRequest{EmployeeIDs: []string{"1"}}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	resp, err := f.svc.SubmitDraft(ctx, id)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.Payment == nil || resp.Data.Payment.Status != "CREATED" {
		t.Fatalf("expected created payment, got %+v", resp.Data)
	}
	if !resp.Data.Payment.Amount.Equal(decimal.NewFromInt(250000)) {
		t.Fatalf("unexpected amount %s", resp.Data.Payment.Amount)
	}

	stored, _ := f.payments.GetAll(ctx)
	if len(stored) != 1 {
		t.Fatalf("expected one stored payment, got %d", len(stored))
	}

	if _, err := f.svc.GetDraft(ctx, id); !errors.Is(err, domain.ErrDraftNotFound) {
		t.Fatalf("expected submitted draft to be discarded, got %v", err)
	}
}

func TestDraftServiceDiscardDraft(t *testing.T) {
	f := newDraftFixture(t)
	ctx := context.Background()

	opened, _ := f.svc.OpenDraft(ctx)

	if _, err := f.svc.DiscardDraft(ctx, opened.Data.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	resp, err := f.svc.DiscardDraft(ctx, opened.Data.ID)
	if !errors.Is(err, domain.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
	if resp.Message != "Draft not found" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func assertDraftAmount(t *testing.T, draft models.PaymentResponse, want string) {
	t.Helper()

	if !draft.Amount.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("expected amount %s, got %s", want, draft.Amount)
	}

	total := decimal.Zero
	for _, e := range draft.Employees {
		total = total.Add(e.Amount)
	}
	if !draft.Amount.Equal(total) {
		t.Fatalf("amount %s does not equal employee total %s", draft.Amount, total)
	}
}
