package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/services"
)

func TestIINServiceCheckValid(t *testing.T) {
	svc := services.NewIINService()

	resp, err := svc.CheckIIN(context.Background(), models.CheckIINRequest{IIN: "930 420 302 182", BirthDate: "1993-04-20"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data == nil || !resp.Data.Valid || !resp.Data.Complete {
		t.Fatalf("expected complete valid iin, got %+v", resp.Data)
	}
	if resp.Data.BirthDate != "1993-04-20" || resp.Data.Century != 1900 {
		t.Fatalf("unexpected derived date %q century %d", resp.Data.BirthDate, resp.Data.Century)
	}
	if resp.Data.FormattedIIN != "930 420 302 182" {
		t.Fatalf("unexpected formatted iin %q", resp.Data.FormattedIIN)
	}
	if len(resp.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", resp.Warnings)
	}
}

func TestIINServiceCheckWarnsOnBirthDateMismatch(t *testing.T) {
	svc := services.NewIINService()

	resp, err := svc.CheckIIN(context.Background(), models.CheckIINRequest{IIN: "930420302182", BirthDate: "1993-04-22"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success {
		t.Fatal("expected mismatch to be non-blocking")
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].Code != domain.CodeBirthDateMismatch {
		t.Fatalf("expected birth date warning, got %+v", resp.Warnings)
	}
}

func TestIINServiceCheckPartialInput(t *testing.T) {
	svc := services.NewIINService()

	resp, err := svc.CheckIIN(context.Background(), models.CheckIINRequest{IIN: "0501013"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.Complete || resp.Data.Valid {
		t.Fatalf("expected incomplete invalid iin, got %+v", resp.Data)
	}
	if resp.Data.BirthDate != "2005-01-01" {
		t.Fatalf("expected birth date from partial input, got %q", resp.Data.BirthDate)
	}
}

func TestIINServiceCheckNoDateNoWarning(t *testing.T) {
	svc := services.NewIINService()

	resp, err := svc.CheckIIN(context.Background(), models.CheckIINRequest{IIN: "710727050464", BirthDate: "1971-07-27"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Data.Valid {
		t.Fatal("expected iin to be valid")
	}
	if resp.Data.BirthDate != "" || len(resp.Warnings) != 0 {
		t.Fatalf("expected no date and no warnings, got %q %+v", resp.Data.BirthDate, resp.Warnings)
	}
}

func TestIINServiceCheckValidationFailure(t *testing.T) {
	svc := services.NewIINService()

	resp, err := svc.CheckIIN(context.Background(), models.CheckIINRequest{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if resp.Success {
		t.Fatal("expected failed response")
	}
}
