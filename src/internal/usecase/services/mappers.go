package services

import (
	"fmt"
	"time"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/models"
	"github.com/api-sage/pension-payment-processor/src/internal/commons"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/iin"
)

const dateLayout = "2006-01-02"

func mapEmployeeToResponse(e domain.Employee) models.EmployeeResponse {
	response := models.EmployeeResponse{
		ID:              e.ID,
		IIN:             e.IIN,
		FormattedIIN:    iin.Format(e.IIN),
		FullName:        e.FullName(),
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		MiddleName:      e.MiddleName,
		IsResident:      e.IsResident,
		Residence:       e.Residence(),
		Amount:          e.Amount,
		FormattedAmount: commons.FormatAmount(e.Amount),
		Month:           e.Month,
		MonthLabel:      monthLabel(e.Month),
		Year:            e.Year,
	}
	if !e.BirthDate.IsZero() {
		response.BirthDate = e.BirthDate.Format(dateLayout)
	}
	if !e.CreatedAt.IsZero() {
		response.CreatedAt = e.CreatedAt.Format(time.RFC3339)
	}
	if !e.UpdatedAt.IsZero() {
		response.UpdatedAt = e.UpdatedAt.Format(time.RFC3339)
	}
	return response
}

func mapEmployeesToResponse(employees []domain.Employee) []models.EmployeeResponse {
	out := make([]models.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, mapEmployeeToResponse(e))
	}
	return out
}

func mapPaymentToResponse(p domain.Payment) models.PaymentResponse {
	knp := p.KNP()
	response := models.PaymentResponse{
		ID:               p.ID,
		DocumentNumber:   p.DocumentNumber,
		PaymentType:      string(p.PaymentType),
		PaymentTypeLabel: p.PaymentType.Label(),
		KNPCode:          knp.Code,
		KNPName:          knp.Name,
		SenderAccount:    p.SenderAccount,
		IsActualPayer:    p.IsActualPayer,
		ActualPayerBIN:   p.ActualPayerBIN,
		ActualPayerName:  p.ActualPayerName,
		RecipientAccount: p.RecipientAccount,
		RecipientBIN:     p.RecipientBIN,
		RecipientName:    p.RecipientName,
		PaymentPurpose:   p.PaymentPurpose,
		Amount:           p.Amount,
		FormattedAmount:  commons.FormatAmount(p.Amount),
		Employees:        mapEmployeesToResponse(p.Employees),
		Status:           string(p.Status),
	}
	if !p.CreatedAt.IsZero() {
		response.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	if !p.UpdatedAt.IsZero() {
		response.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	return response
}

func mapTaxOfficeToResponse(t domain.TaxOffice) models.TaxOfficeResponse {
	return models.TaxOfficeResponse{Name: t.Name, BIN: t.BIN, Account: t.Account}
}

func mapPaymentTypesToResponse() []models.PaymentTypeResponse {
	out := make([]models.PaymentTypeResponse, 0, len(domain.PaymentTypes))
	for _, t := range domain.PaymentTypes {
		knp := t.KNP()
		out = append(out, models.PaymentTypeResponse{
			Code:    string(t),
			Label:   t.Label(),
			KNPCode: knp.Code,
			KNPName: knp.Name,
			Purpose: t.Purpose(),
		})
	}
	return out
}

func mapPeriodsToResponse(now time.Time) models.PeriodsResponse {
	months := make([]models.MonthResponse, 0, len(domain.ContributionMonths))
	for _, m := range domain.ContributionMonths {
		months = append(months, models.MonthResponse{Value: m.Value, Label: m.Label})
	}
	return models.PeriodsResponse{Months: months, Years: domain.ContributionYears(now)}
}

func monthLabel(month int) string {
	if month < 1 || month > len(domain.ContributionMonths) {
		return ""
	}
	return domain.ContributionMonths[month-1].Label
}

// birthDateWarnings returns the mismatch warning for an employee whose
// entered birth date disagrees with the IIN.
func birthDateWarnings(e domain.Employee) []domain.Message {
	if e.BirthDate.IsZero() || !iin.BirthDateMismatch(e.IIN, e.BirthDate) {
		return nil
	}
	return []domain.Message{domain.BirthDateMismatchWarning()}
}

func validationError(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrValidation, err)
}

// mapDraftToPaymentRequest lets a draft go through the same checks as a
// payment submitted in one request.
func mapDraftToPaymentRequest(p domain.Payment) models.PaymentRequest {
	req := models.PaymentRequest{
		DocumentNumber:  p.DocumentNumber,
		PaymentType:     string(p.PaymentType),
		SenderAccount:   p.SenderAccount,
		IsActualPayer:   p.IsActualPayer,
		ActualPayerBIN:  p.ActualPayerBIN,
		ActualPayerName: p.ActualPayerName,
		PaymentPurpose:  p.PaymentPurpose,
		Employees:       make([]models.PaymentEmployeeRequest, 0, len(p.Employees)),
	}

	for _, e := range p.Employees {
		amount := e.Amount
		employee := models.PaymentEmployeeRequest{
			ID: e.ID,
			CreateEmployeeRequest: models.CreateEmployeeRequest{
				IIN:        e.IIN,
				IsResident: e.IsResident,
				LastName:   e.LastName,
				FirstName:  e.FirstName,
				MiddleName: e.MiddleName,
				Amount:     &amount,
				Month:      e.Month,
				Year:       e.Year,
			},
		}
		if !e.BirthDate.IsZero() {
			employee.BirthDate = e.BirthDate.Format(dateLayout)
		}
		req.Employees = append(req.Employees, employee)
	}

	return req
}
