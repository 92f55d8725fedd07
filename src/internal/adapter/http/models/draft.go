package models

import (
	"errors"
	"strings"

	"github.com/api-sage/pension-payment-processor/src/internal/iin"
)

type UpdateDraftDetailsRequest struct {
	DocumentNumber  *string `json:"documentNumber,omitempty"`
	PaymentType     *string `json:"paymentType,omitempty"`
	SenderAccount   *string `json:"senderAccount,omitempty"`
	IsActualPayer   *bool   `json:"isActualPayer,omitempty"`
	ActualPayerBIN  *string `json:"actualPayerBin,omitempty"`
	ActualPayerName *string `json:"actualPayerName,omitempty"`
	PaymentPurpose  *string `json:"paymentPurpose,omitempty"`
}

// Validate checks only the fields being changed; completeness is checked
// when the draft is submitted.
func (r UpdateDraftDetailsRequest) Validate() error {
	errs := FieldErrors{}

	if r.DocumentNumber != nil {
		ValidateDocumentNumber(errs, *r.DocumentNumber, true)
	}
	if r.PaymentType != nil {
		ValidatePaymentType(errs, *r.PaymentType, true)
	}
	if r.SenderAccount != nil && strings.TrimSpace(*r.SenderAccount) == "" {
		errs.Add("senderAccount", "senderAccount is required")
	}
	if r.ActualPayerBIN != nil {
		// "160 440 007 161" is the displayed form and is accepted.
		compact := strings.Join(strings.Fields(*r.ActualPayerBIN), "")
		if compact != "" && (len(compact) > iin.Length || !digitsOnly(compact)) {
			errs.Add("actualPayerBin", "actualPayerBin must contain up to 12 digits")
		}
	}
	if r.PaymentPurpose != nil && strings.TrimSpace(*r.PaymentPurpose) == "" {
		errs.Add("paymentPurpose", "paymentPurpose is required")
	}

	return errs.Err()
}

type AddFromDirectoryRequest struct {
	EmployeeIDs []string `json:"employeeIds"`
}

func (r AddFromDirectoryRequest) Validate() error {
	if len(r.EmployeeIDs) == 0 {
		return errors.New("employeeIds is required")
	}
	for _, id := range r.EmployeeIDs {
		if strings.TrimSpace(id) == "" {
			return errors.New("employeeIds cannot contain empty values")
		}
	}
	return nil
}

type AddDraftEmployeeResponse struct {
	Draft            PaymentResponse  `json:"draft"`
	Employee         EmployeeResponse `json:"employee"`
	AddedToDirectory bool             `json:"addedToDirectory"`
}

type AddFromDirectoryResponse struct {
	Draft   PaymentResponse `json:"draft"`
	Added   int             `json:"added"`
	Skipped int             `json:"skipped"`
}

type SubmitDraftResponse struct {
	Payment    *PaymentResponse  `json:"payment,omitempty"`
	Validation map[string]string `json:"validation,omitempty"`
}
