package domain

import "strings"

type PaymentType string

const (
	PaymentTypeMandatory    PaymentType = "MANDATORY"
	PaymentTypeVoluntary    PaymentType = "VOLUNTARY"
	PaymentTypeProfessional PaymentType = "PROFESSIONAL"
)

// KNP is a payment purpose classification code of the budget payment domain.
type KNP struct {
	Code string
	Name string
}

var PaymentTypes = []PaymentType{
	PaymentTypeMandatory,
	PaymentTypeVoluntary,
	PaymentTypeProfessional,
}

var paymentTypeLabels = map[PaymentType]string{
	PaymentTypeMandatory:    "Обязательный",
	PaymentTypeVoluntary:    "Добровольный",
	PaymentTypeProfessional: "Профессиональный",
}

var knpCodes = map[PaymentType]KNP{
	PaymentTypeMandatory:    {Code: "010", Name: "Обязательные пенсионные взносы"},
	PaymentTypeVoluntary:    {Code: "013", Name: "Добровольные пенсионные взносы"},
	PaymentTypeProfessional: {Code: "015", Name: "Обязательные профессиональные пенсионные взносы"},
}

// ParsePaymentType accepts either the code or the Russian label.
func ParsePaymentType(value string) (PaymentType, bool) {
	value = strings.TrimSpace(value)
	for _, t := range PaymentTypes {
		if strings.EqualFold(string(t), value) || strings.EqualFold(paymentTypeLabels[t], value) {
			return t, true
		}
	}
	return "", false
}

func (t PaymentType) Label() string {
	return paymentTypeLabels[t]
}

// KNP returns the zero KNP for unknown types.
func (t PaymentType) KNP() KNP {
	return knpCodes[t]
}

// Purpose is the default payment purpose text, e.g. "010. Обязательные пенсионные взносы".
func (t PaymentType) Purpose() string {
	knp := t.KNP()
	if knp.Code == "" {
		return ""
	}
	return knp.Code + ". " + knp.Name
}
