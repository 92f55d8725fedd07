package models

type TaxOfficeResponse struct {
	Name    string `json:"name"`
	BIN     string `json:"bin"`
	Account string `json:"account"`
}

type PaymentTypeResponse struct {
	Code    string `json:"code"`
	Label   string `json:"label"`
	KNPCode string `json:"knpCode"`
	KNPName string `json:"knpName"`
	Purpose string `json:"purpose"`
}

type MonthResponse struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type PeriodsResponse struct {
	Months []MonthResponse `json:"months"`
	Years  []int           `json:"years"`
}

type FormDefaultsResponse struct {
	DocumentNumber string                `json:"documentNumber"`
	PaymentType    string                `json:"paymentType"`
	PaymentPurpose string                `json:"paymentPurpose"`
	SenderAccounts []string              `json:"senderAccounts"`
	TaxOffice      TaxOfficeResponse     `json:"taxOffice"`
	PaymentTypes   []PaymentTypeResponse `json:"paymentTypes"`
	Periods        PeriodsResponse       `json:"periods"`
	Directory      []EmployeeResponse    `json:"directory"`
}
