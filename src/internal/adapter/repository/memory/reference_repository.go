package memory

import (
	"context"

	"github.com/api-sage/pension-payment-processor/src/internal/domain"
)

type ReferenceRepository struct {
	senderAccounts []string
	taxOffice      domain.TaxOffice
}

func NewReferenceRepository(senderAccounts []string, taxOffice domain.TaxOffice) *ReferenceRepository {
	accounts := make([]string, len(senderAccounts))
	copy(accounts, senderAccounts)
	return &ReferenceRepository{senderAccounts: accounts, taxOffice: taxOffice}
}

func (r *ReferenceRepository) GetSenderAccounts(_ context.Context) ([]string, error) {
	accounts := make([]string, len(r.senderAccounts))
	copy(accounts, r.senderAccounts)
	return accounts, nil
}

func (r *ReferenceRepository) GetTaxOffice(_ context.Context) (domain.TaxOffice, error) {
	return r.taxOffice, nil
}
