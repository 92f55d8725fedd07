package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/api-sage/pension-payment-processor/src/internal/domain"
)

type PaymentRepository struct {
	mu       sync.RWMutex
	payments []domain.Payment
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(_ context.Context, payment domain.Payment) (domain.Payment, error) {
	payment = payment.Clone()
	now := time.Now().UTC()
	payment.ID = uuid.NewString()
	payment.CreatedAt = now
	payment.UpdatedAt = now
	for i := range payment.Employees {
		if payment.Employees[i].ID == "" {
			payment.Employees[i].ID = uuid.NewString()
		}
	}

	r.mu.Lock()
	r.payments = append(r.payments, payment)
	r.mu.Unlock()

	return payment.Clone(), nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id string) (domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.payments {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Payment{}, domain.ErrRecordNotFound
}

func (r *PaymentRepository) GetAll(_ context.Context) ([]domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, p.Clone())
	}
	return out, nil
}

// Reset drops every stored payment.
func (r *PaymentRepository) Reset() {
	r.mu.Lock()
	r.payments = nil
	r.mu.Unlock()
}

// DraftRepository keeps payment drafts for the lifetime of the process.
type DraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]domain.Payment
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{drafts: make(map[string]domain.Payment)}
}

// Save stores the draft, assigning an id on first save.
func (r *DraftRepository) Save(_ context.Context, draft domain.Payment) (domain.Payment, error) {
	draft = draft.Clone()
	now := time.Now().UTC()
	if draft.ID == "" {
		draft.ID = uuid.NewString()
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now

	r.mu.Lock()
	r.drafts[draft.ID] = draft
	r.mu.Unlock()

	return draft.Clone(), nil
}

// Update applies fn to the stored draft under the repository lock. The
// draft is left untouched when fn fails.
func (r *DraftRepository) Update(_ context.Context, id string, fn func(draft *domain.Payment) error) (domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.drafts[id]
	if !ok {
		return domain.Payment{}, domain.ErrDraftNotFound
	}

	draft := current.Clone()
	if err := fn(&draft); err != nil {
		return domain.Payment{}, err
	}
	draft.ID = id
	draft.UpdatedAt = time.Now().UTC()
	r.drafts[id] = draft

	return draft.Clone(), nil
}

func (r *DraftRepository) Get(_ context.Context, id string) (domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, ok := r.drafts[id]
	if !ok {
		return domain.Payment{}, domain.ErrDraftNotFound
	}
	return draft.Clone(), nil
}

func (r *DraftRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[id]; !ok {
		return domain.ErrDraftNotFound
	}
	delete(r.drafts, id)
	return nil
}
