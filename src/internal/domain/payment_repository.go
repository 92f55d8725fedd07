package domain

import "context"

type PaymentRepository interface {
	Create(ctx context.Context, payment Payment) (Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)
	GetAll(ctx context.Context) ([]Payment, error)
}

type DraftRepository interface {
	Save(ctx context.Context, draft Payment) (Payment, error)
	Update(ctx context.Context, id string, fn func(draft *Payment) error) (Payment, error)
	Get(ctx context.Context, id string) (Payment, error)
	Delete(ctx context.Context, id string) error
}
