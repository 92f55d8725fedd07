package domain

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByIIN(ctx context.Context, iin string) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, employee Employee) (Employee, error)
	Delete(ctx context.Context, id string) (Employee, error)
	Search(ctx context.Context, query string) ([]Employee, error)
}
