package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/logger"
)

// EmployeeRepository is a process-local employee directory. Insertion
// order is preserved.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []domain.Employee
}

func NewEmployeeRepository(seed []domain.Employee) *EmployeeRepository {
	r := &EmployeeRepository{}
	r.Reset(seed)
	return r
}

// Reset replaces the directory contents with seed.
func (r *EmployeeRepository) Reset(seed []domain.Employee) {
	employees := make([]domain.Employee, 0, len(seed))
	now := time.Now().UTC()
	for _, e := range seed {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
			e.UpdatedAt = now
		}
		employees = append(employees, e)
	}

	r.mu.Lock()
	r.employees = employees
	r.mu.Unlock()
}

func (r *EmployeeRepository) Create(_ context.Context, employee domain.Employee) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexByIIN(employee.IIN) >= 0 {
		logger.Info("employee repository duplicate iin", logger.Fields{
			"iin": employee.IIN,
		})
		return domain.Employee{}, domain.ErrDuplicateIIN
	}

	now := time.Now().UTC()
	employee.ID = uuid.NewString()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	r.employees = append(r.employees, employee)

	return employee, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexByID(id)
	if idx < 0 {
		return domain.Employee{}, domain.ErrRecordNotFound
	}
	return r.employees[idx], nil
}

func (r *EmployeeRepository) GetByIIN(_ context.Context, iin string) (domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexByIIN(iin)
	if idx < 0 {
		return domain.Employee{}, domain.ErrRecordNotFound
	}
	return r.employees[idx], nil
}

func (r *EmployeeRepository) GetAll(_ context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

func (r *EmployeeRepository) Update(_ context.Context, employee domain.Employee) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexByID(employee.ID)
	if idx < 0 {
		return domain.Employee{}, domain.ErrRecordNotFound
	}
	if other := r.indexByIIN(employee.IIN); other >= 0 && other != idx {
		return domain.Employee{}, domain.ErrDuplicateIIN
	}

	employee.CreatedAt = r.employees[idx].CreatedAt
	employee.UpdatedAt = time.Now().UTC()
	r.employees[idx] = employee

	return employee, nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexByID(id)
	if idx < 0 {
		return domain.Employee{}, domain.ErrRecordNotFound
	}

	deleted := r.employees[idx]
	r.employees = append(r.employees[:idx:idx], r.employees[idx+1:]...)
	return deleted, nil
}

func (r *EmployeeRepository) Search(_ context.Context, query string) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Employee, 0)
	for _, e := range r.employees {
		if e.Matches(query) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EmployeeRepository) indexByID(id string) int {
	for i, e := range r.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (r *EmployeeRepository) indexByIIN(iin string) int {
	for i, e := range r.employees {
		if e.IIN == iin {
			return i
		}
	}
	return -1
}
