package memory

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/api-sage/pension-payment-processor/src/internal/domain"
)

//go:embed seed/employees.yaml
var defaultSeed []byte

type seedFile struct {
	Employees []seedEmployee `yaml:"employees"`
}

type seedEmployee struct {
	ID         string `yaml:"id"`
	IIN        string `yaml:"iin"`
	LastName   string `yaml:"lastName"`
	FirstName  string `yaml:"firstName"`
	MiddleName string `yaml:"middleName"`
	BirthDate  string `yaml:"birthDate"`
	IsResident bool   `yaml:"isResident"`
	Amount     string `yaml:"amount"`
	Month      int    `yaml:"month"`
	Year       int    `yaml:"year"`
}

// DefaultEmployees returns the built-in employee directory.
func DefaultEmployees() ([]domain.Employee, error) {
	return ParseEmployees(defaultSeed)
}

// ParseEmployees decodes an employee directory in the seed YAML format.
func ParseEmployees(raw []byte) ([]domain.Employee, error) {
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode employee seed: %w", err)
	}

	employees := make([]domain.Employee, 0, len(file.Employees))
	for i, e := range file.Employees {
		birthDate, err := time.Parse("2006-01-02", e.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("employee seed %d: invalid birthDate %q: %w", i, e.BirthDate, err)
		}

		amount := decimal.Zero
		if e.Amount != "" {
			amount, err = decimal.NewFromString(e.Amount)
			if err != nil {
				return nil, fmt.Errorf("employee seed %d: invalid amount %q: %w", i, e.Amount, err)
			}
		}

		employees = append(employees, domain.Employee{
			ID:         e.ID,
			IIN:        e.IIN,
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			MiddleName: e.MiddleName,
			BirthDate:  birthDate,
			IsResident: e.IsResident,
			Amount:     amount,
			Month:      e.Month,
			Year:       e.Year,
		})
	}

	return employees, nil
}
