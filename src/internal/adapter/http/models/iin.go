package models

import (
	"errors"
	"strings"
	"time"
)

type CheckIINRequest struct {
	IIN       string `json:"iin"`
	BirthDate string `json:"birthDate,omitempty"`
}

func (r CheckIINRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.IIN) == "" {
		errs = append(errs, "iin is required")
	}
	if birthDate := strings.TrimSpace(r.BirthDate); birthDate != "" {
		if _, err := time.Parse(dateLayout, birthDate); err != nil {
			errs = append(errs, "birthDate must be in YYYY-MM-DD format")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CheckIINResponse struct {
	IIN          string `json:"iin"`
	FormattedIIN string `json:"formattedIin"`
	Complete     bool   `json:"complete"`
	Valid        bool   `json:"valid"`
	BirthDate    string `json:"birthDate,omitempty"`
	Century      int    `json:"century,omitempty"`
}
