package models

import (
	"sort"
	"strings"
)

// FieldErrors maps a request field to its first validation message.
type FieldErrors map[string]string

func (e FieldErrors) Add(field string, message string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = message
}

func (e FieldErrors) Merge(prefix string, other FieldErrors) {
	for field, message := range other {
		e.Add(prefix+field, message)
	}
}

// Messages returns "field: message" entries ordered by field.
func (e FieldErrors) Messages() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]string, 0, len(fields))
	for _, field := range fields {
		out = append(out, field+": "+e[field])
	}
	return out
}

func (e FieldErrors) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Err returns nil when there are no field errors.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func digitsOnly(value string) bool {
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
