package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrDuplicateIIN = errors.New("employee with this IIN already exists")
var ErrNoEmployees = errors.New("at least one employee is required")
var ErrNonPositiveAmount = errors.New("amount must be greater than 0")
var ErrDraftNotFound = errors.New("Draft not found")
var ErrValidation = errors.New("validation failed")
