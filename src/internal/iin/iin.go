// Package iin implements the Kazakh individual identification number:
// checksum validation, century and birth date extraction, and display
// formatting.
//
// An IIN is 12 digits. Digits 1-6 hold the birth date as YYMMDD, digit 7
// the century marker and digit 12 the control digit over digits 1-11.
package iin

import (
	"fmt"
	"strings"
	"time"
)

// Length is the number of digits in an IIN.
const Length = 12

const dateLayout = "2006-01-02"

// MaxBirthDateDrift is how far an entered birth date may be from the one
// encoded in the IIN before it is reported as a mismatch.
const MaxBirthDateDrift = 24 * time.Hour

var (
	primaryWeights   = [11]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	secondaryWeights = [11]int{3, 4, 5, 6, 7, 8, 9, 10, 11, 1, 2}
)

// Validate reports whether value is a well-formed IIN with a correct
// control digit.
func Validate(value string) bool {
	if len(value) != Length || !digitsOnly(value) {
		return false
	}

	control, err := ControlDigit(value[:Length-1])
	if err != nil {
		return false
	}

	return control == int(value[Length-1]-'0')
}

// ControlDigit computes the control digit for the first 11 digits of an IIN.
func ControlDigit(first11 string) (int, error) {
	if len(first11) != Length-1 || !digitsOnly(first11) {
		return 0, fmt.Errorf("control digit needs %d digits, got %q", Length-1, first11)
	}

	control := weightedSum(first11, primaryWeights) % 11
	if control == 10 {
		control = weightedSum(first11, secondaryWeights) % 11
		if control == 10 {
			control = 0
		}
	}

	return control, nil
}

// Century returns the first year of the birth century encoded in digit 7:
// 1 or 2 mean 1900, 3 or 4 mean 2000. Any other marker has no century.
func Century(value string) (int, bool) {
	if len(value) < 7 {
		return 0, false
	}

	switch value[6] {
	case '1', '2':
		return 1900, true
	case '3', '4':
		return 2000, true
	default:
		return 0, false
	}
}

// DateString extracts the birth date as YYYY-MM-DD from a partial or full
// IIN. The date is assembled from the raw digits and is not checked
// against the calendar; use BirthDate for that.
func DateString(value string) (string, bool) {
	if len(value) < 6 {
		return "", false
	}

	century, ok := Century(value)
	if !ok {
		return "", false
	}

	prefix := "19"
	if century == 2000 {
		prefix = "20"
	}

	return prefix + value[0:2] + "-" + value[2:4] + "-" + value[4:6], true
}

// BirthDate returns the calendar birth date encoded in the IIN, in UTC.
func BirthDate(value string) (time.Time, bool) {
	raw, ok := DateString(value)
	if !ok {
		return time.Time{}, false
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

// BirthDateMismatch reports whether entered differs from the birth date
// encoded in the IIN by more than MaxBirthDateDrift. An IIN without a
// derivable date never mismatches.
func BirthDateMismatch(value string, entered time.Time) bool {
	derived, ok := BirthDate(value)
	if !ok {
		return false
	}

	y, m, d := entered.Date()
	entered = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	diff := entered.Sub(derived)
	if diff < 0 {
		diff = -diff
	}

	return diff > MaxBirthDateDrift
}

// Clean drops every non-digit character.
func Clean(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, ch := range value {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Format groups the digits of value as "XXX XXX XXX XXX". Input with more
// than 12 digits is returned cleaned but ungrouped.
func Format(value string) string {
	cleaned := Clean(value)
	if cleaned == "" || len(cleaned) > Length {
		return cleaned
	}

	groups := make([]string, 0, 4)
	for start := 0; start < len(cleaned); start += 3 {
		end := min(start+3, len(cleaned))
		groups = append(groups, cleaned[start:end])
	}

	return strings.Join(groups, " ")
}

// Mask hides all but the last four digits.
func Mask(value string) string {
	if len(value) <= 4 {
		return value
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}

func weightedSum(digits string, weights [11]int) int {
	sum := 0
	for i := range weights {
		sum += int(digits[i]-'0') * weights[i]
	}
	return sum
}

func digitsOnly(value string) bool {
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
