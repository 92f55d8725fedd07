package domain

import (
	"context"
	"time"
)

type TaxOffice struct {
	Name    string
	BIN     string
	Account string
}

type ContributionMonth struct {
	Value int
	Label string
}

var ContributionMonths = []ContributionMonth{
	{Value: 1, Label: "Январь"},
	{Value: 2, Label: "Февраль"},
	{Value: 3, Label: "Март"},
	{Value: 4, Label: "Апрель"},
	{Value: 5, Label: "Май"},
	{Value: 6, Label: "Июнь"},
	{Value: 7, Label: "Июль"},
	{Value: 8, Label: "Август"},
	{Value: 9, Label: "Сентябрь"},
	{Value: 10, Label: "Октябрь"},
	{Value: 11, Label: "Ноябрь"},
	{Value: 12, Label: "Декабрь"},
}

const contributionYearsBack = 5
const contributionYearsSpan = 10

// ContributionYears returns the selectable contribution years around now:
// five years back through four years ahead.
func ContributionYears(now time.Time) []int {
	first := now.Year() - contributionYearsBack
	years := make([]int, 0, contributionYearsSpan)
	for i := 0; i < contributionYearsSpan; i++ {
		years = append(years, first+i)
	}
	return years
}

func IsContributionYear(year int, now time.Time) bool {
	first := now.Year() - contributionYearsBack
	return year >= first && year < first+contributionYearsSpan
}

type ReferenceRepository interface {
	GetSenderAccounts(ctx context.Context) ([]string, error)
	GetTaxOffice(ctx context.Context) (TaxOffice, error)
}
