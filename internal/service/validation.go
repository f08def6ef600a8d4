package service

import (
	"strings"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/util"
	"github.com/shopspring/decimal"
)

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return "", domain.ErrNameTooLong
	}
	return name, nil
}

func validateCategory(category string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", domain.ErrCategoryRequired
	}
	if len(category) > domain.MaxCategoryLength {
		return "", domain.ErrNameTooLong
	}
	return category, nil
}

// validateOptionalCategory trims the category, turning a blank value into nil
func validateOptionalCategory(category *string) (*string, error) {
	if category == nil || strings.TrimSpace(*category) == "" {
		return nil, nil
	}
	trimmed, err := validateCategory(*category)
	if err != nil {
		return nil, err
	}
	return &trimmed, nil
}

func requirePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	return nil
}

func requireNonNegative(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	return nil
}

func requireDate(date time.Time) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, domain.ErrInvalidDate
	}
	return util.DateOnly(date), nil
}
