package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func parseID(c echo.Context) (int32, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

// parseDecimal parses a required decimal string field
func parseDecimal(value, field string) (decimal.Decimal, *ValidationError) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, &ValidationError{Field: field, Message: "Is required"}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Message: "Must be a valid decimal number"}
	}
	return d, nil
}

// parseOptionalDecimal parses a decimal field that may be omitted, defaulting to zero
func parseOptionalDecimal(value, field string) (decimal.Decimal, *ValidationError) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}
	return parseDecimal(value, field)
}

func parseDecimalPtr(value *string, field string) (*decimal.Decimal, *ValidationError) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	d, verr := parseDecimal(*value, field)
	if verr != nil {
		return nil, verr
	}
	return &d, nil
}

func parseDateField(value, field string) (time.Time, *ValidationError) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, &ValidationError{Field: field, Message: "Is required"}
	}
	t, err := util.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &ValidationError{Field: field, Message: "Must be a date in YYYY-MM-DD format"}
	}
	return t, nil
}

func parseDatePtr(value *string, field string) (*time.Time, *ValidationError) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, verr := parseDateField(*value, field)
	if verr != nil {
		return nil, verr
	}
	return &t, nil
}

// queryDate reads an optional YYYY-MM-DD query parameter
func queryDate(c echo.Context, name string) (*time.Time, *ValidationError) {
	value := c.QueryParam(name)
	return parseDatePtr(&value, name)
}

// asOfDate reads the asOf query parameter, defaulting to today in UTC
func asOfDate(c echo.Context) (time.Time, *ValidationError) {
	asOf, verr := queryDate(c, "asOf")
	if verr != nil {
		return time.Time{}, verr
	}
	if asOf == nil {
		return util.DateOnly(time.Now().UTC()), nil
	}
	return *asOf, nil
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatOptionalMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := formatMoney(*d)
	return &s
}

func formatDate(t time.Time) string {
	return t.Format(util.DateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// fieldError responds with a single-field validation problem
func fieldError(c echo.Context, verr *ValidationError) error {
	return NewValidationError(c, "Validation failed", []ValidationError{*verr})
}
