package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	values := []string{"0", "1500.00", "-100.25", "0.0000000001", "123456789.987654321"}

	for _, value := range values {
		t.Run(value, func(t *testing.T) {
			original := decimal.RequireFromString(value)
			num, err := decimalToPgNumeric(original)
			require.NoError(t, err)
			assert.True(t, num.Valid)
			assert.True(t, original.Equal(pgNumericToDecimal(num)), "got %s", pgNumericToDecimal(num))
		})
	}
}

func TestPgNumericToDecimal_Invalid(t *testing.T) {
	assert.True(t, pgNumericToDecimal(pgtype.Numeric{}).IsZero())
}

func TestPgDateConversions(t *testing.T) {
	local := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	got := pgDateToTime(timeToPgDate(local))
	assert.Equal(t, time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC), got)

	assert.False(t, optionalTimeToPgDate(nil).Valid)
	assert.Nil(t, pgDateToOptionalTime(pgtype.Date{}))
	require.NotNil(t, pgDateToOptionalTime(timeToPgDate(local)))
}

func TestOptionalText(t *testing.T) {
	assert.False(t, optionalText(nil).Valid)
	assert.Nil(t, pgTextToOptional(pgtype.Text{}))

	value := "Housing"
	text := optionalText(&value)
	require.True(t, text.Valid)
	assert.Equal(t, "Housing", *pgTextToOptional(text))
}
