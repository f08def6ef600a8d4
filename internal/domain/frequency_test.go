package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyValidity(t *testing.T) {
	tests := []struct {
		frequency Frequency
		valid     bool
		recurring bool
	}{
		{FrequencyWeekly, true, true},
		{FrequencyBiWeekly, true, true},
		{FrequencyMonthly, true, true},
		{FrequencyQuarterly, true, true},
		{FrequencyAnnually, true, true},
		{FrequencyOneTime, true, false},
		{Frequency("daily"), false, false},
		{Frequency(""), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.frequency.IsValid())
			assert.Equal(t, tt.recurring, tt.frequency.IsRecurring())
		})
	}
}
