package domain

// Frequency is the cadence at which an amount recurs.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiWeekly  Frequency = "bi-weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
	FrequencyOneTime   Frequency = "one-time"
)

// AllFrequencies lists every accepted cadence in display order.
var AllFrequencies = []Frequency{
	FrequencyWeekly,
	FrequencyBiWeekly,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencyAnnually,
	FrequencyOneTime,
}

// IsValid reports whether f is a known cadence.
func (f Frequency) IsValid() bool {
	for _, known := range AllFrequencies {
		if f == known {
			return true
		}
	}
	return false
}

// IsRecurring reports whether f is a valid cadence for a recurring payment (anything but one-time).
func (f Frequency) IsRecurring() bool {
	return f.IsValid() && f != FrequencyOneTime
}
