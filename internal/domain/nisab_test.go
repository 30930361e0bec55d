package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNisabRates_NewerThan(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	snapshot := func(rateDate, createdAt time.Time) *NisabRates {
		r := NewNisabRates("USD", decimal.NewFromInt(60), decimal.RequireFromString("0.8"), rateDate)
		r.CreatedAt = createdAt
		return r
	}

	tests := []struct {
		name     string
		rates    *NisabRates
		other    *NisabRates
		expected bool
	}{
		{name: "later rate date", rates: snapshot(day.AddDate(0, 0, 1), day), other: snapshot(day, day.Add(time.Hour)), expected: true},
		{name: "earlier rate date", rates: snapshot(day, day.Add(time.Hour)), other: snapshot(day.AddDate(0, 0, 1), day), expected: false},
		{name: "same date created later", rates: snapshot(day, day.Add(time.Hour)), other: snapshot(day, day), expected: true},
		{name: "identical ordering", rates: snapshot(day, day), other: snapshot(day, day), expected: false},
		{name: "nothing to compare", rates: snapshot(day, day), other: nil, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rates.NewerThan(tt.other))
		})
	}
}
