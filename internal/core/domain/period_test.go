package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medforge/hospital_ledger/internal/core/domain"
)

func q1() domain.FiscalPeriod {
	return domain.FiscalPeriod{
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestFiscalPeriodContains(t *testing.T) {
	p := q1()

	assert.True(t, p.Contains(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), "start date inclusive")
	assert.True(t, p.Contains(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)), "end date inclusive")
	assert.True(t, p.Contains(time.Date(2026, 3, 31, 18, 45, 0, 0, time.UTC)), "any time on end date")
	assert.True(t, p.Contains(time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFiscalPeriodOverlaps(t *testing.T) {
	p := q1()

	q2 := domain.FiscalPeriod{
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	assert.False(t, p.Overlaps(q2))
	assert.False(t, q2.Overlaps(p))

	// Sharing a single boundary day counts as overlap.
	touching := domain.FiscalPeriod{
		StartDate: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, p.Overlaps(touching))

	contained := domain.FiscalPeriod{
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, p.Overlaps(contained))
}

// Overlaps compares at day granularity like Contains, so non-midnight bounds
// still count a shared boundary day as overlap.
func TestFiscalPeriodOverlaps_NonMidnightBounds(t *testing.T) {
	p := q1()

	lateStart := domain.FiscalPeriod{
		StartDate: time.Date(2026, 3, 31, 18, 45, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, p.Overlaps(lateStart), "boundary day shared regardless of time of day")
	assert.True(t, lateStart.Overlaps(p))

	nextDay := domain.FiscalPeriod{
		StartDate: time.Date(2026, 4, 1, 0, 0, 1, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	assert.False(t, p.Overlaps(nextDay))
}
