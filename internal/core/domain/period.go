package domain

import "time"

// FiscalPeriod is a bounded accounting window journals are assigned to.
// Periods for one hospital never overlap. A period transitions OPEN -> CLOSED
// once; reopening is not supported.
type FiscalPeriod struct {
	PeriodID   string     `json:"periodID"`   // Primary key (UUID)
	HospitalID string     `json:"hospitalID"` // Tenant scope (NON-NULL)
	Name       string     `json:"name"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	IsClosed   bool       `json:"isClosed"`
	ClosedBy   *string    `json:"closedBy"`
	ClosedAt   *time.Time `json:"closedAt"`
	AuditFields
}

// Contains reports whether the date falls inside the period's closed interval
// [StartDate, EndDate]. Comparison is at day granularity: a transaction at any
// time of day on EndDate still belongs to the period.
func (p FiscalPeriod) Contains(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(p.StartDate)) && !d.After(dateOnly(p.EndDate))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether two periods share at least one day. Both bounds are
// inclusive, so adjacent periods must not share an end/start date. Comparison
// is at day granularity, matching Contains.
func (p FiscalPeriod) Overlaps(other FiscalPeriod) bool {
	return !dateOnly(p.StartDate).After(dateOnly(other.EndDate)) &&
		!dateOnly(other.StartDate).After(dateOnly(p.EndDate))
}
