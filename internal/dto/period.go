package dto

import (
	"time"

	"github.com/medforge/hospital_ledger/internal/core/domain"
)

// CreatePeriodRequest defines the input for creating a fiscal period.
type CreatePeriodRequest struct {
	Name      string    `json:"name" validate:"required,max=64"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
}

// FiscalPeriodResponse defines the data returned for a fiscal period.
type FiscalPeriodResponse struct {
	PeriodID  string     `json:"periodID"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
	IsClosed  bool       `json:"isClosed"`
	ClosedBy  *string    `json:"closedBy,omitempty"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
}

// ToFiscalPeriodResponse converts a domain FiscalPeriod to its response DTO.
func ToFiscalPeriodResponse(p *domain.FiscalPeriod) FiscalPeriodResponse {
	return FiscalPeriodResponse{
		PeriodID:  p.PeriodID,
		Name:      p.Name,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		IsClosed:  p.IsClosed,
		ClosedBy:  p.ClosedBy,
		ClosedAt:  p.ClosedAt,
	}
}
