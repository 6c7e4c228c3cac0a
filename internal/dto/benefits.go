package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/medforge/hospital_ledger/internal/core/domain"
)

// PolicyInput is one insurance policy as supplied by the insurance module.
type PolicyInput struct {
	Priority          int             `json:"priority" validate:"required,min=1"`
	ProviderName      string          `json:"providerName" validate:"required"`
	NetworkTier       string          `json:"networkTier" validate:"required,networktier"`
	CoverageType      string          `json:"coverageType" validate:"required,coveragetype"`
	Copay             decimal.Decimal `json:"copay"`
	AnnualDeductible  decimal.Decimal `json:"annualDeductible"`
	DeductibleUsedYTD decimal.Decimal `json:"deductibleUsedYTD"`
	IsActive          bool            `json:"isActive"`
	ExpiryDate        *time.Time      `json:"expiryDate"`
}

// SplitRequest asks for a billed amount to be coordinated across policies.
// An empty Policies list is valid and yields full patient responsibility.
type SplitRequest struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Category    string          `json:"category" validate:"servicecategory"`
	Policies    []PolicyInput   `json:"policies" validate:"dive"`
}

// ToDomainPolicy converts a policy input to its domain form.
func ToDomainPolicy(p PolicyInput) domain.InsurancePolicy {
	return domain.InsurancePolicy{
		Priority:          p.Priority,
		ProviderName:      p.ProviderName,
		NetworkTier:       domain.NetworkTier(p.NetworkTier),
		CoverageType:      domain.CoverageType(p.CoverageType),
		Copay:             p.Copay,
		AnnualDeductible:  p.AnnualDeductible,
		DeductibleUsedYTD: p.DeductibleUsedYTD,
		IsActive:          p.IsActive,
		ExpiryDate:        p.ExpiryDate,
	}
}

// ToDomainPolicies converts policy inputs to their domain form.
func ToDomainPolicies(ps []PolicyInput) []domain.InsurancePolicy {
	out := make([]domain.InsurancePolicy, len(ps))
	for i, p := range ps {
		out[i] = ToDomainPolicy(p)
	}
	return out
}
