package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetworkTier indicates whether a policy's provider is in or out of network.
type NetworkTier string

const (
	InNetwork    NetworkTier = "IN_NETWORK"
	OutOfNetwork NetworkTier = "OUT_OF_NETWORK"
)

// Valid reports whether the network tier is one of the closed set.
func (n NetworkTier) Valid() bool {
	return n == InNetwork || n == OutOfNetwork
}

// CoverageType is the plan level of an insurance policy.
type CoverageType string

const (
	CoverageBasic    CoverageType = "BASIC"
	CoverageStandard CoverageType = "STANDARD"
	CoverageEnhanced CoverageType = "ENHANCED"
	CoveragePlatinum CoverageType = "PLATINUM"
)

// Valid reports whether the coverage type is one of the closed set.
func (c CoverageType) Valid() bool {
	switch c {
	case CoverageBasic, CoverageStandard, CoverageEnhanced, CoveragePlatinum:
		return true
	}
	return false
}

// ServiceCategory classifies the billed service for coverage adjustment.
type ServiceCategory string

const (
	CategoryGeneral    ServiceCategory = "GENERAL"
	CategoryPreventive ServiceCategory = "PREVENTIVE"
	CategoryWellness   ServiceCategory = "WELLNESS"
	CategoryEmergency  ServiceCategory = "EMERGENCY"
	CategoryCosmetic   ServiceCategory = "COSMETIC"
)

// Valid reports whether the service category is one of the closed set.
func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryGeneral, CategoryPreventive, CategoryWellness, CategoryEmergency, CategoryCosmetic:
		return true
	}
	return false
}

// InsurancePolicy is a patient's coverage as supplied by the insurance module.
// Policies arrive ordered by Priority (1 = primary). DeductibleUsedYTD is a
// figure the caller precomputes for the current benefit year; see the benefits
// package for the concurrency caveat around it.
type InsurancePolicy struct {
	Priority          int             `json:"priority"` // 1 = primary, 2 = secondary, ...
	ProviderName      string          `json:"providerName"`
	NetworkTier       NetworkTier     `json:"networkTier"`
	CoverageType      CoverageType    `json:"coverageType"`
	Copay             decimal.Decimal `json:"copay"`             // Fixed amount deducted from computed coverage
	AnnualDeductible  decimal.Decimal `json:"annualDeductible"`  // Applied only when Priority == 1
	DeductibleUsedYTD decimal.Decimal `json:"deductibleUsedYTD"` // Caller-computed, current benefit year
	IsActive          bool            `json:"isActive"`
	ExpiryDate        *time.Time      `json:"expiryDate"`
}

// PolicyShare is one payer's slice of a split bill.
type PolicyShare struct {
	Priority           int             `json:"priority"`
	ProviderName       string          `json:"providerName"`
	CoveragePercentage decimal.Decimal `json:"coveragePercentage"`
	CoverageAmount     decimal.Decimal `json:"coverageAmount"`
	RemainingAfter     decimal.Decimal `json:"remainingAfter"`
}

// BenefitSplit is the outcome of coordinating benefits for one billed amount.
// Invariant: sum of PerPolicy coverage amounts plus PatientResponsibility
// equals TotalAmount. The split is transient; the claims module persists
// whatever it derives from it.
type BenefitSplit struct {
	PerPolicy             []PolicyShare   `json:"perPolicy"`
	PatientResponsibility decimal.Decimal `json:"patientResponsibility"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
}
