// Package benefits implements coordination of benefits: splitting a billed
// amount across an ordered list of insurance policies and the patient.
//
// The computation is pure and performs no I/O. DeductibleUsedYTD on each
// policy is read by the caller before invoking Split; two concurrent invoices
// for the same patient can therefore each see the full deductible as still
// available. Callers that need strict deductible accounting must read that
// figure and post the resulting journal inside one serializable transaction
// per patient.
package benefits

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/medforge/hospital_ledger/internal/core/domain"
	"github.com/medforge/hospital_ledger/internal/utils/accounting"
)

var (
	hundred = decimal.NewFromInt(100)

	inNetworkBasePct    = decimal.NewFromInt(80)
	outOfNetworkBasePct = decimal.NewFromInt(50)

	planAdjustment     = decimal.NewFromInt(10)
	categoryEmergBonus = decimal.NewFromInt(10)
)

// basePercentage returns the starting coverage percentage for a network tier.
func basePercentage(tier domain.NetworkTier) decimal.Decimal {
	if tier == domain.InNetwork {
		return inNetworkBasePct
	}
	return outOfNetworkBasePct
}

// coveragePercentage computes the effective percentage for one policy. The
// plan-level adjustment is applied first and clamped to [0, 100]; the service
// category override is evaluated last and takes precedence.
func coveragePercentage(policy domain.InsurancePolicy, category domain.ServiceCategory) decimal.Decimal {
	pct := basePercentage(policy.NetworkTier)

	switch policy.CoverageType {
	case domain.CoverageEnhanced, domain.CoveragePlatinum:
		pct = pct.Add(planAdjustment)
	case domain.CoverageBasic:
		pct = pct.Sub(planAdjustment)
	}
	pct = clampPct(pct)

	switch category {
	case domain.CategoryPreventive, domain.CategoryWellness:
		pct = hundred
	case domain.CategoryCosmetic:
		pct = decimal.Zero
	case domain.CategoryEmergency:
		pct = clampPct(pct.Add(categoryEmergBonus))
	}
	return pct
}

func clampPct(pct decimal.Decimal) decimal.Decimal {
	if pct.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// usableDeductible returns how much deductible the patient still has to meet
// this benefit year, never negative.
func usableDeductible(policy domain.InsurancePolicy) decimal.Decimal {
	usable := policy.AnnualDeductible.Sub(policy.DeductibleUsedYTD)
	if usable.IsNegative() {
		return decimal.Zero
	}
	return usable
}

// Split divides totalAmount across the policies in ascending priority order
// and computes the patient's remainder.
//
// An empty policy list is a modeled outcome, not an error: the full amount is
// patient responsibility. The deductible is applied only to the priority-1
// policy; copays reduce each policy's computed coverage before it is applied.
func Split(totalAmount decimal.Decimal, policies []domain.InsurancePolicy, category domain.ServiceCategory) (domain.BenefitSplit, error) {
	split := domain.BenefitSplit{
		PerPolicy:   []domain.PolicyShare{},
		TotalAmount: totalAmount,
	}

	ordered := make([]domain.InsurancePolicy, len(policies))
	copy(ordered, policies)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	remaining := totalAmount
	covered := decimal.Zero

	for _, policy := range ordered {
		if !remaining.IsPositive() {
			break
		}

		pct := coveragePercentage(policy, category)
		coverage := remaining.Mul(pct).Div(hundred)

		coverage = coverage.Sub(policy.Copay)
		if coverage.IsNegative() {
			coverage = decimal.Zero
		}

		if policy.Priority == 1 && policy.AnnualDeductible.IsPositive() {
			coverage = coverage.Sub(usableDeductible(policy))
			if coverage.IsNegative() {
				coverage = decimal.Zero
			}
		}

		if coverage.GreaterThan(remaining) {
			coverage = remaining
		}

		split.PerPolicy = append(split.PerPolicy, domain.PolicyShare{
			Priority:           policy.Priority,
			ProviderName:       policy.ProviderName,
			CoveragePercentage: pct,
			CoverageAmount:     coverage,
			RemainingAfter:     remaining.Sub(coverage),
		})

		remaining = remaining.Sub(coverage)
		covered = covered.Add(coverage)
	}

	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	split.PatientResponsibility = remaining

	// Conservation check: every cent of the bill is assigned exactly once.
	if diff := covered.Add(split.PatientResponsibility).Sub(totalAmount).Abs(); diff.GreaterThan(accounting.CurrencyEpsilon) {
		return domain.BenefitSplit{}, fmt.Errorf("benefit split does not conserve total: covered %s + patient %s != %s", covered, split.PatientResponsibility, totalAmount)
	}

	return split, nil
}
