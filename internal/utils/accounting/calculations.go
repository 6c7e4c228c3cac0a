package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/medforge/hospital_ledger/internal/core/domain"
)

// CurrencyEpsilon is the tolerance used when comparing debit and credit totals.
// Amounts are handled to cent precision.
var CurrencyEpsilon = decimal.New(1, -2) // 0.01

// ValidateLine checks the defining constraint of a ledger line: exactly one of
// debit and credit is strictly positive, the other is zero.
func ValidateLine(debit, credit decimal.Decimal) error {
	if debit.IsNegative() || credit.IsNegative() {
		return fmt.Errorf("line amounts must not be negative (debit %s, credit %s)", debit, credit)
	}
	if debit.IsPositive() && credit.IsPositive() {
		return fmt.Errorf("line must not carry both a debit (%s) and a credit (%s)", debit, credit)
	}
	if debit.IsZero() && credit.IsZero() {
		return fmt.Errorf("line must carry a debit or a credit amount")
	}
	return nil
}

// SumSides returns the total debits and total credits across the given entries.
func SumSides(entries []domain.Entry) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, e := range entries {
		if e.IsDebit() {
			debits = debits.Add(e.Amount())
		} else {
			credits = credits.Add(e.Amount())
		}
	}
	return debits, credits
}

// CheckBalanced verifies debit and credit totals agree within CurrencyEpsilon
// and are not both zero. A failure here means the journal would unbalance the
// ledger and must not be written.
func CheckBalanced(debits, credits decimal.Decimal) error {
	if debits.IsZero() && credits.IsZero() {
		return fmt.Errorf("journal carries no amounts")
	}
	if diff := debits.Sub(credits).Abs(); diff.GreaterThan(CurrencyEpsilon) {
		return fmt.Errorf("journal does not balance: debits %s, credits %s", debits, credits)
	}
	return nil
}

// DebitNormalBalance computes an account balance under the debit-normal
// convention (debits minus credits). Sign interpretation is up to the caller
// and depends on the account type.
func DebitNormalBalance(totalDebit, totalCredit decimal.Decimal) decimal.Decimal {
	return totalDebit.Sub(totalCredit)
}
