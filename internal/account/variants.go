package account

import (
	"github.com/shopspring/decimal"

	"github.com/nerdbank/teller/internal/model"
)

// Checking allows withdrawals past zero for a flat fee, as long as the
// shortfall stays within the overdraft limit.
type Checking struct{ base }

// NewChecking creates a checking account.
func NewChecking(initial decimal.Decimal, p Policy) *Checking {
	return &Checking{newBase(initial, p)}
}

func (c *Checking) Type() model.AccountType { return model.AccountTypeChecking }

// Withdraw subtracts amount. An overdraft subtracts amount plus the fee.
func (c *Checking) Withdraw(amount decimal.Decimal) Status {
	amount = model.RoundCents(amount)
	if amount.LessThanOrEqual(c.balance) {
		c.debit(amount)
		return StatusSuccess
	}
	shortfall := amount.Sub(c.balance)
	if shortfall.GreaterThan(c.policy.OverdraftLimit) {
		return StatusOverdraftLimitExceeded
	}
	c.debit(amount.Add(c.policy.OverdraftFee))
	return StatusOverdrafted
}

// Savings never goes below zero.
type Savings struct{ base }

// NewSavings creates a savings account.
func NewSavings(initial decimal.Decimal, p Policy) *Savings {
	return &Savings{newBase(initial, p)}
}

func (s *Savings) Type() model.AccountType { return model.AccountTypeSavings }

// Withdraw subtracts amount if the balance covers it.
func (s *Savings) Withdraw(amount decimal.Decimal) Status {
	amount = model.RoundCents(amount)
	if amount.GreaterThan(s.balance) {
		return StatusInsufficientFunds
	}
	s.debit(amount)
	return StatusSuccess
}

// Retirement is a 401K: withdrawals are locked until the holder reaches the
// retirement age.
type Retirement struct{ base }

// NewRetirement creates a retirement account.
func NewRetirement(initial decimal.Decimal, p Policy) *Retirement {
	return &Retirement{newBase(initial, p)}
}

func (r *Retirement) Type() model.AccountType { return model.AccountTypeRetirement }

// Withdraw checks the holder's age before the balance.
func (r *Retirement) Withdraw(amount decimal.Decimal, holderAge int) Status {
	if holderAge < r.policy.RetirementAge {
		return StatusAgeRestricted
	}
	amount = model.RoundCents(amount)
	if amount.GreaterThan(r.balance) {
		return StatusInsufficientFunds
	}
	r.debit(amount)
	return StatusSuccess
}

// MoneyMarket caps the number of successful withdrawals over the account's
// lifetime.
type MoneyMarket struct {
	base
	withdrawals int
}

// NewMoneyMarket creates a money market fund account.
func NewMoneyMarket(initial decimal.Decimal, p Policy) *MoneyMarket {
	return &MoneyMarket{base: newBase(initial, p)}
}

func (m *MoneyMarket) Type() model.AccountType { return model.AccountTypeMoneyMarket }

// Withdrawals returns the number of successful withdrawals so far.
func (m *MoneyMarket) Withdrawals() int { return m.withdrawals }

// Withdraw subtracts amount. Rejected attempts do not count toward the cap.
func (m *MoneyMarket) Withdraw(amount decimal.Decimal) Status {
	if m.withdrawals >= m.policy.MoneyMarketWithdrawals {
		return StatusWithdrawalLimitExceeded
	}
	amount = model.RoundCents(amount)
	if amount.GreaterThan(m.balance) {
		return StatusInsufficientFunds
	}
	m.debit(amount)
	m.withdrawals++
	return StatusSuccess
}
