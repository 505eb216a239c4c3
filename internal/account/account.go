// Package account implements the four bank account variants and their
// withdrawal policies.
package account

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nerdbank/teller/internal/model"
)

// Account is one of *Checking, *Savings, *Retirement or *MoneyMarket.
// The set is closed: only this package can add variants.
type Account interface {
	Type() model.AccountType
	Balance() decimal.Decimal
	Deposit(amount decimal.Decimal)
	Policy() Policy
	String() string
	sealed()
}

// Policy holds the rule constants the variants enforce.
type Policy struct {
	OverdraftFee           decimal.Decimal // charged on top of an overdrafting withdrawal
	OverdraftLimit         decimal.Decimal // largest shortfall a checking withdrawal may create
	RetirementAge          int
	MoneyMarketWithdrawals int // lifetime cap on successful withdrawals
}

// DefaultPolicy returns the bank's standard rules.
func DefaultPolicy() Policy {
	return Policy{
		OverdraftFee:           decimal.NewFromInt(35),
		OverdraftLimit:         decimal.NewFromInt(500),
		RetirementAge:          67,
		MoneyMarketWithdrawals: 2,
	}
}

// base carries the state and behavior shared by every variant.
type base struct {
	balance decimal.Decimal
	policy  Policy
}

func newBase(initial decimal.Decimal, p Policy) base {
	return base{balance: model.RoundCents(initial), policy: p}
}

func (b *base) sealed() {}

// Balance returns the current balance, always rounded to cents.
func (b *base) Balance() decimal.Decimal { return b.balance }

// Deposit adds amount, rounded to cents. Amount is validated non-negative by
// the caller.
func (b *base) Deposit(amount decimal.Decimal) {
	b.balance = model.RoundCents(b.balance.Add(model.RoundCents(amount)))
}

// Policy returns the rules the account was opened under.
func (b *base) Policy() Policy { return b.policy }

func (b *base) String() string {
	return "Account balance: " + model.FormatMoney(b.balance)
}

// debit subtracts amount in a single assignment.
func (b *base) debit(amount decimal.Decimal) {
	b.balance = model.RoundCents(b.balance.Sub(amount))
}

// New creates an account of the given type.
func New(t model.AccountType, initial decimal.Decimal, p Policy) (Account, error) {
	switch t {
	case model.AccountTypeChecking:
		return NewChecking(initial, p), nil
	case model.AccountTypeSavings:
		return NewSavings(initial, p), nil
	case model.AccountTypeRetirement:
		return NewRetirement(initial, p), nil
	case model.AccountTypeMoneyMarket:
		return NewMoneyMarket(initial, p), nil
	default:
		return nil, fmt.Errorf("unknown account type %q", t)
	}
}

// Withdraw dispatches a withdrawal to the variant's own policy. holderAge is
// only consulted by retirement accounts.
func Withdraw(a Account, amount decimal.Decimal, holderAge int) Status {
	switch acct := a.(type) {
	case *Checking:
		return acct.Withdraw(amount)
	case *Savings:
		return acct.Withdraw(amount)
	case *Retirement:
		return acct.Withdraw(amount, holderAge)
	case *MoneyMarket:
		return acct.Withdraw(amount)
	default:
		panic(fmt.Sprintf("account: unknown variant %T", a))
	}
}
