package customer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdbank/teller/internal/account"
	"github.com/nerdbank/teller/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNew(t *testing.T) {
	c := New(1, "John", "Doe", 30)
	assert.Equal(t, "John", c.FirstName())
	assert.Equal(t, "Doe", c.LastName())
	assert.Equal(t, 30, c.Age())
	assert.Equal(t, 1, c.ID())

	for _, at := range model.AccountTypes() {
		assert.NotNil(t, c.Accounts(at), "slot for %s should exist", at)
		assert.Empty(t, c.Accounts(at))
	}
}

func TestAddAccountKeepsOrder(t *testing.T) {
	c := New(1, "John", "Doe", 30)
	first := account.NewSavings(dec("1"), account.DefaultPolicy())
	second := account.NewSavings(dec("2"), account.DefaultPolicy())
	c.AddAccount(model.AccountTypeSavings, first)
	c.AddAccount(model.AccountTypeSavings, second)

	got, err := c.Account(model.AccountTypeSavings, 0)
	require.NoError(t, err)
	assert.Same(t, first, got)

	got, err = c.Account(model.AccountTypeSavings, 1)
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestDepositInto(t *testing.T) {
	c := New(1, "John", "Doe", 30)
	c.AddAccount(model.AccountTypeChecking, account.NewChecking(dec("10"), account.DefaultPolicy()))

	require.NoError(t, c.DepositInto(model.AccountTypeChecking, 0, dec("5.25")))
	a, _ := c.Account(model.AccountTypeChecking, 0)
	assert.Equal(t, "15.25", a.Balance().StringFixed(2))

	err := c.DepositInto(model.AccountTypeChecking, 1, dec("5"))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = c.DepositInto(model.AccountTypeSavings, 0, dec("5"))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = c.DepositInto(model.AccountTypeChecking, -1, dec("5"))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestWithdrawFrom_UsesCustomerAge(t *testing.T) {
	young := New(1, "John", "Doe", 24)
	young.AddAccount(model.AccountTypeRetirement, account.NewRetirement(dec("1000"), account.DefaultPolicy()))
	status, err := young.WithdrawFrom(model.AccountTypeRetirement, 0, dec("100"))
	require.NoError(t, err)
	assert.Equal(t, account.StatusAgeRestricted, status)

	old := New(2, "Sherri", "Perrson", 83)
	old.AddAccount(model.AccountTypeRetirement, account.NewRetirement(dec("1000"), account.DefaultPolicy()))
	status, err = old.WithdrawFrom(model.AccountTypeRetirement, 0, dec("100"))
	require.NoError(t, err)
	assert.Equal(t, account.StatusSuccess, status)
}

func TestWithdrawFrom_OutOfRange(t *testing.T) {
	c := New(1, "John", "Doe", 30)
	_, err := c.WithdrawFrom(model.AccountTypeMoneyMarket, 0, dec("1"))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAllBalancesReport(t *testing.T) {
	policy := account.DefaultPolicy()
	c := New(1, "Sherri", "Perrson", 83)
	// Insertion order across types does not matter; statement order is fixed.
	c.AddAccount(model.AccountTypeMoneyMarket, account.NewMoneyMarket(dec("3560.75"), policy))
	c.AddAccount(model.AccountTypeSavings, account.NewSavings(dec("14356.99"), policy))
	c.AddAccount(model.AccountTypeChecking, account.NewChecking(dec("1504.32"), policy))
	c.AddAccount(model.AccountTypeSavings, account.NewSavings(dec("25"), policy))

	want := "Checking #1\nAccount balance: $1504.32\n\n" +
		"Savings #1\nAccount balance: $14356.99\n\n" +
		"Savings #2\nAccount balance: $25.00\n\n" +
		"Money Market Fund #1\nAccount balance: $3560.75"
	assert.Equal(t, want, c.AllBalancesReport())
	assert.NotContains(t, c.AllBalancesReport(), "401K", "empty types are omitted")

	// Idempotent without mutation.
	assert.Equal(t, c.AllBalancesReport(), c.AllBalancesReport())
}

func TestAllBalancesReport_Empty(t *testing.T) {
	c := New(1, "John", "Doe", 30)
	assert.Empty(t, c.AllBalancesReport())
}

func TestMissingTypePanics(t *testing.T) {
	c := New(1, "John", "Doe", 30)
	assert.Panics(t, func() {
		c.Accounts(model.AccountType("Brokerage"))
	})
}
