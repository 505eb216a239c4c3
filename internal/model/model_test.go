package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input string
		want  AccountType
		ok    bool
	}{
		{"Checking", AccountTypeChecking, true},
		{"checking", AccountTypeChecking, true},
		{"SAVINGS", AccountTypeSavings, true},
		{"401k", AccountTypeRetirement, true},
		{"money market fund", AccountTypeMoneyMarket, true},
		{"  Savings ", AccountTypeSavings, true},
		{"Bogus", "", false},
		{"MoneyMarket", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseAccountType(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseAccountType(%q)", tt.input)
		assert.Equal(t, tt.want, got, "ParseAccountType(%q)", tt.input)
	}
}

func TestAccountTypesOrder(t *testing.T) {
	assert.Equal(t, []AccountType{
		AccountTypeChecking,
		AccountTypeSavings,
		AccountTypeRetirement,
		AccountTypeMoneyMarket,
	}, AccountTypes())
}

func TestAccountTypeValid(t *testing.T) {
	for _, at := range AccountTypes() {
		assert.True(t, at.Valid(), "%q should be valid", at)
	}
	assert.False(t, AccountType("checking").Valid(), "only display names are valid tags")
	assert.False(t, AccountType("").Valid())
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1504.32", "$1504.32"},
		{"43265", "$43265.00"},
		{"-235", "$-235.00"},
		{"0.1", "$0.10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.input)), "input %q", tt.input)
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, "10.13", RoundCents(decimal.RequireFromString("10.125")).StringFixed(2))
	assert.Equal(t, "10.12", RoundCents(decimal.RequireFromString("10.124")).StringFixed(2))
	assert.True(t, RoundCents(decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2"))).Equal(decimal.RequireFromString("0.30")))
}

func TestOperationTitle(t *testing.T) {
	assert.Equal(t, "Deposit", OperationDeposit.Title())
	assert.Equal(t, "Withdraw", OperationWithdraw.Title())
	assert.Equal(t, "", Operation("").Title())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"12.50", "12.50"},
		{" 7 ", "7.00"},
		{"1e3", "1000.00"},
		{"-5", "-5.00"},
		{"0.000000000001", "0.00"},
	}
	for _, tt := range tests {
		d, err := ParseAmount(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, d.StringFixed(2), tt.input)
	}
}

func TestParseAmount_Errors(t *testing.T) {
	_, err := ParseAmount("five")
	assert.ErrorContains(t, err, "parsing amount")

	for _, input := range []string{"1e50000000", "1e-50000000", "1e13", "0.0000000000001"} {
		_, err := ParseAmount(input)
		assert.ErrorIs(t, err, ErrAmountOutOfRange, input)
	}
}
