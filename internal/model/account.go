package model

import "strings"

// AccountType tags one of the four account variants. The string value is the
// display name shown to tellers and accepted in transaction input.
type AccountType string

const (
	AccountTypeChecking    AccountType = "Checking"
	AccountTypeSavings     AccountType = "Savings"
	AccountTypeRetirement  AccountType = "401K"
	AccountTypeMoneyMarket AccountType = "Money Market Fund"
)

// AccountTypes returns every account type in statement order.
func AccountTypes() []AccountType {
	return []AccountType{
		AccountTypeChecking,
		AccountTypeSavings,
		AccountTypeRetirement,
		AccountTypeMoneyMarket,
	}
}

// ParseAccountType matches s case-insensitively against the display names.
func ParseAccountType(s string) (AccountType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range AccountTypes() {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// Valid reports whether t is one of the four known types.
func (t AccountType) Valid() bool {
	for _, known := range AccountTypes() {
		if t == known {
			return true
		}
	}
	return false
}
