package account

import "strconv"

// Status is the result of a withdrawal attempt. Only StatusSuccess and
// StatusOverdrafted change the balance.
type Status int

const (
	StatusSuccess Status = iota
	StatusOverdrafted
	StatusOverdraftLimitExceeded
	StatusInsufficientFunds
	StatusAgeRestricted
	StatusWithdrawalLimitExceeded
)

var statusNames = map[Status]string{
	StatusSuccess:                 "success",
	StatusOverdrafted:             "overdrafted",
	StatusOverdraftLimitExceeded:  "overdraft_limit_exceeded",
	StatusInsufficientFunds:       "insufficient_funds",
	StatusAgeRestricted:           "age_restricted",
	StatusWithdrawalLimitExceeded: "withdrawal_limit_exceeded",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// Applied reports whether the withdrawal changed the balance.
func (s Status) Applied() bool {
	return s == StatusSuccess || s == StatusOverdrafted
}

// Detail returns the teller-facing explanation, or "" for a plain success.
func (s Status) Detail(p Policy) string {
	switch s {
	case StatusOverdrafted:
		return "account overdrafted"
	case StatusOverdraftLimitExceeded:
		return "overdraft limit exceeded"
	case StatusInsufficientFunds:
		return "account balance exceeded"
	case StatusAgeRestricted:
		return "not old enough to withdraw"
	case StatusWithdrawalLimitExceeded:
		return "max monthly withdrawals: " + strconv.Itoa(p.MoneyMarketWithdrawals)
	default:
		return ""
	}
}
