package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Operation is the kind of balance change a teller requests.
type Operation string

const (
	OperationDeposit  Operation = "deposit"
	OperationWithdraw Operation = "withdraw"
)

// Title returns the capitalized operation name used in teller messages.
func (o Operation) Title() string {
	if o == "" {
		return ""
	}
	return strings.ToUpper(string(o[:1])) + string(o[1:])
}

// Transaction is one dispatched deposit or withdrawal attempt, successful or not.
type Transaction struct {
	ID            string
	Time          time.Time
	CustomerID    int
	Operation     Operation
	AccountType   string // raw token when the type did not parse
	AccountNumber string // 1-based, as entered
	Amount        string // as entered
	Outcome       string
	Detail        string
	Balance       decimal.Decimal // balance after; zero when no account was reached
	HasBalance    bool
}
