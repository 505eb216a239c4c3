// Package teller validates raw deposit and withdrawal requests, routes them to
// a customer's account and reports one outcome code per attempt.
package teller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nerdbank/teller/internal/account"
	"github.com/nerdbank/teller/internal/customer"
	"github.com/nerdbank/teller/internal/log"
	"github.com/nerdbank/teller/internal/model"
)

// Code classifies the outcome of a transaction attempt.
type Code int

const (
	CodeSuccess Code = iota
	CodeInvalidAccountType
	CodeUnparseableInput
	CodeNegativeValue
	CodeIndexOutOfRange
	CodeBusinessRuleRejected
)

var codeNames = map[Code]string{
	CodeSuccess:              "success",
	CodeInvalidAccountType:   "invalid_account_type",
	CodeUnparseableInput:     "unparseable_input",
	CodeNegativeValue:        "negative_value",
	CodeIndexOutOfRange:      "index_out_of_range",
	CodeBusinessRuleRejected: "business_rule_rejected",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "code(" + strconv.Itoa(int(c)) + ")"
}

// Result is the outcome of Perform.
type Result struct {
	Code   Code
	Detail string // account rule explanation; set for rejections and overdrafts

	// Type is the parsed account type, empty when the type token was invalid.
	Type model.AccountType
	// Status is the withdrawal status when a withdrawal reached an account.
	Status account.Status

	Balance    decimal.Decimal // balance after the attempt
	HasBalance bool            // false when no account was reached
}

// OK reports whether the transaction was applied.
func (r Result) OK() bool { return r.Code == CodeSuccess }

// Message returns the text shown to the teller for this result.
func (r Result) Message(op model.Operation) string {
	switch r.Code {
	case CodeSuccess:
		msg := op.Title() + " successful"
		if r.Detail != "" {
			msg += ": " + r.Detail
		}
		return msg
	case CodeInvalidAccountType:
		return "Invalid account type"
	case CodeUnparseableInput:
		return "Invalid type/amount"
	case CodeNegativeValue:
		return "Type/Amount must be positive"
	case CodeIndexOutOfRange:
		return "Invalid account number"
	default:
		return "Transaction failed: " + r.Detail
	}
}

// Perform validates the tokens and applies op to the customer's account.
// Nothing is mutated unless every check passes. Malformed input is reported
// through the result code, never as a panic.
func Perform(typeToken, numberToken, amountToken string, c *customer.Customer, op model.Operation) Result {
	t, ok := model.ParseAccountType(typeToken)
	if !ok {
		return Result{Code: CodeInvalidAccountType}
	}
	res := Result{Type: t}

	number, err := strconv.Atoi(strings.TrimSpace(numberToken))
	if err != nil {
		res.Code = CodeUnparseableInput
		return res
	}
	amount, err := model.ParseAmount(amountToken)
	if err != nil {
		res.Code = CodeUnparseableInput
		return res
	}

	if number < 1 || amount.IsNegative() {
		res.Code = CodeNegativeValue
		return res
	}
	index := number - 1

	a, err := c.Account(t, index)
	if err != nil {
		res.Code = CodeIndexOutOfRange
		return res
	}

	switch op {
	case model.OperationDeposit:
		if err := c.DepositInto(t, index, amount); err != nil {
			panic(fmt.Sprintf("teller: deposit into checked account: %v", err))
		}
		res.Code = CodeSuccess
	case model.OperationWithdraw:
		st, err := c.WithdrawFrom(t, index, amount)
		if err != nil {
			panic(fmt.Sprintf("teller: withdraw from checked account: %v", err))
		}
		res.Status = st
		res.Detail = st.Detail(a.Policy())
		if st.Applied() {
			res.Code = CodeSuccess
		} else {
			res.Code = CodeBusinessRuleRejected
			log.Warn("withdrawal rejected",
				"customer_id", c.ID(),
				"type", string(t),
				"number", number,
				"status", st.String(),
			)
		}
	default:
		panic(fmt.Sprintf("teller: unknown operation %q", op))
	}

	res.Balance = a.Balance()
	res.HasBalance = true
	log.Debug("transaction",
		"customer_id", c.ID(),
		"operation", string(op),
		"type", string(t),
		"number", number,
		"amount", amount.String(),
		"code", res.Code.String(),
		"status", res.Status.String(),
	)
	return res
}

// ErrArity is returned when a request line has the wrong number of fields.
var ErrArity = errors.New("incorrect number of values")

// Split breaks a colon-separated line into exactly n trimmed fields.
func Split(line string, n int) ([]string, error) {
	fields := strings.Split(line, ":")
	if len(fields) != n {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrArity, n, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}

// Request is a transaction line split into its tokens.
type Request struct {
	Type   string
	Number string
	Amount string
}

// ParseRequest splits a "type:number:amount" line.
func ParseRequest(line string) (Request, error) {
	fields, err := Split(line, 3)
	if err != nil {
		return Request{}, err
	}
	return Request{Type: fields[0], Number: fields[1], Amount: fields[2]}, nil
}

// Perform applies op for c using the request's tokens.
func (r Request) Perform(c *customer.Customer, op model.Operation) Result {
	return Perform(r.Type, r.Number, r.Amount, c, op)
}

// Transaction builds the journal record for a performed request.
func (r Request) Transaction(c *customer.Customer, op model.Operation, res Result) model.Transaction {
	acctType := r.Type
	if res.Type != "" {
		acctType = string(res.Type)
	}
	return model.Transaction{
		CustomerID:    c.ID(),
		Operation:     op,
		AccountType:   acctType,
		AccountNumber: r.Number,
		Amount:        r.Amount,
		Outcome:       res.Code.String(),
		Detail:        res.Detail,
		Balance:       res.Balance,
		HasBalance:    res.HasBalance,
	}
}
