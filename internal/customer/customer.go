// Package customer models an account holder and the accounts they own,
// grouped by account type.
package customer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nerdbank/teller/internal/account"
	"github.com/nerdbank/teller/internal/model"
)

// ErrIndexOutOfRange is returned when an account index does not exist for a type.
var ErrIndexOutOfRange = errors.New("account index out of range")

// Customer is a bank account holder. A Customer exclusively owns its accounts.
type Customer struct {
	firstName string
	lastName  string
	age       int
	id        int
	accounts  map[model.AccountType][]account.Account
}

// New creates a customer with an empty sequence for every account type.
// Ids are assigned by the registry.
func New(id int, firstName, lastName string, age int) *Customer {
	accounts := make(map[model.AccountType][]account.Account, len(model.AccountTypes()))
	for _, t := range model.AccountTypes() {
		accounts[t] = []account.Account{}
	}
	return &Customer{
		firstName: firstName,
		lastName:  lastName,
		age:       age,
		id:        id,
		accounts:  accounts,
	}
}

// FirstName returns the customer's given name.
func (c *Customer) FirstName() string { return c.firstName }

// LastName returns the customer's family name.
func (c *Customer) LastName() string { return c.lastName }

// Age returns the customer's age in years. Retirement withdrawals check it.
func (c *Customer) Age() int { return c.age }

// ID returns the registry-assigned id, unique and starting at 1.
func (c *Customer) ID() int { return c.id }

// AddAccount appends a to the accounts of type t.
func (c *Customer) AddAccount(t model.AccountType, a account.Account) {
	c.accounts[t] = append(c.mustAccounts(t), a)
}

// Accounts returns the accounts of type t in display order.
func (c *Customer) Accounts(t model.AccountType) []account.Account {
	return c.mustAccounts(t)
}

// Account returns the account of type t at the 0-based index.
func (c *Customer) Account(t model.AccountType, index int) (account.Account, error) {
	accts := c.mustAccounts(t)
	if index < 0 || index >= len(accts) {
		return nil, fmt.Errorf("%s #%d: %w", t, index+1, ErrIndexOutOfRange)
	}
	return accts[index], nil
}

// DepositInto adds amount to the account of type t at index.
func (c *Customer) DepositInto(t model.AccountType, index int, amount decimal.Decimal) error {
	a, err := c.Account(t, index)
	if err != nil {
		return err
	}
	a.Deposit(amount)
	return nil
}

// WithdrawFrom withdraws amount from the account of type t at index, applying
// that account's policy. The customer's age is offered to the dispatch; only
// retirement accounts consult it.
func (c *Customer) WithdrawFrom(t model.AccountType, index int, amount decimal.Decimal) (account.Status, error) {
	a, err := c.Account(t, index)
	if err != nil {
		return 0, err
	}
	return account.Withdraw(a, amount, c.age), nil
}

// AllBalancesReport lists every account grouped by type in statement order,
// numbered from 1 within each type. Types without accounts are omitted.
func (c *Customer) AllBalancesReport() string {
	var groups []string
	for _, t := range model.AccountTypes() {
		accts := c.mustAccounts(t)
		if len(accts) == 0 {
			continue
		}
		entries := make([]string, len(accts))
		for i, a := range accts {
			entries[i] = fmt.Sprintf("%s #%d\n%s", t, i+1, a)
		}
		groups = append(groups, strings.Join(entries, "\n\n"))
	}
	return strings.Join(groups, "\n\n")
}

func (c *Customer) mustAccounts(t model.AccountType) []account.Account {
	accts, ok := c.accounts[t]
	if !ok {
		panic(fmt.Sprintf("customer: no account slot for type %q", t))
	}
	return accts
}
