// Package bank is the customer registry: it creates customers, hands out their
// ids, opens accounts and renders statements.
package bank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/nerdbank/teller/internal/account"
	"github.com/nerdbank/teller/internal/config"
	"github.com/nerdbank/teller/internal/customer"
	"github.com/nerdbank/teller/internal/id"
	"github.com/nerdbank/teller/internal/log"
	"github.com/nerdbank/teller/internal/model"
)

var validate = validator.New()

type registration struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Age       int    `validate:"gte=0,lte=120"`
}

// Bank holds customers in registration order. It is not safe for concurrent use.
type Bank struct {
	name      string
	customers []*customer.Customer
	ids       id.Sequence
	policy    account.Policy
}

// New creates an empty bank whose new accounts follow policy.
func New(name string, policy account.Policy) *Bank {
	return &Bank{name: name, policy: policy}
}

// FromConfig creates a bank with the configured policy and seed customers.
func FromConfig(cfg *config.Config) (*Bank, error) {
	policy, err := cfg.Policy.Rules()
	if err != nil {
		return nil, fmt.Errorf("loading policy: %w", err)
	}
	b := New(cfg.Bank.Name, policy)
	if err := b.Seed(cfg.Seed); err != nil {
		return nil, err
	}
	return b, nil
}

// Name returns the bank's display name.
func (b *Bank) Name() string { return b.name }

// Policy returns the rules applied to accounts opened by this bank.
func (b *Bank) Policy() account.Policy { return b.policy }

// RegisterCustomer validates and appends a new customer. Rejected registrations
// do not consume an id.
func (b *Bank) RegisterCustomer(firstName, lastName string, age int) (*customer.Customer, error) {
	reg := registration{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Age:       age,
	}
	if err := validate.Struct(reg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCustomer, describe(err))
	}

	c := customer.New(b.ids.Next(), reg.FirstName, reg.LastName, reg.Age)
	b.customers = append(b.customers, c)
	log.Info("registered customer", "customer_id", c.ID(), "age", c.Age())
	return c, nil
}

// Customers returns every customer in registration order.
func (b *Bank) Customers() []*customer.Customer {
	return b.customers
}

// Select returns the customer at the 1-based position.
func (b *Bank) Select(position int) (*customer.Customer, error) {
	if position < 1 || position > len(b.customers) {
		return nil, fmt.Errorf("position %d: %w", position, ErrNotFound)
	}
	return b.customers[position-1], nil
}

// CreateAccount opens an account of type t for c with an initial balance.
func (b *Bank) CreateAccount(c *customer.Customer, t model.AccountType, initial decimal.Decimal) (account.Account, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAccountType, t)
	}
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativeAmount, initial)
	}
	a, err := account.New(t, initial, b.policy)
	if err != nil {
		return nil, err
	}
	c.AddAccount(t, a)
	log.Info("opened account", "customer_id", c.ID(), "type", string(t), "balance", a.Balance().StringFixed(model.Cents))
	return a, nil
}

// Seed registers the given customers and opens their accounts.
func (b *Bank) Seed(seeds []config.SeedCustomer) error {
	for i, s := range seeds {
		c, err := b.RegisterCustomer(s.FirstName, s.LastName, s.Age)
		if err != nil {
			return fmt.Errorf("seed customer %d: %w", i+1, err)
		}
		for j, sa := range s.Accounts {
			t, ok := model.ParseAccountType(sa.Type)
			if !ok {
				return fmt.Errorf("seed customer %d account %d: %w: %q", i+1, j+1, ErrInvalidAccountType, sa.Type)
			}
			balance, err := model.ParseAmount(sa.Balance)
			if err != nil {
				return fmt.Errorf("seed customer %d account %d: %w", i+1, j+1, err)
			}
			if _, err := b.CreateAccount(c, t, balance); err != nil {
				return fmt.Errorf("seed customer %d account %d: %w", i+1, j+1, err)
			}
		}
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s %s", fieldName(fe.Field()), fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldName(field string) string {
	switch field {
	case "FirstName":
		return "first name"
	case "LastName":
		return "last name"
	default:
		return strings.ToLower(field)
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
