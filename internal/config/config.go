package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/nerdbank/teller/internal/account"
	"github.com/nerdbank/teller/internal/model"
)

// FileName is the conventional config file name.
const FileName = "teller.yaml"

var validate = validator.New()

// Config represents the top-level teller.yaml configuration.
type Config struct {
	Bank   BankConfig     `yaml:"bank"`
	Policy PolicyConfig   `yaml:"policy"`
	Seed   []SeedCustomer `yaml:"seed,omitempty" validate:"dive"`
}

// BankConfig identifies the bank in the teller banner.
type BankConfig struct {
	Name string `yaml:"name" validate:"required"`
}

// PolicyConfig holds the account rules. Money values are decimal strings.
type PolicyConfig struct {
	OverdraftFee           string `yaml:"overdraft_fee"`
	OverdraftLimit         string `yaml:"overdraft_limit"`
	RetirementAge          int    `yaml:"retirement_age" validate:"gte=0,lte=120"`
	MoneyMarketWithdrawals int    `yaml:"money_market_withdrawals" validate:"gte=0"`
}

// SeedCustomer is a customer created at startup.
type SeedCustomer struct {
	FirstName string        `yaml:"first_name" validate:"required"`
	LastName  string        `yaml:"last_name" validate:"required"`
	Age       int           `yaml:"age" validate:"gte=0,lte=120"`
	Accounts  []SeedAccount `yaml:"accounts,omitempty" validate:"dive"`
}

// SeedAccount is an account opened for a seed customer.
type SeedAccount struct {
	Type    string `yaml:"type" validate:"required"`
	Balance string `yaml:"balance" validate:"required"`
}

// Load reads a teller.yaml file from disk and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	// Omitted bank and policy keys keep their default values.
	def := Default()
	cfg := Config{Bank: def.Bank, Policy: def.Policy}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks struct constraints and that the policy parses.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Policy.Rules(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Rules converts the policy section into account rules.
func (p PolicyConfig) Rules() (account.Policy, error) {
	fee, err := parseMoney("overdraft_fee", p.OverdraftFee)
	if err != nil {
		return account.Policy{}, err
	}
	limit, err := parseMoney("overdraft_limit", p.OverdraftLimit)
	if err != nil {
		return account.Policy{}, err
	}
	return account.Policy{
		OverdraftFee:           fee,
		OverdraftLimit:         limit,
		RetirementAge:          p.RetirementAge,
		MoneyMarketWithdrawals: p.MoneyMarketWithdrawals,
	}, nil
}

func parseMoney(field, s string) (decimal.Decimal, error) {
	d, err := model.ParseAmount(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %w", field, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%s must not be negative, got %s", field, s)
	}
	return d, nil
}

// Default returns the standard bank configuration with the two demo customers.
func Default() *Config {
	return &Config{
		Bank: BankConfig{
			Name: "Bank of Nerds",
		},
		Policy: PolicyConfig{
			OverdraftFee:           "35.00",
			OverdraftLimit:         "500.00",
			RetirementAge:          67,
			MoneyMarketWithdrawals: 2,
		},
		Seed: []SeedCustomer{
			{
				FirstName: "Sherri",
				LastName:  "Perrson",
				Age:       83,
				Accounts: []SeedAccount{
					{Type: "Savings", Balance: "14356.99"},
					{Type: "Checking", Balance: "1504.32"},
					{Type: "401K", Balance: "43265.00"},
					{Type: "Money Market Fund", Balance: "3560.75"},
				},
			},
			{
				FirstName: "John",
				LastName:  "Doe",
				Age:       24,
				Accounts: []SeedAccount{
					{Type: "Savings", Balance: "25.42"},
				},
			},
		},
	}
}
