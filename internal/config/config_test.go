package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdbank/teller/internal/model"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Policy.OverdraftFee = "25.00"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Bank.Name, got.Bank.Name)
	assert.Equal(t, cfg.Policy, got.Policy)
	require.Len(t, got.Seed, 2)
	assert.Equal(t, "Sherri", got.Seed[0].FirstName)
	assert.Equal(t, 83, got.Seed[0].Age)
	require.Len(t, got.Seed[0].Accounts, 4)
	assert.Equal(t, "14356.99", got.Seed[0].Accounts[0].Balance)
	require.Len(t, got.Seed[1].Accounts, 1)
	assert.Equal(t, "Savings", got.Seed[1].Accounts[0].Type)
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	rules, err := cfg.Policy.Rules()
	require.NoError(t, err)
	assert.Equal(t, "35.00", rules.OverdraftFee.StringFixed(2))
	assert.Equal(t, "500.00", rules.OverdraftLimit.StringFixed(2))
	assert.Equal(t, 67, rules.RetirementAge)
	assert.Equal(t, 2, rules.MoneyMarketWithdrawals)

	assert.Equal(t, "Doe", cfg.Seed[1].LastName)
	assert.Equal(t, 24, cfg.Seed[1].Age)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Bank of Nerds")
	assert.Contains(t, contents, "overdraft_fee: \"35.00\"")
	assert.Contains(t, contents, "retirement_age: 67")
	assert.Contains(t, contents, "first_name: Sherri")
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad fee", func(c *Config) { c.Policy.OverdraftFee = "lots" }},
		{"negative limit", func(c *Config) { c.Policy.OverdraftLimit = "-1" }},
		{"retirement age too high", func(c *Config) { c.Policy.RetirementAge = 200 }},
		{"negative cap", func(c *Config) { c.Policy.MoneyMarketWithdrawals = -1 }},
		{"missing bank name", func(c *Config) { c.Bank.Name = "" }},
		{"seed without name", func(c *Config) { c.Seed[0].FirstName = "" }},
		{"seed age", func(c *Config) { c.Seed[1].Age = 121 }},
		{"seed account type missing", func(c *Config) { c.Seed[1].Accounts[0].Type = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("bank:\n  name: Test\npolicy:\n  overdraft_fee: abc\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overdraft_fee")
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "policy:\n  overdraft_fee: \"20.00\"\n  overdraft_limit: \"100.00\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Bank of Nerds", cfg.Bank.Name)
	assert.Equal(t, "20.00", cfg.Policy.OverdraftFee)
	assert.Equal(t, "100.00", cfg.Policy.OverdraftLimit)
	assert.Equal(t, 67, cfg.Policy.RetirementAge)
	assert.Equal(t, 2, cfg.Policy.MoneyMarketWithdrawals)
	assert.Empty(t, cfg.Seed)
}

func TestLoad_ExplicitZeroOverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("policy:\n  money_market_withdrawals: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Policy.MoneyMarketWithdrawals)
	assert.Equal(t, 67, cfg.Policy.RetirementAge)
}

func TestValidate_AmountOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.Policy.OverdraftLimit = "1e50000000"

	err := cfg.Validate()
	assert.ErrorIs(t, err, model.ErrAmountOutOfRange)
}
