package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Configuration Loading Tests
//
// Covers the embedded defaults, YAML parsing with the optional % suffix on
// rates, config-level validation and the save/load round trip.

// =============================================================================
// Embedded Defaults
// =============================================================================

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("embedded default config failed to load: %v", err)
	}

	if err := config.Validate(); err != nil {
		t.Fatalf("embedded default config failed validation: %v", err)
	}

	inv := config.Investment
	assertMoneyEquals(t, 10000, inv.InitialCapital, "initial capital")
	assertMoneyEquals(t, 500, inv.MonthlyContribution, "monthly contribution")
	assertMoneyEquals(t, 10, inv.AnnualReturnRate, "annual return")
	assertMoneyEquals(t, 2, inv.AnnualDividendRate, "annual dividends")
	assertMoneyEquals(t, 30, inv.WithholdingRate, "withholding")
	if inv.HorizonMonths != 60 {
		t.Errorf("expected 60-month horizon, got %d", inv.HorizonMonths)
	}

	assertMoneyEquals(t, 100000, config.Goal.TargetCapital, "goal target")

	if len(config.ETFs) == 0 {
		t.Fatal("default config should ship with ETFs to compare")
	}
	if len(config.ActiveETFs()) == 0 {
		t.Error("default config should have at least one active ETF")
	}
}

func TestConfig_SensitivityDeltasFallback(t *testing.T) {
	var config Config
	deltas := config.SensitivityDeltas()
	if len(deltas) != 3 || deltas[0] != -5 || deltas[1] != 0 || deltas[2] != 5 {
		t.Errorf("expected canonical deltas [-5 0 5], got %v", deltas)
	}

	config.Sensitivity.Deltas = []float64{-3, 3}
	if got := config.SensitivityDeltas(); len(got) != 2 || got[0] != -3 {
		t.Errorf("configured deltas should win, got %v", got)
	}
}

// =============================================================================
// YAML Parsing
// =============================================================================

func TestLoadConfig_PercentSuffix(t *testing.T) {
	// Rates may carry a % suffix for readability; the value is the same
	// percent-unit number either way.
	yaml := `
investment:
  initial_capital: 10000
  monthly_contribution: 500
  annual_return_rate: 10%
  annual_dividend_rate: 2.5%
  withholding_rate: 30%
  horizon_months: 60
goal:
  target_capital: 100000
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	assertMoneyEquals(t, 10, config.Investment.AnnualReturnRate, "annual return with % suffix")
	assertMoneyEquals(t, 2.5, config.Investment.AnnualDividendRate, "dividend rate with % suffix")
	assertMoneyEquals(t, 30, config.Investment.WithholdingRate, "withholding with % suffix")
}

func TestPreprocessPercentages(t *testing.T) {
	tests := []struct {
		input       string
		expected    string
		description string
	}{
		{"rate: 10%", "rate: 10", "integer percent"},
		{"rate: 3.89%", "rate: 3.89", "decimal percent"},
		{"rate: 10", "rate: 10", "bare number untouched"},
		{"name: \"100% equities\"", "name: \"100% equities\"", "quoted strings untouched"},
		{"a: 5%\nb: 2%", "a: 5\nb: 2", "multiple values"},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			if got := preprocessPercentages(tc.input); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	config, err := loadConfigOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("expected fallback to embedded defaults, got %v", err)
	}
	assertMoneyEquals(t, 10000, config.Investment.InitialCapital, "default initial capital")
}

// =============================================================================
// Config Validation
// =============================================================================

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		config, err := LoadDefaultConfig()
		if err != nil {
			t.Fatal(err)
		}
		return config
	}

	tests := []struct {
		mutate      func(*Config)
		wantErr     bool
		description string
	}{
		{func(c *Config) {}, false, "defaults are valid"},
		{func(c *Config) { c.Goal.TargetCapital = 0 }, false, "zero goal target"},
		{func(c *Config) { c.Goal.TargetCapital = -1 }, true, "negative goal target"},
		{func(c *Config) { c.Investment.HorizonMonths = 0 }, true, "invalid investment params"},
		{func(c *Config) { c.ETFs[0].AnnualReturn = -1 }, true, "negative ETF return"},
		{func(c *Config) { c.ETFs[0].AnnualDividend = -1 }, true, "negative ETF dividend"},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			config := valid()
			tc.mutate(config)

			err := config.Validate()

			if tc.wantErr && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// =============================================================================
// Save / Load Round Trip
// =============================================================================

func TestSaveConfig_RoundTrip(t *testing.T) {
	original, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	original.Investment.MonthlyContribution = 750
	original.Goal.TargetCapital = 250000

	path := filepath.Join(t.TempDir(), "saved.yaml")
	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reloading saved config failed: %v", err)
	}

	assertMoneyEquals(t, 750, loaded.Investment.MonthlyContribution, "edited contribution")
	assertMoneyEquals(t, 250000, loaded.Goal.TargetCapital, "edited goal target")
	if len(loaded.ETFs) != len(original.ETFs) {
		t.Errorf("expected %d ETFs after round trip, got %d", len(original.ETFs), len(loaded.ETFs))
	}
	for i, etf := range loaded.ETFs {
		if etf.Name != original.ETFs[i].Name || etf.Active != original.ETFs[i].Active {
			t.Errorf("ETF %d changed in round trip: %+v vs %+v", i, etf, original.ETFs[i])
		}
	}
}
