package main

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// ETFConfig is one named instrument in the comparison list. Only the return
// and dividend rates vary per ETF; capital, contribution, withholding and
// horizon come from the main investment parameters.
type ETFConfig struct {
	Name           string  `yaml:"name" json:"name"`
	AnnualReturn   float64 `yaml:"annual_return" json:"annual_return"`     // Price appreciation %/year
	AnnualDividend float64 `yaml:"annual_dividend" json:"annual_dividend"` // Dividend yield %/year
	Active         bool    `yaml:"active" json:"active"`                   // Include in comparison runs
	Color          string  `yaml:"color" json:"color"`                     // Chart line color (hex)
}

// GoalConfig holds the time-to-goal settings
type GoalConfig struct {
	TargetCapital float64 `yaml:"target_capital" json:"target_capital"`
}

// SensitivityConfig holds the return-rate shifts for scenario analysis,
// in percentage points (e.g. -5 means 5 points below the base rate)
type SensitivityConfig struct {
	Deltas []float64 `yaml:"deltas" json:"deltas"`
}

// Config is the full YAML configuration
type Config struct {
	Investment  SimulationParams  `yaml:"investment" json:"investment"`
	Goal        GoalConfig        `yaml:"goal" json:"goal"`
	Sensitivity SensitivityConfig `yaml:"sensitivity" json:"sensitivity"`
	ETFs        []ETFConfig       `yaml:"etfs" json:"etfs"`
}

// SensitivityDeltas returns the configured deltas, or the canonical
// pessimistic/base/optimistic set when none are configured.
func (c *Config) SensitivityDeltas() []float64 {
	if len(c.Sensitivity.Deltas) == 0 {
		return DefaultSensitivityDeltas
	}
	return c.Sensitivity.Deltas
}

// ActiveETFs returns the ETFs included in comparison runs, in config order.
func (c *Config) ActiveETFs() []ETFConfig {
	var active []ETFConfig
	for _, etf := range c.ETFs {
		if etf.Active {
			active = append(active, etf)
		}
	}
	return active
}

// Validate checks the numeric ranges of everything a run could use.
// It fails before any simulation work happens.
func (c *Config) Validate() error {
	if err := ValidateParams(c.Investment); err != nil {
		return err
	}
	if c.Goal.TargetCapital < 0 {
		return fmt.Errorf("%w: goal.target_capital must be >= 0, got %.2f", ErrInvalidParameter, c.Goal.TargetCapital)
	}
	for _, etf := range c.ETFs {
		if etf.AnnualReturn < 0 {
			return fmt.Errorf("%w: etf %q annual_return must be >= 0, got %.2f", ErrInvalidParameter, etf.Name, etf.AnnualReturn)
		}
		if etf.AnnualDividend < 0 {
			return fmt.Errorf("%w: etf %q annual_dividend must be >= 0, got %.2f", ErrInvalidParameter, etf.Name, etf.AnnualDividend)
		}
	}
	return nil
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	content := preprocessPercentages(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	// Add a header comment with instructions
	header := []byte(`# ETF Investment Simulator Configuration
# Generated by the simulator - feel free to edit manually
#
# VALUE FORMATS
#   Rates: percent units per year (10 = 10%; the % suffix is also accepted)
#   Money: values are in USD (e.g. 10000 = $10,000)
#
# RUN COMMANDS
#   ./goETFSimulator                    Summary + monthly projection
#   ./goETFSimulator -details           Full month-by-month table
#   ./goETFSimulator -goal              Time to reach goal.target_capital
#   ./goETFSimulator -compare           Compare the configured ETFs
#   ./goETFSimulator -sensitivity       Pessimistic/base/optimistic scenarios
#   ./goETFSimulator -html              Generate an HTML report
#   ./goETFSimulator -web               Interactive browser UI
#   ./goETFSimulator -help              Show all options

`)
	content := append(header, data...)
	return os.WriteFile(filename, content, 0644)
}

// LoadDefaultConfig loads the default configuration embedded in the binary.
// It handles percentage format (e.g. "10%" -> 10).
func LoadDefaultConfig() (*Config, error) {
	content := preprocessPercentages(defaultConfigYAML)

	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadConfigOrDefault loads the named config file, falling back to the
// embedded defaults when the file does not exist.
func loadConfigOrDefault(filename string) (*Config, error) {
	config, err := LoadConfig(filename)
	if os.IsNotExist(err) {
		return LoadDefaultConfig()
	}
	return config, err
}

// preprocessPercentages strips a trailing % from numeric values so that
// "withholding_rate: 30%" parses as 30. Rates are percent units either way;
// the suffix is just allowed for readability.
func preprocessPercentages(content string) string {
	// Match patterns like: key: 5% or key: 3.89%
	re := regexp.MustCompile(`(:\s*)(\d+\.?\d*)%`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		parts := re.FindStringSubmatch(match)
		if len(parts) >= 3 {
			if _, err := strconv.ParseFloat(parts[2], 64); err == nil {
				return parts[1] + parts[2]
			}
		}
		return match
	})
}
