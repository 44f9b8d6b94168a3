package pricing

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"pizzaria-storefront/models"
)

// Half-and-half pricing rules
const (
	HalfRuleHighest = "highest"
	HalfRuleAverage = "average"
)

// PricingConfig represents the pricing configuration structure
// Example file:
// {
//   "currency": "BRL",
//   "deliveryFees": {"delivery": "2.00"},
//   "halfAndHalfRule": "highest",
//   "chargeAdditionals": true
// }
type PricingConfig struct {
	Currency          string                     `json:"currency"`
	DeliveryFees      map[string]decimal.Decimal `json:"deliveryFees"`
	HalfAndHalfRule   string                     `json:"halfAndHalfRule"`
	ChargeAdditionals bool                       `json:"chargeAdditionals"`
}

// DefaultConfig returns the storefront's standard pricing: R$ 2,00 delivery fee,
// half-and-half priced by the more expensive half, add-ons charged on top
func DefaultConfig() PricingConfig {
	return PricingConfig{
		Currency: "BRL",
		DeliveryFees: map[string]decimal.Decimal{
			string(models.DeliveryDelivery): decimal.RequireFromString("2.00"),
		},
		HalfAndHalfRule:   HalfRuleHighest,
		ChargeAdditionals: true,
	}
}

// Engine resolves unit prices and fees
type Engine struct {
	config PricingConfig
}

// NewEngine creates a pricing engine from a JSON config file.
// An empty configPath yields the default configuration.
func NewEngine(configPath string) (*Engine, error) {
	if strings.TrimSpace(configPath) == "" {
		log.Printf("💰 PricingEngine: No config file given, using defaults")
		return NewEngineWithConfig(DefaultConfig())
	}

	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse pricing config: %w", err)
	}

	engine, err := NewEngineWithConfig(config)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ PricingEngine: Successfully loaded pricing config from %s", configPath)
	return engine, nil
}

// NewEngineWithConfig creates a pricing engine from an in-memory config
func NewEngineWithConfig(config PricingConfig) (*Engine, error) {
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}
	return &Engine{config: config}, nil
}

func validateConfig(config *PricingConfig) error {
	if config.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	for option, fee := range config.DeliveryFees {
		if !models.DeliveryOption(option).Valid() {
			return fmt.Errorf("unknown delivery option %q", option)
		}
		if fee.IsNegative() {
			return fmt.Errorf("delivery fee for %s cannot be negative", option)
		}
	}
	switch config.HalfAndHalfRule {
	case "":
		config.HalfAndHalfRule = HalfRuleHighest
	case HalfRuleHighest, HalfRuleAverage:
	default:
		return fmt.Errorf("unknown halfAndHalfRule %q", config.HalfAndHalfRule)
	}
	return nil
}

// Currency returns the configured currency code
func (e *Engine) Currency() string {
	return e.config.Currency
}

// DeliveryFee returns the fee charged for the given delivery option
func (e *Engine) DeliveryFee(option models.DeliveryOption) decimal.Decimal {
	if fee, ok := e.config.DeliveryFees[string(option)]; ok {
		return fee
	}
	return decimal.Zero
}

// HalfAndHalfPrice combines the prices of two halves
func (e *Engine) HalfAndHalfPrice(first, second decimal.Decimal) decimal.Decimal {
	if e.config.HalfAndHalfRule == HalfRuleAverage {
		return first.Add(second).Div(decimal.NewFromInt(2)).Round(2)
	}
	return decimal.Max(first, second)
}

// UnitPrice resolves the price of one unit of a cart candidate.
// Precedence: selected variation, then the half-and-half rule, then the flat price.
// Selected add-ons are added on top when ChargeAdditionals is set.
func (e *Engine) UnitPrice(candidate models.CartCandidate, variation *models.Variation) decimal.Decimal {
	var price decimal.Decimal
	switch {
	case variation != nil:
		price = variation.Price
	case candidate.IsHalfAndHalf && candidate.Half1 != nil && candidate.Half2 != nil:
		price = e.HalfAndHalfPrice(candidate.Half1.Price, candidate.Half2.Price)
	default:
		price = candidate.BasePrice()
	}

	if e.config.ChargeAdditionals {
		for _, additional := range candidate.SelectedAdditionals {
			price = price.Add(additional.Price)
		}
	}
	return price
}
