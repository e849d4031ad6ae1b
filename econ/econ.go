// Package econ contains the demand and fare model used to estimate the
// ridership and profitability of a route between two cities.
package econ

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the parameters of the model. Use Default to get a config with
// the reference values and override the fields as needed.
type Config struct {
	// Coeff and Power parametrize the gravity (Metcalfe) demand model where
	// the ridership between two cities is proportional to the product of
	// their population (in millions) raised to Power.
	Coeff float64 `yaml:"coeff"`
	Power float64 `yaml:"power"`

	// OperatingCostPerKm is the cost of carrying one passenger over one km.
	OperatingCostPerKm float64 `yaml:"operating_cost_per_km"`

	// MaxProfitPerPassenger caps the margin made on a single trip: the fare
	// charged never exceeds the operating cost plus this amount.
	MaxProfitPerPassenger float64 `yaml:"max_profit_per_passenger"`

	// BaseFarePerKm is the market fare per km, charged unless it exceeds the
	// capped fare.
	BaseFarePerKm float64 `yaml:"base_fare_per_km"`

	// DistanceFloor is the minimum distance used in the demand denominator so
	// that very short routes (or a city paired with itself) do not get an
	// unbounded ridership.
	DistanceFloor float64 `yaml:"distance_floor"`

	// ExcludeSelfPairs drops the routes from a city to itself from the route
	// statistics.
	ExcludeSelfPairs bool `yaml:"exclude_self_pairs"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Coeff:                 75000,
		Power:                 0.8,
		OperatingCostPerKm:    0.07,
		MaxProfitPerPassenger: 50,
		BaseFarePerKm:         0.135,
		DistanceFloor:         500,
	}
}

// Parse decodes a YAML document on top of the default configuration. Keys
// absent from the document keep their default value and unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Validate returns an error if one of the parameters is negative or not a
// finite number.
func (c Config) Validate() error {
	params := []struct {
		name  string
		value float64
	}{
		{"coeff", c.Coeff},
		{"power", c.Power},
		{"operating_cost_per_km", c.OperatingCostPerKm},
		{"max_profit_per_passenger", c.MaxProfitPerPassenger},
		{"base_fare_per_km", c.BaseFarePerKm},
		{"distance_floor", c.DistanceFloor},
	}
	for _, p := range params {
		if p.value < 0 || math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}
	if c.DistanceFloor == 0 {
		return fmt.Errorf("%w: distance_floor must be positive", ErrInvalidConfig)
	}
	return nil
}

// Estimate is the outcome of the model for one ordered pair of cities.
type Estimate struct {
	Ridership                 float64
	OperatingCostPerPassenger float64
	ProposedFare              float64
	MaxFare                   float64
	Fare                      float64
	ProfitPerPassenger        float64
	TotalProfit               float64
}

// Route estimates the ridership and profitability of the route of length
// distance between two cities of the given populations. Populations and
// distance are expected to be non-negative.
func (c Config) Route(originPop float64, destinationPop float64, distance float64) Estimate {
	d := math.Max(distance, c.DistanceFloor)
	denom := d * d
	ridership := 1e6 * c.Coeff *
		math.Pow(originPop/1e6, c.Power) *
		math.Pow(destinationPop/1e6, c.Power) / denom

	opCost := c.OperatingCostPerKm * distance
	maxFare := opCost + c.MaxProfitPerPassenger
	proposed := c.BaseFarePerKm * distance
	fare := math.Min(maxFare, proposed)
	profit := fare - opCost

	return Estimate{
		Ridership:                 ridership,
		OperatingCostPerPassenger: opCost,
		ProposedFare:              proposed,
		MaxFare:                   maxFare,
		Fare:                      fare,
		ProfitPerPassenger:        profit,
		TotalProfit:               profit * ridership,
	}
}
