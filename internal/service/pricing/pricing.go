package pricing

import (
	"fmt"
	"strings"

	"envios/internal/entities"
	"github.com/shopspring/decimal"
)

// Engine prices a shipment from its destination and weight.
// Rates are per ton.
type Engine struct {
	rates map[entities.Destination]decimal.Decimal
	order []entities.Destination
}

// Rate is the price per ton for one destination.
type Rate struct {
	Destination entities.Destination
	PerTon      decimal.Decimal
}

type Quote struct {
	Destination        entities.Destination
	WeightTons         decimal.Decimal
	Price              decimal.Decimal
	UnknownDestination bool
}

func New() *Engine {
	return &Engine{
		rates: map[entities.Destination]decimal.Decimal{
			entities.Lima:     decimal.NewFromInt(50),
			entities.Cusco:    decimal.NewFromInt(100),
			entities.Trujillo: decimal.NewFromInt(75),
			entities.Arequipa: decimal.NewFromInt(120),
		},
		order: []entities.Destination{
			entities.Lima,
			entities.Cusco,
			entities.Trujillo,
			entities.Arequipa,
		},
	}
}

func (e *Engine) Destinations() []entities.Destination {
	res := make([]entities.Destination, len(e.order))
	copy(res, e.order)
	return res
}

// Rates lists the rate table in picker order.
func (e *Engine) Rates() []Rate {
	res := make([]Rate, 0, len(e.order))
	for _, dest := range e.order {
		res = append(res, Rate{Destination: dest, PerTon: e.rates[dest]})
	}
	return res
}

func (e *Engine) BaseRate(destination entities.Destination) (decimal.Decimal, bool) {
	rate, ok := e.rates[destination]
	if !ok {
		return decimal.Zero, false
	}
	return rate, true
}

// ComputePrice never fails: an unknown destination prices at zero.
func (e *Engine) ComputePrice(destination entities.Destination, weightTons decimal.Decimal) decimal.Decimal {
	rate, _ := e.BaseRate(destination)
	return rate.Mul(weightTons)
}

// Quote is the live preview used while the user is still typing. Input that
// does not parse to a non-negative number counts as zero tons.
func (e *Engine) Quote(destination, rawWeight string) Quote {
	dest := entities.Destination(strings.TrimSpace(destination))

	weight, err := parseDecimal(rawWeight)
	if err != nil || weight.IsNegative() {
		weight = decimal.Zero
	}

	_, known := e.BaseRate(dest)
	return Quote{
		Destination:        dest,
		WeightTons:         weight,
		Price:              e.ComputePrice(dest, weight),
		UnknownDestination: !known,
	}
}

// ParseWeight is the strict parse used on submission: the value must be a
// positive number.
func (e *Engine) ParseWeight(rawWeight string) (decimal.Decimal, error) {
	weight, err := parseDecimal(rawWeight)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidWeight, rawWeight)
	}
	if !weight.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: must be greater than zero", ErrInvalidWeight)
	}
	return weight, nil
}

// ParseDestination accepts only destinations with a known rate.
func (e *Engine) ParseDestination(raw string) (entities.Destination, error) {
	dest := entities.Destination(strings.TrimSpace(raw))
	if _, ok := e.rates[dest]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDestination, raw)
	}
	return dest, nil
}

// Weights are typed by people: a longer input or a wider exponent is not a
// weight, and formatting such a value can take unbounded time.
const (
	maxWeightInput = 32
	maxExponent    = 18
)

func parseDecimal(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	// clients on Spanish locales type a decimal comma
	raw = strings.Replace(raw, ",", ".", 1)
	if raw == "" || len(raw) > maxWeightInput {
		return decimal.Zero, ErrInvalidWeight
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, ErrInvalidWeight
	}
	return d, nil
}
