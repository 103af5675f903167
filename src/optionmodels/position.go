package optionmodels

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Position is a named, ordered collection of legs on one underlying.
type Position struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Underlying StockSymbol `json:"underlying"`
	Legs       []Leg       `json:"legs"`
	OpenedAt   time.Time   `json:"opened_at"`
}

func NewPosition(name string, underlying StockSymbol, legs []Leg, openedAt time.Time) Position {
	return Position{
		ID:         uuid.New(),
		Name:       name,
		Underlying: underlying,
		Legs:       legs,
		OpenedAt:   openedAt,
	}
}

func (p Position) Validate() error {
	for i, leg := range p.Legs {
		if err := leg.Validate(); err != nil {
			return fmt.Errorf("Position.Validate: leg %d: %w", i, err)
		}
	}

	return nil
}

// NetDebitCredit is the sum of each leg's cost basis: positive for a net
// debit paid, negative for a net credit received.
func (p Position) NetDebitCredit() decimal.Decimal {
	total := decimal.Zero
	for _, leg := range p.Legs {
		total = total.Add(leg.CostBasis())
	}

	return total
}

// Symbols returns the contract symbol of each leg, in leg order.
func (p Position) Symbols() []OptionSymbol {
	symbols := make([]OptionSymbol, 0, len(p.Legs))
	for _, leg := range p.Legs {
		symbols = append(symbols, leg.Contract.Symbol)
	}

	return symbols
}
