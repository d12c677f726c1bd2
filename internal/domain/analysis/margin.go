package analysis

import "github.com/pkg/errors"

// MarginPerformance classifies a margin rate.
type MarginPerformance string

const (
	MarginExcellent MarginPerformance = "excelente"
	MarginGood      MarginPerformance = "boa"
	MarginAttention MarginPerformance = "atencao"
)

// Margin rate thresholds, in percent.
const (
	MarginExcellentRate = 50.0
	MarginGoodRate      = 30.0
)

var (
	// ErrCostExceedsPrice is returned when the unit cost is not below the sale price.
	ErrCostExceedsPrice = errors.New("unit cost must be below the sale price")
	// ErrInvalidUnits is returned when the simulated units sold is not positive.
	ErrInvalidUnits = errors.New("units sold must be positive")
)

// MarginBreakdown is the result of a margin simulation for one SKU.
type MarginBreakdown struct {
	SalePrice   float64           `json:"precoVenda"`
	UnitCost    float64           `json:"custoUnitario"`
	UnitsSold   int               `json:"unidadesVendidas"`
	Revenue     float64           `json:"receitaTotal"`
	TotalCost   float64           `json:"custoTotal"`
	GrossMargin float64           `json:"margemBruta"`
	MarginRate  float64           `json:"taxaMargem"` // Percentage of revenue.
	Performance MarginPerformance `json:"desempenho"`
}

// ComputeMargin simulates selling the given units at the given price and cost.
// The sale price must be strictly above the unit cost and units must be
// positive, otherwise the simulation is rejected.
func ComputeMargin(price, cost float64, units int) (MarginBreakdown, error) {
	if units <= 0 {
		return MarginBreakdown{}, ErrInvalidUnits
	}
	if cost >= price {
		return MarginBreakdown{}, ErrCostExceedsPrice
	}

	revenue := price * float64(units)
	totalCost := cost * float64(units)
	margin := revenue - totalCost
	rate := margin / revenue * 100

	return MarginBreakdown{
		SalePrice:   price,
		UnitCost:    cost,
		UnitsSold:   units,
		Revenue:     revenue,
		TotalCost:   totalCost,
		GrossMargin: margin,
		MarginRate:  rate,
		Performance: ClassifyMargin(rate),
	}, nil
}

// ClassifyMargin maps a margin rate (percent) to a performance label.
func ClassifyMargin(rate float64) MarginPerformance {
	switch {
	case rate >= MarginExcellentRate:
		return MarginExcellent
	case rate >= MarginGoodRate:
		return MarginGood
	default:
		return MarginAttention
	}
}
