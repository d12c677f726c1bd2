// Package analysis holds the pure, stateless calculations behind the two
// reporting views: stock movement estimates and sales margin simulations.
// Nothing here touches the record store; persistence happens in the use cases.
package analysis

// StockLevel classifies an estimated stock quantity.
type StockLevel string

const (
	StockLevelHigh     StockLevel = "alto"
	StockLevelAdequate StockLevel = "adequado"
	StockLevelCritical StockLevel = "critico"
)

// Stock quantities above this many pairs are considered high.
const StockHighThresholdPairs = 50

// StockEstimate is the result of a quick movement simulation. It carries no
// side effects: registering an actual movement is a separate, independent
// write path that uses a manually entered new total.
type StockEstimate struct {
	Previous  int        `json:"estoqueAnterior"`
	Sold      int        `json:"vendida"`
	Received  int        `json:"recebida"`
	Estimated int        `json:"estoqueFinalEstimado"`
	Level     StockLevel `json:"status"`
}

// EstimateStock projects the resulting quantity after selling and receiving
// the given amounts. The estimate may go negative; classification then flags
// it as critical.
func EstimateStock(previous, sold, received int) StockEstimate {
	estimated := previous - sold + received

	return StockEstimate{
		Previous:  previous,
		Sold:      sold,
		Received:  received,
		Estimated: estimated,
		Level:     ClassifyStock(estimated),
	}
}

// ClassifyStock maps a quantity to a stock level: above 50 pairs is high,
// anything positive is adequate, zero or negative is critical.
func ClassifyStock(quantity int) StockLevel {
	switch {
	case quantity > StockHighThresholdPairs:
		return StockLevelHigh
	case quantity > 0:
		return StockLevelAdequate
	default:
		return StockLevelCritical
	}
}
