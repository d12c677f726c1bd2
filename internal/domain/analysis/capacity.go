package analysis

// Store capacity thresholds, in pairs of shoes. The legacy screens used two
// different rules (a binary >5000 filter and a three-tier card label); both
// are kept, reconciled around the same named constants.
const (
	CapacityLargePairs = 5000
	CapacityMegaPairs  = 10000
)

// CapacityTier classifies a store by its maximum capacity.
type CapacityTier string

const (
	CapacityTierMega  CapacityTier = "mega"
	CapacityTierLarge CapacityTier = "grande"
	CapacityTierSmall CapacityTier = "pequena"
)

// ClassifyCapacity returns the three-tier label for a store capacity.
func ClassifyCapacity(pairs int) CapacityTier {
	switch {
	case pairs > CapacityMegaPairs:
		return CapacityTierMega
	case pairs > CapacityLargePairs:
		return CapacityTierLarge
	default:
		return CapacityTierSmall
	}
}

// IsLargeCapacity is the binary rule used by list filters: everything above
// the large threshold counts as large, mega included.
func IsLargeCapacity(pairs int) bool {
	return pairs > CapacityLargePairs
}
