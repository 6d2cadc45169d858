package domain

import "math"

// PriceRange is the symbolic price filter sent by clients.
type PriceRange string

const (
	// PriceRangeAny places no restriction on price.
	PriceRangeAny PriceRange = ""

	// PriceRangeLow selects prices from 0 up to 5000.
	PriceRangeLow PriceRange = "low"

	// PriceRangeMedium selects prices from 5000 up to 20000.
	PriceRangeMedium PriceRange = "medium"

	// PriceRangeHigh selects prices from 20000 upward.
	PriceRangeHigh PriceRange = "high"
)

// Band edges. A product priced exactly on an edge belongs to both neighbouring bands.
const (
	LowMediumEdge  = 5000
	MediumHighEdge = 20000
)

// ParsePriceRange matches a raw token exactly. Tokens outside the known set,
// including padded or re-cased ones, are treated as PriceRangeAny rather than
// rejected.
func ParsePriceRange(raw string) PriceRange {
	switch r := PriceRange(raw); r {
	case PriceRangeLow, PriceRangeMedium, PriceRangeHigh:
		return r
	default:
		return PriceRangeAny
	}
}

func (r PriceRange) String() string {
	return string(r)
}

// Band resolves the range into numeric bounds.
func (r PriceRange) Band() PriceBand {
	return ResolvePriceRange(r)
}

// PriceBand is an inclusive numeric interval [Min, Max]. Max is +Inf when the
// band has no upper bound.
type PriceBand struct {
	Min float64
	Max float64
}

// ResolvePriceRange maps a price range to its band. Unknown values resolve to
// the unrestricted band [0, +Inf).
func ResolvePriceRange(r PriceRange) PriceBand {
	switch r {
	case PriceRangeLow:
		return PriceBand{Min: 0, Max: LowMediumEdge}
	case PriceRangeMedium:
		return PriceBand{Min: LowMediumEdge, Max: MediumHighEdge}
	case PriceRangeHigh:
		return PriceBand{Min: MediumHighEdge, Max: math.Inf(1)}
	default:
		return PriceBand{Min: 0, Max: math.Inf(1)}
	}
}

// Bounded reports whether the band has a finite upper bound.
func (b PriceBand) Bounded() bool {
	return !math.IsInf(b.Max, 1)
}

// Contains reports whether price lies within the band, both ends inclusive.
func (b PriceBand) Contains(price float64) bool {
	return price >= b.Min && price <= b.Max
}
