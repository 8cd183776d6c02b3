package constraint

// Tolerances and defaults from spec.md's constraint section (§4.4).
const (
	TolFlow  = 1.0
	TolCost  = 5.0
	PriceMin = 5.0
)
