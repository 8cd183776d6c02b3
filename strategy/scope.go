package strategy

// scopeFullWardrop asserts C1, C2, C3, and the C4/C5 Wardrop gates for g's
// current state into the current frame of in.Ctx. Call this inside a
// Push/Pop pair.
func scopeFullWardrop(in Input) error {
	in.Ctx.Assert(buildAmbientConstraints(in)...)
	gates, err := buildGates(in)
	if err != nil {
		return err
	}
	in.Ctx.AssertGate(gates...)
	return nil
}

// scopeFallback asserts C1, C2, C3, and the unconditional fallback C4
// (spec.md §4.4 "Fallback C3/C4"), dropping the Implies gate and C5
// entirely. No strategy in this package calls it: S1-S5 report UNSAT from
// the full Wardrop system without retrying under the fallback.
func scopeFallback(in Input) error {
	in.Ctx.Assert(buildAmbientConstraints(in)...)
	gates, err := buildGates(in)
	if err != nil {
		return err
	}
	in.Ctx.Assert(fallbackAtoms(gates)...)
	return nil
}
