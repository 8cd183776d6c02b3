package constraint

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// bigM penalizes artificial variables heavily enough to dominate every
// realistic cost/feasibility magnitude this domain produces (capacities up
// to a few thousand, prices up to a few hundred).
const bigM = 1e7

const simplexEps = 1e-7

// maxSimplexIterations bounds the tableau pivot loop; every LP this module
// builds has at most a few dozen structural variables, so this is a
// generous backstop against a pivoting bug looping forever rather than a
// limit a real solve should ever approach.
const maxSimplexIterations = 2000

// colKind tags what a tableau column represents, needed to interpret the
// final basis back into variable values and to detect leftover artificials.
type colKind int

const (
	colStructural colKind = iota
	colSlack
	colSurplus
	colArtificial
)

// solveLP finds a feasible (and, if objective != nil, cost-minimizing)
// assignment for names given atoms, via a Big-M simplex over a gonum dense
// tableau. Returns ok=false if no feasible point exists.
func solveLP(names []string, lower map[string]float64, atoms []Atom, objective *LinExpr) (map[string]float64, bool) {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}
	numStructural := len(names)

	// Normalize: shift by lower bound, then flip sign so RHS >= 0.
	normalized := make([]Atom, len(atoms))
	for i, a := range atoms {
		rhs := a.RHS
		for n, c := range a.Terms {
			rhs -= c * lower[n]
		}
		op := a.Op
		terms := a.Terms
		if rhs < 0 {
			rhs = -rhs
			flipped := make(map[string]float64, len(terms))
			for n, c := range terms {
				flipped[n] = -c
			}
			terms = flipped
			switch op {
			case Le:
				op = Ge
			case Ge:
				op = Le
			}
		}
		normalized[i] = Atom{Terms: terms, Op: op, RHS: rhs}
	}

	// Count extra columns.
	extraCols := 0
	kinds := make([]colKind, numStructural) // colStructural is the zero value
	rowExtra := make([][2]int, len(normalized)) // [slack/surplus col, artificial col], -1 if absent
	for i, a := range normalized {
		rowExtra[i] = [2]int{-1, -1}
		switch a.Op {
		case Le:
			rowExtra[i][0] = numStructural + extraCols
			kinds = append(kinds, colSlack)
			extraCols++
		case Ge:
			rowExtra[i][0] = numStructural + extraCols
			kinds = append(kinds, colSurplus)
			extraCols++
			rowExtra[i][1] = numStructural + extraCols
			kinds = append(kinds, colArtificial)
			extraCols++
		case Eq:
			rowExtra[i][1] = numStructural + extraCols
			kinds = append(kinds, colArtificial)
			extraCols++
		}
	}

	totalCols := numStructural + extraCols
	m := len(normalized)
	tab := mat.NewDense(m+1, totalCols+1, nil)
	basis := make([]int, m)

	for i, a := range normalized {
		row := tab.RawRowView(i)
		for n, c := range a.Terms {
			row[idx[n]] += c
		}
		switch a.Op {
		case Le:
			row[rowExtra[i][0]] = 1
			basis[i] = rowExtra[i][0]
		case Ge:
			row[rowExtra[i][0]] = -1
			row[rowExtra[i][1]] = 1
			basis[i] = rowExtra[i][1]
		case Eq:
			row[rowExtra[i][1]] = 1
			basis[i] = rowExtra[i][1]
		}
		row[totalCols] = a.RHS
	}

	costRow := tab.RawRowView(m)
	if objective != nil {
		for n, c := range objective.Terms {
			if j, ok := idx[n]; ok {
				costRow[j] = c
			}
		}
	}
	for j, k := range kinds {
		if k == colArtificial {
			costRow[j] = bigM
		}
	}

	// Zero out the cost row's reduced costs for the current (artificial-
	// heavy) basis: subtract each basic row scaled by its own cost.
	for i, b := range basis {
		c := costRow[b]
		if c == 0 {
			continue
		}
		row := tab.RawRowView(i)
		for j := 0; j <= totalCols; j++ {
			costRow[j] -= c * row[j]
		}
	}

	for iter := 0; iter < maxSimplexIterations; iter++ {
		pivotCol := -1
		best := -simplexEps
		for j := 0; j < totalCols; j++ {
			if costRow[j] < best {
				best = costRow[j]
				pivotCol = j
			}
		}
		if pivotCol == -1 {
			break // optimal
		}

		pivotRow := -1
		bestRatio := math.Inf(1)
		for i := 0; i < m; i++ {
			v := tab.At(i, pivotCol)
			if v <= simplexEps {
				continue
			}
			ratio := tab.At(i, totalCols) / v
			if ratio < bestRatio-simplexEps || (ratio < bestRatio+simplexEps && (pivotRow == -1 || basis[i] < basis[pivotRow])) {
				bestRatio = ratio
				pivotRow = i
			}
		}
		if pivotRow == -1 {
			return nil, false // unbounded; not expected in this bounded domain
		}

		pivot(tab, pivotRow, pivotCol)
		basis[pivotRow] = pivotCol
	}

	for i, b := range basis {
		if kinds[b] == colArtificial && tab.At(i, totalCols) > 1e-5 {
			return nil, false
		}
	}

	model := make(map[string]float64, numStructural)
	for n := range idx {
		model[n] = lower[n]
	}
	for i, b := range basis {
		if b < numStructural {
			model[names[b]] = lower[names[b]] + tab.At(i, totalCols)
		}
	}
	return model, true
}

func pivot(t *mat.Dense, r, c int) {
	rows, cols := t.Dims()
	rowR := t.RawRowView(r)
	pv := rowR[c]
	for j := 0; j < cols; j++ {
		rowR[j] /= pv
	}
	for i := 0; i < rows; i++ {
		if i == r {
			continue
		}
		rowI := t.RawRowView(i)
		factor := rowI[c]
		if factor == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			rowI[j] -= factor * rowR[j]
		}
	}
}
