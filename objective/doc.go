// Package objective builds and evaluates the total-system-cost expression
// of spec.md §4.5:
//
//	F = Σ_{i,j} flow_i_j · cost_R(i,j)
//
// F is bilinear in the solver's variables — flow_i_j and cost_R(i,j) (which
// itself is linear in edge flows and prices) are both decision variables —
// so it cannot be handed to constraint's simplex as a linear cost vector
// directly. Strategies that want to minimize F instead follow the
// Frank-Wolfe scheme classical to Beckmann-style traffic-assignment
// objectives: freeze cost_R(i,j) at its value in the current feasible
// model (LinearizeAt) and resolve the constraint context against that
// frozen linear proxy. S1 repeats this until the objective stops improving
// (at most a fixed number of rounds); S3 does a single such re-solve per
// price probe.
package objective
