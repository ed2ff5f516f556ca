// Package solver talks to the external recognition and computation
// service. It accepts either an encoded snapshot of handwritten input
// or a plain-text expression, and returns a structured solution:
// the recognized expression, the computed result, and a step-by-step
// explanation.
package solver

import (
	"context"

	"mathpad/core"
)

// Solver recognizes and computes a math problem. Implementations must
// honor ctx cancellation: the solver call is the only asynchronous,
// cancellable unit in the solve pipeline.
type Solver interface {
	Solve(ctx context.Context, problem core.Problem) (*core.Solution, error)
}
