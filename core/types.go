package core

import (
	"context"
	"time"
)

type (
	// Problem is one math-solving request: either a typed expression
	// or a PNG snapshot of handwritten input, never both.
	Problem struct {
		Expression string
		ImagePNG   []byte
	}

	// Solution is the structured answer returned by the recognition
	// service. Result holds the literal string "Error" when the input
	// was unsolvable or invalid.
	Solution struct {
		ID          string    `json:"id"`
		Expression  string    `json:"expression"`
		Result      string    `json:"result"`
		Explanation string    `json:"explanation"`
		Source      string    `json:"source"` // "ink" or "text"
		CreatedAt   time.Time `json:"createdAt"`
	}

	// SolutionStore defines the persistence layer for solved problems.
	SolutionStore interface {
		// List returns all saved solutions, newest first.
		List(ctx context.Context) ([]*Solution, error)

		// Get returns a single solution by its ID.
		Get(ctx context.Context, id string) (*Solution, error)

		// Save stores a solution, assigning an ID if it has none.
		Save(ctx context.Context, solution *Solution) error

		// Delete removes a solution.
		Delete(ctx context.Context, id string) error
	}
)

// ResultError is the literal Result value the recognition service
// returns for unsolvable or invalid input.
const ResultError = "Error"

// IsEmpty reports whether the problem carries no input at all.
func (p Problem) IsEmpty() bool {
	return p.Expression == "" && len(p.ImagePNG) == 0
}
