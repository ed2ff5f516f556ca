// Package solve exposes the one-shot solve endpoint: an encoded
// handwriting snapshot or a typed expression in, a structured
// solution out.
package solve

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"

	"mathpad/core"
	"mathpad/solver"
)

type (
	// SolveRequest carries exactly one kind of input. Image is a
	// base64-encoded PNG snapshot of the drawing surface.
	SolveRequest struct {
		Image      string `json:"image,omitempty"`
		Expression string `json:"expression,omitempty"`
	}
)

// HandleSolve invokes the recognition service and persists the
// returned solution. A request with no input at all gets a 400
// "nothing to solve": that mirrors the drawing surface's no-content
// rule and must be handled before recognition is ever invoked.
func HandleSolve(s solver.Solver, store core.SolutionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithField("error", err).Error("Failed to decode solve request")
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		problem := core.Problem{Expression: req.Expression}
		if req.Image != "" {
			img, err := base64.StdEncoding.DecodeString(req.Image)
			if err != nil {
				logrus.WithField("error", err).Error("Failed to decode snapshot image")
				http.Error(w, "Invalid image encoding", http.StatusBadRequest)
				return
			}
			problem.ImagePNG = img
		}

		if problem.IsEmpty() {
			http.Error(w, "Nothing to solve", http.StatusBadRequest)
			return
		}

		solution, err := s.Solve(r.Context(), problem)
		if err != nil {
			logrus.WithField("error", err).Error("Solver request failed")
			http.Error(w, "Failed to solve problem", http.StatusBadGateway)
			return
		}
		solution.CreatedAt = time.Now()

		if err := store.Save(r.Context(), solution); err != nil {
			logrus.WithField("error", err).Error("Failed to save solution")
			http.Error(w, "Failed to save solution", http.StatusInternalServerError)
			return
		}

		logrus.WithFields(logrus.Fields{
			"solution_id": solution.ID,
			"source":      solution.Source,
			"result":      solution.Result,
		}).Info("Problem solved")

		render.JSON(w, r, solution)
	}
}
