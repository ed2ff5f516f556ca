// Package solutions exposes the solve-history endpoints.
package solutions

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"

	"mathpad/core"
)

// HandleList lists all saved solutions, newest first.
func HandleList(store core.SolutionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to list solutions")
			http.Error(w, "Failed to list solutions", http.StatusInternalServerError)
			return
		}

		if list == nil {
			list = []*core.Solution{}
		}
		render.JSON(w, r, list)
	}
}

// HandleGet retrieves a single solution.
func HandleGet(store core.SolutionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		solution, err := store.Get(r.Context(), id)
		if err != nil {
			logrus.WithFields(logrus.Fields{"solution_id": id, "error": err}).
				Warn("Solution not found")
			http.Error(w, "Solution not found", http.StatusNotFound)
			return
		}

		render.JSON(w, r, solution)
	}
}

// HandleDelete removes a solution from the history.
func HandleDelete(store core.SolutionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := store.Delete(r.Context(), id); err != nil {
			logrus.WithFields(logrus.Fields{"solution_id": id, "error": err}).
				Error("Failed to delete solution")
			http.Error(w, "Failed to delete solution", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
