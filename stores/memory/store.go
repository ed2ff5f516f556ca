// Package memory is the default, process-local solution store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"mathpad/core"
)

// memStore implements core.SolutionStore in memory.
type memStore struct {
	mu        sync.RWMutex
	solutions map[string]*core.Solution
}

// NewStore creates a new in-memory store.
func NewStore() *memStore {
	return &memStore{
		solutions: make(map[string]*core.Solution),
	}
}

// List returns all solutions, newest first.
func (s *memStore) List(ctx context.Context) ([]*core.Solution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*core.Solution, 0, len(s.solutions))
	for _, solution := range s.solutions {
		list = append(list, solution)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	logrus.Infof("Listed %d solutions", len(list))
	return list, nil
}

// Get returns a single solution by its ID.
func (s *memStore) Get(ctx context.Context, id string) (*core.Solution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	solution, ok := s.solutions[id]
	if !ok {
		logrus.WithField("solution_id", id).Warn("Solution not found")
		return nil, fmt.Errorf("solution with id %s not found", id)
	}
	return solution, nil
}

// Save stores a solution, assigning a ULID when it has no ID yet.
func (s *memStore) Save(ctx context.Context, solution *core.Solution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if solution.ID == "" {
		solution.ID = ulid.Make().String()
	}
	s.solutions[solution.ID] = solution

	logrus.WithFields(logrus.Fields{
		"solution_id": solution.ID,
		"source":      solution.Source,
	}).Info("Solution saved")
	return nil
}

// Delete removes a solution.
func (s *memStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.solutions[id]; !ok {
		return fmt.Errorf("solution with id %s not found", id)
	}
	delete(s.solutions, id)

	logrus.WithField("solution_id", id).Info("Solution deleted")
	return nil
}
