package solve

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mathpad/core"
)

// Mock solver for testing.
type mockSolver struct {
	lastProblem core.Problem
	solution    *core.Solution
	err         error
}

func (m *mockSolver) Solve(ctx context.Context, p core.Problem) (*core.Solution, error) {
	m.lastProblem = p
	if m.err != nil {
		return nil, m.err
	}
	s := *m.solution
	return &s, nil
}

// Mock store for testing.
type mockStore struct {
	saved   []*core.Solution
	saveErr error
}

func (m *mockStore) List(ctx context.Context) ([]*core.Solution, error) { return m.saved, nil }
func (m *mockStore) Get(ctx context.Context, id string) (*core.Solution, error) {
	return nil, fmt.Errorf("not found")
}
func (m *mockStore) Save(ctx context.Context, s *core.Solution) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	s.ID = "test-id"
	m.saved = append(m.saved, s)
	return nil
}
func (m *mockStore) Delete(ctx context.Context, id string) error { return nil }

func postSolve(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v2/solve", bytes.NewReader(data))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestHandleSolveText(t *testing.T) {
	s := &mockSolver{solution: &core.Solution{
		Expression: "2+2", Result: "4", Explanation: "Add.", Source: "text",
	}}
	store := &mockStore{}

	w := postSolve(t, HandleSolve(s, store), SolveRequest{Expression: "2+2"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var got core.Solution
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Result != "4" || got.ID != "test-id" {
		t.Errorf("solution = %+v, want result 4 with assigned ID", got)
	}
	if len(store.saved) != 1 {
		t.Errorf("saved %d solutions, want 1", len(store.saved))
	}
}

func TestHandleSolveImage(t *testing.T) {
	s := &mockSolver{solution: &core.Solution{
		Expression: "3*5", Result: "15", Source: "ink",
	}}
	store := &mockStore{}

	png := []byte{0x89, 'P', 'N', 'G'}
	w := postSolve(t, HandleSolve(s, store), SolveRequest{
		Image: base64.StdEncoding.EncodeToString(png),
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if !bytes.Equal(s.lastProblem.ImagePNG, png) {
		t.Error("solver should receive the decoded PNG bytes")
	}
}

func TestHandleSolveNothingToSolve(t *testing.T) {
	s := &mockSolver{}
	store := &mockStore{}

	w := postSolve(t, HandleSolve(s, store), SolveRequest{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(store.saved) != 0 {
		t.Error("nothing must be saved when there is nothing to solve")
	}
}

func TestHandleSolveBadImageEncoding(t *testing.T) {
	s := &mockSolver{}
	store := &mockStore{}

	w := postSolve(t, HandleSolve(s, store), SolveRequest{Image: "not-base64!!!"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandleSolveSolverFailure(t *testing.T) {
	s := &mockSolver{err: fmt.Errorf("model unavailable")}
	store := &mockStore{}

	w := postSolve(t, HandleSolve(s, store), SolveRequest{Expression: "2+2"})

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}

func TestHandleSolveInvalidBody(t *testing.T) {
	s := &mockSolver{}
	store := &mockStore{}

	req := httptest.NewRequest(http.MethodPost, "/api/v2/solve", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	HandleSolve(s, store)(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
