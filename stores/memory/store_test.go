package memory

import (
	"context"
	"testing"
	"time"

	"mathpad/core"
)

func TestSaveAssignsID(t *testing.T) {
	store := NewStore()

	s := &core.Solution{Result: "4", CreatedAt: time.Now()}
	if err := store.Save(context.Background(), s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if s.ID == "" {
		t.Error("Save should assign an ID")
	}

	got, err := store.Get(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Result != "4" {
		t.Errorf("Result = %q, want 4", got.Result)
	}
}

func TestListNewestFirst(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 3; i++ {
		s := &core.Solution{
			Result:    string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Save(ctx, s); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Errorf("list not sorted newest first at index %d", i)
		}
	}
}

func TestGetMissing(t *testing.T) {
	store := NewStore()

	if _, err := store.Get(context.Background(), "nope"); err == nil {
		t.Error("expected an error for a missing solution")
	}
}

func TestDelete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	s := &core.Solution{Result: "4"}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Delete(ctx, s.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, s.ID); err == nil {
		t.Error("solution should be gone after delete")
	}
	if err := store.Delete(ctx, s.ID); err == nil {
		t.Error("deleting twice should report not found")
	}
}
