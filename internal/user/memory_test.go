package user

import (
	"context"
	"errors"
	"testing"

	"github.com/bruno-soares-web/techmanage/internal/platform/timeutil"
)

func record(name, email, phone string) *User {
	birth, _ := timeutil.ParseDate("1990-05-20")
	return &User{
		FullName:  name,
		Email:     email,
		Phone:     phone,
		BirthDate: birth,
		UserType:  TypeViewer,
	}
}

func TestMemoryStoreAssignsSequentialIDs(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Save(ctx, record("A", "a@example.com", "+55 11 90000-0001"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.Save(ctx, record("B", "b@example.com", "+55 11 90000-0002"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestMemoryStoreFindAllInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	names := []string{"A", "B", "C"}
	for i, name := range names {
		u := record(name, name+"@example.com", "+55 11 90000-000"+string(rune('1'+i)))
		if _, err := store.Save(ctx, u); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := store.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	for i, name := range names {
		if all[i].FullName != name {
			t.Errorf("position %d: expected %s, got %s", i, name, all[i].FullName)
		}
	}
}

func TestMemoryStoreFindByIDMissing(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.FindByID(context.Background(), 42); !errors.Is(err, ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	saved, err := store.Save(ctx, record("A", "a@example.com", "+55 11 90000-0001"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.FindByID(ctx, saved.ID); !errors.Is(err, ErrMissing) {
		t.Fatalf("expected ErrMissing after delete, got %v", err)
	}
	if err := store.Delete(ctx, saved.ID); !errors.Is(err, ErrMissing) {
		t.Fatalf("expected ErrMissing on double delete, got %v", err)
	}

	all, err := store.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty store, got %d records", len(all))
	}
}

func TestMemoryStoreSaveExistingKeepsPosition(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a, _ := store.Save(ctx, record("A", "a@example.com", "+55 11 90000-0001"))
	if _, err := store.Save(ctx, record("B", "b@example.com", "+55 11 90000-0002")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a.FullName = "A updated"
	if _, err := store.Save(ctx, a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, _ := store.FindAll(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].FullName != "A updated" {
		t.Errorf("expected updated record to keep first position, got %s", all[0].FullName)
	}
}
