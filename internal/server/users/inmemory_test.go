package users

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/authsvc/internal/common"
)

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	created, err := r.Create(ctx, &User{ID: "id-1", UserName: "alice", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got, err := r.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.ID != "id-1" || got.PasswordHash != "h" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestInMemoryRepository_CreateDuplicateUsername(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := r.Create(ctx, &User{ID: "id-1", UserName: "alice"}); err != nil {
		t.Fatalf("first Create error: %v", err)
	}

	_, err := r.Create(ctx, &User{ID: "id-2", UserName: "alice"})
	if !errors.Is(err, common.ErrorDuplicateUsername) {
		t.Fatalf("want ErrorDuplicateUsername, got %v", err)
	}
}

func TestInMemoryRepository_UsernameIsCaseSensitive(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := r.Create(ctx, &User{ID: "id-1", UserName: "alice"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := r.Create(ctx, &User{ID: "id-2", UserName: "Alice"}); err != nil {
		t.Fatalf("Create with different case should succeed, got %v", err)
	}
}

func TestInMemoryRepository_DeleteClearsBothIndexes(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := r.Create(ctx, &User{ID: "id-1", UserName: "alice"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := r.Delete(ctx, "id-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	if _, err := r.GetByUsername(ctx, "alice"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound after delete, got %v", err)
	}

	// username is free again
	if _, err := r.Create(ctx, &User{ID: "id-2", UserName: "alice"}); err != nil {
		t.Fatalf("re-Create after delete error: %v", err)
	}
}

func TestInMemoryRepository_DeleteAbsentID(t *testing.T) {
	r := NewInMemoryRepository()

	err := r.Delete(context.Background(), "no-such-id")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestInMemoryRepository_ConcurrentCreateSameUsername(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = r.Create(ctx, &User{ID: fmt.Sprintf("id-%d", i), UserName: "alice"})
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrorDuplicateUsername):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if ok != 1 || dup != n-1 {
		t.Fatalf("want exactly 1 success and %d duplicates, got %d/%d", n-1, ok, dup)
	}
}
