package cached

import (
	"context"
	"testing"
	"time"

	"item-management/internal/item"
	"item-management/internal/item/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// countingRepo records how many times each method hits the backing store.
type countingRepo struct {
	items    map[string]item.Item
	getCalls int
}

func newCountingRepo() *countingRepo {
	return &countingRepo{items: map[string]item.Item{}}
}

func (r *countingRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (item.Item, error) {
	created := item.Item{ID: "id-1", Title: opt.Title, Description: opt.Description, CreatedAt: time.Now()}
	r.items[created.ID] = created
	return created, nil
}

func (r *countingRepo) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (item.Item, error) {
	r.getCalls++
	return r.items[opt.ID], nil
}

func (r *countingRepo) ListItems(ctx context.Context) ([]item.Item, error) {
	out := []item.Item{}
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *countingRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (item.Item, error) {
	it, ok := r.items[opt.ID]
	if !ok {
		return item.Item{}, nil
	}
	it.Title = opt.Title
	it.Description = opt.Description
	r.items[opt.ID] = it
	return it, nil
}

func (r *countingRepo) DeleteItem(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func TestCachedRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("point reads served from cache after first hit", func(t *testing.T) {
		backing := newCountingRepo()
		repo, err := New(backing, 8, &mockLogger{})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		created, _ := repo.CreateItem(ctx, repository.CreateItemOptions{Title: "T", Description: "D"})

		for i := 0; i < 3; i++ {
			got, err := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: created.ID})
			if err != nil {
				t.Fatalf("GetOneItem: %v", err)
			}
			if got.Title != "T" {
				t.Fatalf("unexpected item: %+v", got)
			}
		}
		if backing.getCalls != 0 {
			t.Errorf("expected create to prime the cache, backing store saw %d gets", backing.getCalls)
		}
	})

	t.Run("update refreshes the cached entry", func(t *testing.T) {
		backing := newCountingRepo()
		repo, _ := New(backing, 8, &mockLogger{})

		created, _ := repo.CreateItem(ctx, repository.CreateItemOptions{Title: "old", Description: "old"})
		if _, err := repo.UpdateItem(ctx, repository.UpdateItemOptions{ID: created.ID, Title: "new", Description: "new"}); err != nil {
			t.Fatalf("UpdateItem: %v", err)
		}

		got, _ := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: created.ID})
		if got.Title != "new" {
			t.Errorf("cache served stale item: %+v", got)
		}
	})

	t.Run("delete evicts the cached entry", func(t *testing.T) {
		backing := newCountingRepo()
		repo, _ := New(backing, 8, &mockLogger{})

		created, _ := repo.CreateItem(ctx, repository.CreateItemOptions{Title: "T", Description: "D"})
		if err := repo.DeleteItem(ctx, created.ID); err != nil {
			t.Fatalf("DeleteItem: %v", err)
		}

		got, _ := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: created.ID})
		if got.ID != "" {
			t.Errorf("expected zero-value after delete, got %+v", got)
		}
		if backing.getCalls == 0 {
			t.Error("expected read-through to the backing store after eviction")
		}
	})

	t.Run("absent ids are not cached", func(t *testing.T) {
		backing := newCountingRepo()
		repo, _ := New(backing, 8, &mockLogger{})

		for i := 0; i < 2; i++ {
			if _, err := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: "missing"}); err != nil {
				t.Fatalf("GetOneItem: %v", err)
			}
		}
		if backing.getCalls != 2 {
			t.Errorf("expected misses to pass through every time, got %d calls", backing.getCalls)
		}
	})
}
