package usecase

import (
	"context"
	"time"

	"item-management/internal/item"
	repo "item-management/internal/item/repository"
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

// mockRepository is an in-memory Repository with optional error injection.
// Items are kept newest-first, matching the store's list ordering.
type mockRepository struct {
	items  []item.Item
	nextID int
	err    error
}

func newMockRepository() *mockRepository {
	return &mockRepository{nextID: 1}
}

func (m *mockRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	if m.err != nil {
		return item.Item{}, m.err
	}
	created := item.Item{
		ID:          string(rune('a' + m.nextID - 1)),
		Title:       opt.Title,
		Description: opt.Description,
		CreatedAt:   time.Now().UTC(),
	}
	m.nextID++
	m.items = append([]item.Item{created}, m.items...)
	return created, nil
}

func (m *mockRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	if m.err != nil {
		return item.Item{}, m.err
	}
	for _, it := range m.items {
		if it.ID == opt.ID {
			return it, nil
		}
	}
	return item.Item{}, nil
}

func (m *mockRepository) ListItems(ctx context.Context) ([]item.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]item.Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *mockRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	if m.err != nil {
		return item.Item{}, m.err
	}
	for i, it := range m.items {
		if it.ID == opt.ID {
			m.items[i].Title = opt.Title
			m.items[i].Description = opt.Description
			return m.items[i], nil
		}
	}
	return item.Item{}, nil
}

func (m *mockRepository) DeleteItem(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}
