package cached

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"item-management/internal/item"
	"item-management/internal/item/repository"
	"item-management/pkg/log"
)

// implRepository decorates a Repository with an in-process LRU for single-item
// reads. Writes go straight through and refresh or evict the cached entry, so
// a read after a write always observes the stored state.
type implRepository struct {
	next  repository.Repository
	cache *lru.Cache[string, item.Item]
	l     log.Logger
}

// New wraps next with a read cache of the given size.
func New(next repository.Repository, size int, l log.Logger) (repository.Repository, error) {
	cache, err := lru.New[string, item.Item](size)
	if err != nil {
		return nil, err
	}
	return &implRepository{next: next, cache: cache, l: l}, nil
}

func (r *implRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (item.Item, error) {
	created, err := r.next.CreateItem(ctx, opt)
	if err != nil {
		return item.Item{}, err
	}
	r.cache.Add(created.ID, created)
	return created, nil
}

func (r *implRepository) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (item.Item, error) {
	if hit, ok := r.cache.Get(opt.ID); ok {
		return hit, nil
	}

	found, err := r.next.GetOneItem(ctx, opt)
	if err != nil {
		return item.Item{}, err
	}
	if found.ID != "" {
		r.cache.Add(found.ID, found)
	}
	return found, nil
}

func (r *implRepository) ListItems(ctx context.Context) ([]item.Item, error) {
	// Lists are always served from the store; only point reads are cached.
	return r.next.ListItems(ctx)
}

func (r *implRepository) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (item.Item, error) {
	updated, err := r.next.UpdateItem(ctx, opt)
	if err != nil {
		r.cache.Remove(opt.ID)
		return item.Item{}, err
	}
	if updated.ID == "" {
		r.cache.Remove(opt.ID)
		return item.Item{}, nil
	}
	r.cache.Add(updated.ID, updated)
	return updated, nil
}

func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	r.cache.Remove(id)
	return r.next.DeleteItem(ctx, id)
}
