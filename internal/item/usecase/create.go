package usecase

import (
	"context"

	"item-management/internal/item"
	repo "item-management/internal/item/repository"
)

// Create validates and persists a new Item. The repository assigns ID and
// CreatedAt.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	if input.Title == "" || input.Description == "" {
		return item.CreateItemOutput{}, item.ErrMissingFields
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: created}, nil
}
