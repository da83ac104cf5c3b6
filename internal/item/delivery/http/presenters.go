package http

import (
	"time"

	"item-management/internal/item"
)

// --- Request DTOs ---

// Field presence is checked by the use case, not by binding tags: a missing
// field is a 400, while an unreadable body falls through to the generic 500.
type createReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Title:       r.Title,
		Description: r.Description,
	}
}

// ---

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		CreatedAt:   it.CreatedAt,
	}
}

func newListResp(out item.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}
