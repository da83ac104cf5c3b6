package item

import "time"

// --- Item Domain Model ---

// Item is the single entity managed by this service. ID and CreatedAt are
// assigned by the store at creation and never change afterwards.
type Item struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Title       string
	Description string
}

type UpdateItemInput struct {
	ID          string
	Title       string
	Description string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}
