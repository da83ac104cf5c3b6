package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Title       string
	Description string
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
// A malformed ID is treated as not-found by implementations, never as an error.
type GetOneItemOptions struct {
	ID string
}

// UpdateItemOptions holds parameters for replacing an Item's mutable fields.
type UpdateItemOptions struct {
	ID          string
	Title       string
	Description string
}
