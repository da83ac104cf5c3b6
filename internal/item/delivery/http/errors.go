package http

import (
	"net/http"

	"item-management/internal/item"
)

// Fixed user-facing messages. Internal error detail stays in the logs.
const (
	msgMissingFields = "Title and description are required"
	msgNotFound      = "Item not found"
	msgDeleted       = "Item deleted successfully"

	msgFailedToList   = "Failed to fetch items"
	msgFailedToCreate = "Failed to create item"
	msgFailedToFetch  = "Failed to fetch item"
	msgFailedToUpdate = "Failed to update item"
	msgFailedToDelete = "Failed to delete item"
)

// mapError classifies a use-case error into an HTTP status and a fixed
// message. Anything unrecognized, driver failures included, collapses to a
// 500 with the operation's generic message.
func (h *handler) mapError(err error, fallback string) (int, string) {
	switch err {
	case item.ErrMissingFields:
		return http.StatusBadRequest, msgMissingFields
	case item.ErrItemNotFound:
		return http.StatusNotFound, msgNotFound
	default:
		return http.StatusInternalServerError, fallback
	}
}
