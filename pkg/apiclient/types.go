package apiclient

import "time"

// Item mirrors the API's wire shape.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type itemPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type msgBody struct {
	Message string `json:"message"`
}

type errBody struct {
	Error string `json:"error"`
}
