package response

// ErrResp is the error envelope: {"error": "..."}.
// Internal error detail never goes in here, only fixed operation messages.
type ErrResp struct {
	Error string `json:"error"`
}

// MsgResp is the confirmation envelope: {"message": "..."}.
type MsgResp struct {
	Message string `json:"message"`
}
