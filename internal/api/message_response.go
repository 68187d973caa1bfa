// File: internal/api/message_response.go
package api

// swagger:model api.MessageResponse
type MessageResponse struct {
	Msg string `json:"msg" example:"Users created successfully."`
}

// Messages shared by the handlers (malformed bodies) and the services (failed validation).
const (
	MsgInvalidConferenceFields = "Invalid fields for conference."
	MsgUnknownConferenceFields = "Request contains invalid fields for conference."
	MsgInvalidUserFields       = "Invalid fields for users."
	MsgInvalidRole             = "Invalid role for request"
)

const MsgDatabaseError = "Database error."
