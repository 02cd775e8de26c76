package dto

// Response is the envelope every endpoint returns: a status discriminator
// plus either data (success) or a human-readable message (error).
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success wraps payload data in a success envelope.
func Success(data any) Response {
	return Response{Status: "success", Data: data}
}

// Error wraps a user-facing message in an error envelope. No internal
// storage error detail ever goes through here.
func Error(message string) Response {
	return Response{Status: "error", Message: message}
}
