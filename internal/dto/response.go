package dto

// APIResponse is the envelope for successful responses.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorDetail tells the client what failed and whether retrying may help.
type ErrorDetail struct {
	Code      string `json:"code"`
	Retryable bool   `json:"retryable"`
}

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   ErrorDetail `json:"error"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// NewErrorResponse builds a failure envelope.
func NewErrorResponse(message, code string, retryable bool) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
		Error:   ErrorDetail{Code: code, Retryable: retryable},
	}
}
