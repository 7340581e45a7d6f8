package types

// APIResponse is the envelope every endpoint answers with
type APIResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Success builds a successful response envelope
func Success(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Error builds a failed response envelope
func Error(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

// ErrorWithFields builds a failed response carrying field-scoped messages
func ErrorWithFields(message string, errors map[string][]string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}
