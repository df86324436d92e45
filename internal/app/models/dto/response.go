package dto

// APIResponse is the success envelope: {"status": true, "content": {...}}.
type APIResponse struct {
	Status  bool     `json:"status"`
	Content *Content `json:"content,omitempty"`
}

// Content wraps response data with optional pagination meta.
type Content struct {
	Meta interface{} `json:"meta,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

// PageMeta describes pagination state for list responses.
type PageMeta struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
}

// AuthMeta carries the issued access token alongside auth responses.
type AuthMeta struct {
	AccessToken string `json:"access_token"`
}

// ErrorResponse is the failure envelope. Message is safe for clients;
// internal error detail stays in logs.
type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// NewDataResponse wraps data in the success envelope.
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{
		Status:  true,
		Content: &Content{Data: data},
	}
}

// NewPagedResponse wraps a list and its pagination meta in the success
// envelope.
func NewPagedResponse(meta PageMeta, data interface{}) APIResponse {
	return APIResponse{
		Status:  true,
		Content: &Content{Meta: meta, Data: data},
	}
}

// NewMetaResponse wraps data plus an arbitrary meta block (e.g. the access
// token after signup).
func NewMetaResponse(meta, data interface{}) APIResponse {
	return APIResponse{
		Status:  true,
		Content: &Content{Meta: meta, Data: data},
	}
}

// NewStatusResponse is the bare {"status": true} body used by deletions.
func NewStatusResponse() APIResponse {
	return APIResponse{Status: true}
}

// NewErrorResponse builds the failure envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Status:  false,
		Message: message,
	}
}
