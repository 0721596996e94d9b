package serverutils

// BaseResponse is the envelope for transport-level failures that never reach
// a feature service.
type BaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ErrorResponse(message string) BaseResponse {
	return BaseResponse{Success: false, Message: message}
}
