package handler

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

// DetailResponse is the error body frontend clients key on for catalog
// lookups, e.g. {"detail": "Cake not found"}.
type DetailResponse struct {
	Detail string `json:"detail"`
}
