package serverutils

type BaseResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type SuccessResponseBody[T any] struct {
	BaseResponse
	Data T `json:"data"`
}

type ErrorResponseBody struct {
	BaseResponse
	Errors map[string]string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) SuccessResponseBody[T] {
	return SuccessResponseBody[T]{
		BaseResponse: BaseResponse{
			Success: true,
			Code:    200,
			Message: message,
		},
		Data: data,
	}
}

func ErrorResponse(code int, message string) ErrorResponseBody {
	return ErrorResponseBody{
		BaseResponse: BaseResponse{
			Success: false,
			Code:    code,
			Message: message,
		},
	}
}
