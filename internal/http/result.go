package httpapi

// Result wraps a successful response payload. Data is always present so
// list responses serialize an empty array rather than dropping the field.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// Status is a payload-less response, used for failures and plain
// acknowledgements.
type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func OkMessage[T any](message string, data T) Result[T] {
	return Result[T]{Success: true, Message: message, Data: data}
}

func OkStatus(message string) Status {
	return Status{Success: true, Message: message}
}

func Fail(message string) Status {
	return Status{Success: false, Message: message}
}
