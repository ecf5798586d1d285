package pkg

// AppError is the HTTP-facing error envelope produced by handler error
// mappers. Cause is kept for logging only and never serialized.
type AppError struct {
	Code       string
	Message    string
	Cause      error
	HTTPStatus int
}

// HTTPError is the JSON body returned to clients.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, cause error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
