package errors

import "github.com/storescout/storescout/constant"

type CustomError struct {
	errType constant.ErrorType
	detail  string
}

// Error returns the detail message when one was attached, otherwise the
// canonical message for the error type.
func (c CustomError) Error() string {
	if c.detail != "" {
		return c.detail
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// WithDetail replaces the canonical message while keeping the code and
// HTTP status of the error type. Used to surface which request field
// failed validation.
func (c CustomError) WithDetail(detail string) CustomError {
	c.detail = detail
	return c
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}
