package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/variant-catalog/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
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

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// AsCustomError unwraps err into a CustomError. Anything else becomes ErrInternal
// and ok is false.
func AsCustomError(err error) (ce CustomError, ok bool) {
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return SetCustomError(constant.ErrInternal), false
}

// IsType reports whether err carries the given ErrorType.
func IsType(err error, errorType constant.ErrorType) bool {
	ce, ok := AsCustomError(err)
	return ok && ce.errType == errorType
}
