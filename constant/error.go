package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrUsernameReserved
	ErrForbidden
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "error internal",
	ErrNotFound:         "data not found",
	ErrInvalidRequest:   "invalid request",
	ErrUnauthorize:      "unauthorize request",
	ErrCredentialExists: "username or email already exists",
	ErrInvalidPassword:  "password invalid",
	ErrUsernameReserved: "username is reserved",
	ErrForbidden:        "forbidden",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusNotFound,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnauthorize:      http.StatusUnauthorized,
	ErrCredentialExists: http.StatusConflict,
	ErrInvalidPassword:  http.StatusBadRequest,
	ErrUsernameReserved: http.StatusConflict,
	ErrForbidden:        http.StatusForbidden,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrUnauthorize:      "0004",
	ErrCredentialExists: "0005",
	ErrInvalidPassword:  "0006",
	ErrUsernameReserved: "0007",
	ErrForbidden:        "0008",
}
