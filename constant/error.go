package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrStoreNotPending
	ErrNotStoreOwner
	ErrInventoryExists
	ErrProductNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "error internal",
	ErrNotFound:         "data not found",
	ErrInvalidRequest:   "invalid request",
	ErrUnauthorize:      "unauthorize request",
	ErrForbidden:        "forbidden",
	ErrCredentialExists: "email or phone already exists",
	ErrInvalidPassword:  "password invalid",
	ErrStoreNotPending:  "store is not pending review",
	ErrNotStoreOwner:    "store does not belong to user",
	ErrInventoryExists:  "product already assigned to store",
	ErrProductNotFound:  "product not found",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusBadRequest,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnauthorize:      http.StatusUnauthorized,
	ErrForbidden:        http.StatusForbidden,
	ErrCredentialExists: http.StatusBadRequest,
	ErrInvalidPassword:  http.StatusBadRequest,
	ErrStoreNotPending:  http.StatusBadRequest,
	ErrNotStoreOwner:    http.StatusForbidden,
	ErrInventoryExists:  http.StatusBadRequest,
	ErrProductNotFound:  http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrUnauthorize:      "0004",
	ErrForbidden:        "0005",
	ErrCredentialExists: "0006",
	ErrInvalidPassword:  "0007",
	ErrStoreNotPending:  "0008",
	ErrNotStoreOwner:    "0009",
	ErrInventoryExists:  "0010",
	ErrProductNotFound:  "0011",
}
