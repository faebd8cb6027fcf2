package validatorx

import (
	"fmt"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent) and registers
// the domain rules.
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("barcode", validBarcode)
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// Reason renders a validation error as a short client-facing message
// naming the first failing field.
func Reason(err error) string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "barcode":
		return fmt.Sprintf("%s must be 8 to 14 digits", field)
	case "min", "max":
		return fmt.Sprintf("%s is out of range", field)
	}
	return fmt.Sprintf("%s is invalid", field)
}

// validBarcode accepts retail barcode payloads: digits only, 8 to 14
// characters (EAN-8 through GTIN-14).
func validBarcode(fl gpvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 || len(s) > 14 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
