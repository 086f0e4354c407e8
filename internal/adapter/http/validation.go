package http

import (
	"regexp"

	"campus-leave-service/internal/domain/leave"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// staff/application ids = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	// closed leave-category enum; bad categories die here, not in the store
	_ = v.RegisterValidation("leavecategory", func(fl validator.FieldLevel) bool {
		_, err := leave.ParseCategory(fl.Field().String())
		return err == nil
	})
	// an approver may only record approved/rejected
	_ = v.RegisterValidation("decision", func(fl validator.FieldLevel) bool {
		_, err := leave.ParseDecision(fl.Field().String())
		return err == nil
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "leavecategory":
			out = append(out, FieldError{Field: field, Message: "must be a known leave category"})
		case "decision":
			out = append(out, FieldError{Field: field, Message: "must be approved or rejected"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must be a YYYY-MM-DD date"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
