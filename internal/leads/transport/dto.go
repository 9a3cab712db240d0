package transport

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SubmitLeadRequest is the public lead form payload. Dropdown-backed values
// (businessType, services, budget, bestTime) are open-ended on the frontend,
// so they are validated for presence only, not against a fixed vocabulary.
type SubmitLeadRequest struct {
	FullName     string   `json:"fullName" validate:"required"`
	Email        string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string   `json:"phone" validate:"required"`
	City         string   `json:"city" validate:"required"`
	BrandName    string   `json:"brandName" validate:"required"`
	Website      string   `json:"website" validate:"required"`
	BusinessType string   `json:"businessType" validate:"required"`
	Services     []string `json:"services" validate:"min=1"`
	Budget       string   `json:"budget" validate:"required"`
	BestTime     string   `json:"bestTime" validate:"required"`
	Notes        string   `json:"notes,omitempty"`
}

// Normalize trims surrounding whitespace so that required-after-trimming
// holds for every free-text field.
func (r *SubmitLeadRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.City = strings.TrimSpace(r.City)
	r.BrandName = strings.TrimSpace(r.BrandName)
	r.Website = strings.TrimSpace(r.Website)
	r.BusinessType = strings.TrimSpace(r.BusinessType)
	r.Budget = strings.TrimSpace(r.Budget)
	r.BestTime = strings.TrimSpace(r.BestTime)
	r.Notes = strings.TrimSpace(r.Notes)
	for i, svc := range r.Services {
		r.Services[i] = strings.TrimSpace(svc)
	}
}

// FieldError is one violated field in a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// jsonFieldNames maps struct field names to their wire names.
var jsonFieldNames = map[string]string{
	"FullName":     "fullName",
	"Email":        "email",
	"Phone":        "phone",
	"City":         "city",
	"BrandName":    "brandName",
	"Website":      "website",
	"BusinessType": "businessType",
	"Services":     "services",
	"Budget":       "budget",
	"BestTime":     "bestTime",
	"Notes":        "notes",
}

// fieldMessages are the human messages reported per violated field.
var fieldMessages = map[string]string{
	"fullName":     "Full name is required",
	"email":        "Invalid email",
	"phone":        "Phone number is required",
	"city":         "City is required",
	"brandName":    "Brand name is required",
	"website":      "Website or 'No Website' required",
	"businessType": "Business type is required",
	"services":     "At least one service must be selected",
	"budget":       "Budget is required",
	"bestTime":     "Best time to call is required",
}

// FieldErrorsFrom converts validator violations into wire field errors.
// Every violated field is reported; validation is not fail-fast.
func FieldErrorsFrom(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "payload", Message: "Invalid input"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := jsonFieldNames[fe.StructField()]
		if field == "" {
			field = fe.StructField()
		}
		message := fieldMessages[field]
		if message == "" {
			message = "Invalid value"
		}
		out = append(out, FieldError{Field: field, Message: message})
	}
	return out
}
