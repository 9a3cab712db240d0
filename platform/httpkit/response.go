// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"capyngen_lead_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// ValidationResponse carries per-field validation errors.
type ValidationResponse struct {
	OK     bool        `json:"ok"`
	Errors interface{} `json:"errors"`
}

// FailureResponse is the standard failure envelope.
type FailureResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// OK sends a 200 success envelope with the given message.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{OK: true, Message: message})
}

// ValidationFailed sends a 400 envelope listing the violated fields.
func ValidationFailed(c *gin.Context, fieldErrors interface{}) {
	c.JSON(http.StatusBadRequest, ValidationResponse{OK: false, Errors: fieldErrors})
}

// Fail sends a failure envelope with the given status, message and error detail.
func Fail(c *gin.Context, status int, message, errMessage string) {
	c.JSON(status, FailureResponse{OK: false, Message: message, Error: errMessage})
}

// HandleError maps domain errors to HTTP responses.
// Typed *apperr.Error values drive the status code; validation errors render
// their per-field details, everything else renders the failure envelope.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := err.(*apperr.Error); ok {
		if domainErr.Kind == apperr.KindValidation && domainErr.Details != nil {
			ValidationFailed(c, domainErr.Details)
			return true
		}

		detail := ""
		if cause := domainErr.Unwrap(); cause != nil {
			detail = cause.Error()
		}
		Fail(c, domainErr.HTTPStatus(), domainErr.Message, detail)
		return true
	}

	// Fallback for non-typed errors
	Fail(c, http.StatusInternalServerError, "Internal server error", err.Error())
	return true
}
