package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond maps err to a status code. Anything that is not a BusinessError
// is reported as an internal error without leaking its text.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	Write(c, StatusFor(be.Kind), be.Code, messages[be.Code])
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

var messages = map[string]string{
	"appointment_not_found":   "Appointment not found.",
	"professional_not_found":  "Professional not found.",
	"client_not_found":        "Client not found.",
	"user_not_found":          "User not found.",
	"service_not_found":       "Service not found.",
	"service_not_offered":     "The professional does not offer this service.",
	"cross_tenant_access":     "The resource belongs to another client.",
	"slot_unavailable":        "The selected time is not available.",
	"slot_being_booked":       "The selected time is being booked, please retry.",
	"unaligned_start":         "Start time must fall on a 15 minute boundary.",
	"duplicate_code":          "Booking code already in use.",
	"duplicate_rif":           "A client with this identifier already exists.",
	"duplicate_email":         "A user with this email already exists.",
	"invalid_id":              "Malformed identifier.",
	"invalid_status":          "Unknown status.",
	"invalid_transition":      "Status transition not allowed.",
	"invalid_date":            "Invalid date.",
	"missing_services":        "At least one service is required.",
	"missing_start_date":      "Start date is required.",
	"invalid_price":           "Price must be zero or positive.",
	"invalid_slot_count":      "Slot count must be positive.",
	"invalid_weekday":         "Unknown weekday.",
	"invalid_schedule_time":   "Schedule times must be HH:mm.",
	"unaligned_schedule_time": "Schedule times must fall on a 15 minute boundary.",
	"invalid_schedule_range":  "Schedule start must be before end.",
	"invalid_email":           "Invalid email address.",
	"missing_user":            "A user id or new user data is required.",
	"client_required":         "A client is required.",
	"duplicate_service":       "A service can be assigned only once.",
	"invalid_request":         "Invalid request body.",
	"invalid_user":            "A new user needs a name and a password of at least 6 characters.",
	"invalid_credentials":     "Invalid email or password.",
}
