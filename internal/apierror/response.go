package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ContentTypeProblemJSON is the media type of problem documents
const ContentTypeProblemJSON = "application/problem+json"

// RequestIDKey is the gin context key the request ID middleware writes to
const RequestIDKey = "request_id"

// WriteProblem writes problem as the response, filling Instance from the
// request path when it is unset
func WriteProblem(c *gin.Context, problem *ProblemDetails) {
	if problem.Instance == "" && c.Request != nil && c.Request.URL != nil {
		problem.Instance = c.Request.URL.Path
	}

	c.Header("Content-Type", ContentTypeProblemJSON)
	if problem.RetryAfter != nil {
		c.Header("Retry-After", strconv.Itoa(*problem.RetryAfter))
	}

	c.JSON(problem.Status, problem)
}

// AbortWithProblem writes problem and stops the handler chain
func AbortWithProblem(c *gin.Context, problem *ProblemDetails) {
	WriteProblem(c, problem)
	c.Abort()
}

// GetRequestID returns the request ID set by middleware, falling back to
// the X-Request-ID header
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(RequestIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	if c.Request == nil {
		return ""
	}
	return c.GetHeader("X-Request-ID")
}

func NewValidationError(requestID string, fieldErrors []FieldError) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "One or more fields failed validation",
		RequestID:   requestID,
		UserMessage: "Please check your input and try again",
		Errors:      fieldErrors,
	}
}

func NewBadRequestError(requestID, detail, userMessage string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeBadRequest,
		Title:       TitleBadRequest,
		Status:      http.StatusBadRequest,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: userMessage,
	}
}

// NewInvalidDateError reports a query or path parameter that is not a
// calendar date or RFC 3339 timestamp
func NewInvalidDateError(requestID, field, value string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInvalidDate,
		Title:       TitleInvalidDate,
		Status:      http.StatusBadRequest,
		Detail:      fmt.Sprintf("Invalid date for '%s': '%s'", field, value),
		RequestID:   requestID,
		UserMessage: "Dates must look like 2024-03-14",
		Errors: []FieldError{
			{Field: field, Message: "must be YYYY-MM-DD or RFC 3339", Code: "invalid_date"},
		},
	}
}

func NewUnknownKindError(requestID, kind string, known []string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeUnknownKind,
		Title:       TitleUnknownKind,
		Status:      http.StatusNotFound,
		Detail:      fmt.Sprintf("Unknown entry kind '%s'; expected one of: %s", kind, strings.Join(known, ", ")),
		RequestID:   requestID,
		UserMessage: "That chart does not exist",
	}
}

func NewNotFoundError(requestID, resource, id string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeNotFound,
		Title:       TitleNotFound,
		Status:      http.StatusNotFound,
		Detail:      fmt.Sprintf("%s '%s' was not found", resource, id),
		RequestID:   requestID,
		UserMessage: fmt.Sprintf("No %s recorded for that day", resource),
	}
}

// NewInternalError hides the cause from the client; log it server-side.
func NewInternalError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInternal,
		Title:       TitleInternal,
		Status:      http.StatusInternalServerError,
		Detail:      "An unexpected error occurred",
		RequestID:   requestID,
		UserMessage: "Something went wrong. Please try again later.",
	}
}

func NewUnavailableError(requestID string, retryAfter int) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeUnavailable,
		Title:       TitleUnavailable,
		Status:      http.StatusServiceUnavailable,
		Detail:      "The database is not reachable",
		RequestID:   requestID,
		UserMessage: "Service is temporarily unavailable. Please try again later.",
		RetryAfter:  &retryAfter,
	}
}

// FromBindError converts a gin binding failure into a problem. Validator
// errors become per-field entries; anything else is a malformed body.
func FromBindError(requestID string, err error) *ProblemDetails {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewBadRequestError(requestID, err.Error(), "The request body could not be read")
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   jsonFieldName(fe.Field()),
			Message: fieldMessage(fe),
			Code:    fe.Tag(),
		})
	}
	return NewValidationError(requestID, fieldErrors)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "calendar_date":
		return "must be a date in YYYY-MM-DD form"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// jsonFieldName turns a Go field name such as WaterIntake into water_intake
func jsonFieldName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
