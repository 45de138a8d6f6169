package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestProblemDetailsJSON(t *testing.T) {
	retryAfter := 30
	problem := &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "Field validation failed",
		Instance:    "/api/v1/moods",
		RequestID:   "req-abc123",
		UserMessage: "Please fix the errors",
		RetryAfter:  &retryAfter,
		Errors: []FieldError{
			{Field: "mood", Message: "must be at most 5", Code: "max"},
		},
	}

	data, err := json.Marshal(problem)
	if err != nil {
		t.Fatalf("Failed to marshal ProblemDetails: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	expect := map[string]interface{}{
		"type":         TypeValidation,
		"title":        TitleValidation,
		"status":       float64(http.StatusBadRequest),
		"detail":       "Field validation failed",
		"instance":     "/api/v1/moods",
		"request_id":   "req-abc123",
		"user_message": "Please fix the errors",
		"retry_after":  float64(30),
	}
	for key, want := range expect {
		if result[key] != want {
			t.Errorf("Expected %s=%v, got %v", key, want, result[key])
		}
	}

	fieldErrors, ok := result["errors"].([]interface{})
	if !ok || len(fieldErrors) != 1 {
		t.Errorf("Expected 1 field error, got %v", result["errors"])
	}
}

func TestProblemDetailsJSONOmitsEmpty(t *testing.T) {
	problem := &ProblemDetails{
		Type:   TypeInternal,
		Title:  TitleInternal,
		Status: http.StatusInternalServerError,
	}

	data, err := json.Marshal(problem)
	if err != nil {
		t.Fatalf("Failed to marshal ProblemDetails: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	for _, field := range []string{"detail", "instance", "request_id", "user_message", "retry_after", "errors"} {
		if _, exists := result[field]; exists {
			t.Errorf("Expected field %q to be omitted when empty", field)
		}
	}
	for _, field := range []string{"type", "title", "status"} {
		if _, exists := result[field]; !exists {
			t.Errorf("Expected required field %q to be present", field)
		}
	}
}

func TestWriteProblem(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/food/2024-13-01", nil)

	WriteProblem(c, NewInvalidDateError("req-123", "date", "2024-13-01"))

	if got := w.Header().Get("Content-Type"); got != ContentTypeProblemJSON {
		t.Errorf("Expected Content-Type=%q, got %q", ContentTypeProblemJSON, got)
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status=%d, got %d", http.StatusBadRequest, w.Code)
	}

	var result ProblemDetails
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal response body: %v", err)
	}
	if result.Instance != "/api/v1/food/2024-13-01" {
		t.Errorf("Expected instance from request path, got %q", result.Instance)
	}
	if w.Header().Get("Retry-After") != "" {
		t.Errorf("Expected no Retry-After header")
	}
}

func TestWriteProblemRetryAfter(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	WriteProblem(c, NewUnavailableError("req-456", 15))

	if got := w.Header().Get("Retry-After"); got != "15" {
		t.Errorf("Expected Retry-After header=%q, got %q", "15", got)
	}
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status=%d, got %d", http.StatusServiceUnavailable, w.Code)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		problem *ProblemDetails
		typ     string
		status  int
	}{
		{"validation", NewValidationError("r", nil), TypeValidation, http.StatusBadRequest},
		{"bad request", NewBadRequestError("r", "bad", "bad"), TypeBadRequest, http.StatusBadRequest},
		{"invalid date", NewInvalidDateError("r", "start", "x"), TypeInvalidDate, http.StatusBadRequest},
		{"unknown kind", NewUnknownKindError("r", "steps", []string{"mood"}), TypeUnknownKind, http.StatusNotFound},
		{"not found", NewNotFoundError("r", "food intake", "2024-03-14"), TypeNotFound, http.StatusNotFound},
		{"internal", NewInternalError("r"), TypeInternal, http.StatusInternalServerError},
		{"unavailable", NewUnavailableError("r", 5), TypeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.problem.Type != tt.typ {
				t.Errorf("Expected type=%q, got %q", tt.typ, tt.problem.Type)
			}
			if tt.problem.Status != tt.status {
				t.Errorf("Expected status=%d, got %d", tt.status, tt.problem.Status)
			}
			if tt.problem.RequestID != "r" {
				t.Errorf("Expected request_id=r, got %q", tt.problem.RequestID)
			}
		})
	}
}

func TestFromBindError(t *testing.T) {
	type payload struct {
		Mood        int `validate:"required,min=1,max=5"`
		WaterIntake int `validate:"max=4"`
	}

	err := validator.New().Struct(payload{Mood: 9, WaterIntake: 7})
	problem := FromBindError("req-1", err)

	if problem.Type != TypeValidation {
		t.Fatalf("Expected validation problem, got %q", problem.Type)
	}
	if len(problem.Errors) != 2 {
		t.Fatalf("Expected 2 field errors, got %d", len(problem.Errors))
	}
	if problem.Errors[0].Field != "mood" || problem.Errors[0].Code != "max" {
		t.Errorf("Unexpected first field error: %+v", problem.Errors[0])
	}
	if problem.Errors[1].Field != "water_intake" {
		t.Errorf("Expected water_intake, got %q", problem.Errors[1].Field)
	}
}

func TestFromBindErrorMalformedBody(t *testing.T) {
	problem := FromBindError("req-2", errors.New("unexpected EOF"))

	if problem.Type != TypeBadRequest {
		t.Errorf("Expected bad request, got %q", problem.Type)
	}
	if problem.Detail != "unexpected EOF" {
		t.Errorf("Expected detail to carry the decode error, got %q", problem.Detail)
	}
}

func TestProblemDetailsError(t *testing.T) {
	withDetail := &ProblemDetails{Title: TitleValidation, Detail: "Custom error message"}
	if withDetail.Error() != "Custom error message" {
		t.Errorf("Expected Error()=%q, got %q", "Custom error message", withDetail.Error())
	}

	titleOnly := &ProblemDetails{Title: TitleValidation}
	if titleOnly.Error() != TitleValidation {
		t.Errorf("Expected Error()=%q, got %q", TitleValidation, titleOnly.Error())
	}
}

func TestGetRequestID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(RequestIDKey, "ctx-req-123")
	if got := GetRequestID(c); got != "ctx-req-123" {
		t.Errorf("Expected request_id=%q, got %q", "ctx-req-123", got)
	}

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	c2.Request.Header.Set("X-Request-ID", "header-req-456")
	if got := GetRequestID(c2); got != "header-req-456" {
		t.Errorf("Expected request_id from header=%q, got %q", "header-req-456", got)
	}

	c3, _ := gin.CreateTestContext(httptest.NewRecorder())
	c3.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	if got := GetRequestID(c3); got != "" {
		t.Errorf("Expected empty request_id, got %q", got)
	}
}
