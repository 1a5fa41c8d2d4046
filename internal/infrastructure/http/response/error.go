package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/innkeep/backoffice/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []ErrorField `json:"details,omitempty"`
}

// ErrorField describes a field-specific error.
type ErrorField struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, "INVALID_REQUEST", message, http.StatusBadRequest)
}

// ValidationError sends a 400 validation error with field details.
func ValidationError(w http.ResponseWriter, field, issue string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed",
			Details: []ErrorField{
				{Field: field, Issue: issue},
			},
		},
	})
}

// NotFound sends a 404 Not Found error.
func NotFound(w http.ResponseWriter, resource string) {
	Error(w, "NOT_FOUND", resource+" not found", http.StatusNotFound)
}

// Conflict sends a 409 Conflict error.
func Conflict(w http.ResponseWriter, message string) {
	Error(w, "CONFLICT", message, http.StatusConflict)
}

// InternalError sends a 500 Internal Server Error. The actual error is logged
// server-side; the client gets a generic message.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		slog.ErrorContext(r.Context(), "Internal server error", "error", err)
	}
	Error(w, "INTERNAL_ERROR", "an internal error occurred", http.StatusInternalServerError)
}

// Error sends a generic error response.
func Error(w http.ResponseWriter, code, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// FromDomainError maps domain errors to HTTP responses.
func FromDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	// Validation errors (400)
	case errors.Is(err, domain.ErrRoomRequired):
		ValidationError(w, "roomId", "required field missing")
	case errors.Is(err, domain.ErrAssigneeRequired):
		ValidationError(w, "assignedUserId", "required field missing")
	case errors.Is(err, domain.ErrRoomNumberRequired):
		ValidationError(w, "number", "required field missing")
	case errors.Is(err, domain.ErrNameRequired):
		ValidationError(w, "name", "required field missing")
	case errors.Is(err, domain.ErrEmailRequired):
		ValidationError(w, "email", "required field missing")
	case errors.Is(err, domain.ErrInvalidDate):
		ValidationError(w, "taskDate", "must be a YYYY-MM-DD date")
	case errors.Is(err, domain.ErrInvalidTaskType):
		ValidationError(w, "taskType", "invalid task type")
	case errors.Is(err, domain.ErrInvalidTaskStatus):
		ValidationError(w, "status", "invalid task status")
	case errors.Is(err, domain.ErrInvalidTaskPriority):
		ValidationError(w, "priority", "invalid priority level")
	case errors.Is(err, domain.ErrInvalidID):
		ValidationError(w, "id", "invalid ID format")

	// Not found errors (404)
	case errors.Is(err, domain.ErrTaskNotFound):
		NotFound(w, "task")
	case errors.Is(err, domain.ErrRoomNotFound):
		NotFound(w, "room")
	case errors.Is(err, domain.ErrUserNotFound):
		NotFound(w, "user")
	case errors.Is(err, domain.ErrNotFound):
		NotFound(w, "resource")

	// Constraint conflicts (409)
	case errors.Is(err, domain.ErrDuplicateTask):
		Conflict(w, err.Error())
	case errors.Is(err, domain.ErrAssigneeInUse):
		Conflict(w, err.Error())

	// Unknown errors (500) - log server-side, return generic message
	default:
		InternalError(w, r, err)
	}
}
