package response

import (
	"errors"
	"net/http"

	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/auth"
	"github.com/sitebook/sitebook-backend/internal/domain/bill"
	"github.com/sitebook/sitebook-backend/internal/domain/report"
	"github.com/sitebook/sitebook-backend/internal/domain/user"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
	"github.com/sitebook/sitebook-backend/internal/service/file"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Site domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, bill.ErrBillNotFound):
		NotFound(w, "Bill not found")
	case errors.Is(err, attendance.ErrWriteFailed):
		ServiceUnavailable(w, "Could not save, please retry")
	case errors.Is(err, file.ErrInvalidFileType):
		BadRequest(w, "Only jpg, jpeg and png images are allowed", nil)
	case errors.Is(err, report.ErrRenderFailed):
		InternalServerError(w, "Failed to generate document")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
