package response

import (
	"errors"
	"net/http"

	"github.com/swisscourtage/brokerage-backend-go/internal/domain/collaborator"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/commission"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/policy"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Generation failures
// abort the triggering request only; nothing derived is persisted, so a
// failure can never corrupt previously returned results.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyNotFound):
		NotFound(w, "Policy not found")

	// Commission domain errors
	case errors.Is(err, commission.ErrCommissionNotFound):
		NotFound(w, "Commission not found")
	case errors.Is(err, commission.ErrInvalidTransition):
		Conflict(w, "Commission status can only move forward (pending, due, paid)")

	// Collaborator domain errors
	case errors.Is(err, collaborator.ErrCollaboratorNotFound):
		NotFound(w, "Collaborator not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
