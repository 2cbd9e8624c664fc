package usecases

import (
	"errors"

	"github.com/shopfloor-inc/shopfloor/internal/application/mechanic/dto"
	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	apperrors "github.com/shopfloor-inc/shopfloor/internal/shared/errors"
)

func newNotFoundError() *apperrors.AppError {
	return apperrors.NewNotFoundError(dto.MsgMechanicNotFound)
}

func newEmailTakenError() *apperrors.AppError {
	fields := apperrors.FieldErrors{}
	fields.Add("email", dto.MsgEmailAlreadyExists)
	return apperrors.NewFieldValidationError(fields)
}

// translateError maps repository failures onto application errors. Errors
// that are already application errors pass through; anything unexpected
// becomes an internal error.
func translateError(err error, operation string) error {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, mechanic.ErrMechanicNotFound):
		return newNotFoundError()
	case errors.Is(err, mechanic.ErrEmailTaken):
		// lost a race with a concurrent write of the same email
		return apperrors.NewConflictError(dto.MsgEmailAlreadyExists)
	default:
		return apperrors.NewInternalError("failed to " + operation + " mechanic")
	}
}
