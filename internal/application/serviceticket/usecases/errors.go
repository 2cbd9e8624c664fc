package usecases

import (
	"errors"

	mechanicdto "github.com/shopfloor-inc/shopfloor/internal/application/mechanic/dto"
	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/dto"
	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	apperrors "github.com/shopfloor-inc/shopfloor/internal/shared/errors"
)

func newNotFoundError() *apperrors.AppError {
	return apperrors.NewNotFoundError(dto.MsgServiceTicketNotFound)
}

func translateError(err error, operation string) error {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, serviceticket.ErrServiceTicketNotFound):
		return newNotFoundError()
	case errors.Is(err, mechanic.ErrMechanicNotFound):
		return apperrors.NewNotFoundError(mechanicdto.MsgMechanicNotFound)
	default:
		return apperrors.NewInternalError("failed to " + operation + " service ticket")
	}
}
