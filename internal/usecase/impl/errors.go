package impl

import (
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"

	"github.com/pkg/errors"
)

// repositoryErrors maps repository sentinels to the errors returned to clients.
var repositoryErrors = []struct {
	sentinel error
	appErr   *domainerrors.BaseError
}{
	{repository.ErrSubscriberNotFound, domainerrors.ErrSubscriberNotFound},
	{repository.ErrDuplicateSubscriber, domainerrors.ErrSubscriberAlreadyExists},
	{repository.ErrExecutorNotFound, domainerrors.ErrExecutorNotFound},
	{repository.ErrDuplicateExecutor, domainerrors.ErrExecutorAlreadyExists},
	{repository.ErrTaskNotFound, domainerrors.ErrTaskNotFound},
	{repository.ErrAssignmentNotFound, domainerrors.ErrAssignmentNotFound},
	{repository.ErrDuplicateAssignment, domainerrors.ErrAssignmentAlreadyExists},
	{repository.ErrWorkTimeNotFound, domainerrors.ErrWorkTimeNotFound},
	{repository.ErrDuplicateWorkTime, domainerrors.ErrWorkTimeAlreadyExists},
}

// translateError converts repository sentinels into domain errors. Errors that
// already carry an AppError pass through; anything else is wrapped with message.
func translateError(err error, message string) error {
	if err == nil {
		return nil
	}

	for _, m := range repositoryErrors {
		if errors.Is(err, m.sentinel) {
			return m.appErr
		}
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, message)
}
