package usecases

import (
	"context"
	"fmt"

	"quarry/internal/domain/project"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type DeactivateCustomFieldCommand struct {
	FieldID   uint
	UpdatedBy uint
}

// DeactivateCustomFieldUseCase retires a field definition. Stored ticket
// values stay in place; the key just stops accepting new writes.
type DeactivateCustomFieldUseCase struct {
	customFieldRepo project.CustomFieldRepository
	txManager       TransactionManager
	logger          logger.Interface
}

func NewDeactivateCustomFieldUseCase(
	customFieldRepo project.CustomFieldRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeactivateCustomFieldUseCase {
	return &DeactivateCustomFieldUseCase{
		customFieldRepo: customFieldRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (uc *DeactivateCustomFieldUseCase) Execute(ctx context.Context, cmd DeactivateCustomFieldCommand) error {
	uc.logger.Infow("executing deactivate custom field use case", "field_id", cmd.FieldID)

	field, err := uc.customFieldRepo.GetByID(ctx, cmd.FieldID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("custom field %d not found", cmd.FieldID))
	}

	field.Deactivate()

	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.customFieldRepo.Update(txCtx, field)
	})
}
