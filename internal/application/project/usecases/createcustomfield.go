package usecases

import (
	"context"
	"fmt"

	"quarry/internal/application/project/dto"
	"quarry/internal/domain/project"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type CreateCustomFieldCommand struct {
	ProjectID uint
	Key       string
	Label     string
	FieldType string
	CreatedBy uint
}

type CreateCustomFieldUseCase struct {
	projectRepo     project.ProjectRepository
	customFieldRepo project.CustomFieldRepository
	txManager       TransactionManager
	logger          logger.Interface
}

func NewCreateCustomFieldUseCase(
	projectRepo project.ProjectRepository,
	customFieldRepo project.CustomFieldRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateCustomFieldUseCase {
	return &CreateCustomFieldUseCase{
		projectRepo:     projectRepo,
		customFieldRepo: customFieldRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (uc *CreateCustomFieldUseCase) Execute(ctx context.Context, cmd CreateCustomFieldCommand) (*dto.CustomFieldDTO, error) {
	uc.logger.Infow("executing create custom field use case",
		"project_id", cmd.ProjectID, "key", cmd.Key, "field_type", cmd.FieldType)

	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", cmd.ProjectID))
	}

	field, err := project.NewCustomField(cmd.ProjectID, cmd.Key, cmd.Label, cmd.FieldType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.customFieldRepo.Save(txCtx, field)
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(
				fmt.Sprintf("custom field %q already exists for project %d", cmd.Key, cmd.ProjectID))
		}
		uc.logger.Errorw("failed to create custom field", "error", err)
		return nil, err
	}

	return dto.FromCustomField(field), nil
}
