package usecases

import (
	"context"
	"fmt"

	"quarry/internal/application/project/dto"
	"quarry/internal/domain/project"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type ListCustomFieldsQuery struct {
	ProjectID uint
}

type ListCustomFieldsUseCase struct {
	projectRepo     project.ProjectRepository
	customFieldRepo project.CustomFieldRepository
	logger          logger.Interface
}

func NewListCustomFieldsUseCase(
	projectRepo project.ProjectRepository,
	customFieldRepo project.CustomFieldRepository,
	logger logger.Interface,
) *ListCustomFieldsUseCase {
	return &ListCustomFieldsUseCase{
		projectRepo:     projectRepo,
		customFieldRepo: customFieldRepo,
		logger:          logger,
	}
}

func (uc *ListCustomFieldsUseCase) Execute(ctx context.Context, query ListCustomFieldsQuery) ([]*dto.CustomFieldDTO, error) {
	if _, err := uc.projectRepo.GetByID(ctx, query.ProjectID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", query.ProjectID))
	}

	fields, err := uc.customFieldRepo.ListByProject(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list custom fields", "project_id", query.ProjectID, "error", err)
		return nil, err
	}

	items := make([]*dto.CustomFieldDTO, len(fields))
	for i, f := range fields {
		items[i] = dto.FromCustomField(f)
	}

	return items, nil
}
