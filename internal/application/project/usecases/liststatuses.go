package usecases

import (
	"context"
	"fmt"

	"quarry/internal/application/project/dto"
	"quarry/internal/domain/project"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type ListStatusesQuery struct {
	ProjectID uint
}

type ListStatusesUseCase struct {
	projectRepo project.ProjectRepository
	statusRepo  project.StatusRepository
	logger      logger.Interface
}

func NewListStatusesUseCase(
	projectRepo project.ProjectRepository,
	statusRepo project.StatusRepository,
	logger logger.Interface,
) *ListStatusesUseCase {
	return &ListStatusesUseCase{
		projectRepo: projectRepo,
		statusRepo:  statusRepo,
		logger:      logger,
	}
}

func (uc *ListStatusesUseCase) Execute(ctx context.Context, query ListStatusesQuery) ([]*dto.StatusDTO, error) {
	if _, err := uc.projectRepo.GetByID(ctx, query.ProjectID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", query.ProjectID))
	}

	statuses, err := uc.statusRepo.ListByProject(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list statuses", "project_id", query.ProjectID, "error", err)
		return nil, err
	}

	items := make([]*dto.StatusDTO, len(statuses))
	for i, s := range statuses {
		items[i] = dto.FromStatus(s)
	}

	return items, nil
}
