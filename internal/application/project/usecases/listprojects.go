package usecases

import (
	"context"

	"quarry/internal/application/project/dto"
	"quarry/internal/domain/project"
	"quarry/internal/shared/logger"
	"quarry/internal/shared/utils"
)

type ListProjectsQuery struct {
	Page     int
	PageSize int
}

type ListProjectsResult struct {
	Projects []*dto.ProjectDTO
	Total    int64
}

type ListProjectsUseCase struct {
	projectRepo project.ProjectRepository
	logger      logger.Interface
}

func NewListProjectsUseCase(
	projectRepo project.ProjectRepository,
	logger logger.Interface,
) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	projects, total, err := uc.projectRepo.List(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, err
	}

	items := make([]*dto.ProjectDTO, len(projects))
	for i, p := range projects {
		items[i] = dto.FromProject(p)
	}

	return &ListProjectsResult{
		Projects: items,
		Total:    total,
	}, nil
}
