package usecases

import (
	"context"
	"fmt"

	"quarry/internal/application/project/dto"
	"quarry/internal/domain/project"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type GetProjectQuery struct {
	ProjectID uint
	Key       string
}

type GetProjectUseCase struct {
	projectRepo project.ProjectRepository
	logger      logger.Interface
}

func NewGetProjectUseCase(
	projectRepo project.ProjectRepository,
	logger logger.Interface,
) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*dto.ProjectDTO, error) {
	var (
		p   *project.Project
		err error
	)

	switch {
	case query.ProjectID != 0:
		p, err = uc.projectRepo.GetByID(ctx, query.ProjectID)
	case query.Key != "":
		p, err = uc.projectRepo.GetByKey(ctx, query.Key)
	default:
		return nil, errors.NewValidationError("project ID or key is required")
	}

	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", query.ProjectID))
	}

	return dto.FromProject(p), nil
}
