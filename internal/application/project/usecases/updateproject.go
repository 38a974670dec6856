package usecases

import (
	"context"
	"fmt"

	"quarry/internal/application/project/dto"
	"quarry/internal/domain/project"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type UpdateProjectCommand struct {
	ProjectID   uint
	Name        *string
	Description *string
	UpdatedBy   uint
}

// UpdateProjectUseCase updates mutable project fields. The key is fixed
// at creation; ticket references would dangle if it changed.
type UpdateProjectUseCase struct {
	projectRepo project.ProjectRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewUpdateProjectUseCase(
	projectRepo project.ProjectRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*dto.ProjectDTO, error) {
	uc.logger.Infow("executing update project use case", "project_id", cmd.ProjectID, "updated_by", cmd.UpdatedBy)

	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", cmd.ProjectID))
	}

	name := p.Name()
	description := p.Description()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Description != nil {
		description = *cmd.Description
	}

	if err := p.UpdateDetails(name, description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.projectRepo.Update(txCtx, p)
	})
	if err != nil {
		uc.logger.Errorw("failed to update project", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}

	return dto.FromProject(p), nil
}
