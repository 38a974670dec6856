package usecases

import (
	"context"

	"quarry/internal/application/project/dto"
	"quarry/internal/domain/project"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/id"
	"quarry/internal/shared/logger"
)

type CreateProjectCommand struct {
	Name        string
	Key         string
	Description string
	OwnerID     uint
}

// CreateProjectUseCase creates a project and seeds it with the default
// status set in the same transaction.
type CreateProjectUseCase struct {
	projectRepo  project.ProjectRepository
	statusSeeder StatusSeeder
	txManager    TransactionManager
	logger       logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.ProjectRepository,
	statusSeeder StatusSeeder,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo:  projectRepo,
		statusSeeder: statusSeeder,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error) {
	uc.logger.Infow("executing create project use case", "name", cmd.Name, "key", cmd.Key, "owner_id", cmd.OwnerID)

	p, err := project.NewProject(cmd.Name, cmd.Key, cmd.Description, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := p.SetUID(id.MustGenerateWithPrefix(id.PrefixProject, id.DefaultLength)); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.projectRepo.Save(txCtx, p); err != nil {
			return err
		}
		return uc.statusSeeder.SeedDefaults(txCtx, p.ID())
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("project key already exists")
		}
		uc.logger.Errorw("failed to create project", "error", err)
		return nil, err
	}

	uc.logger.Infow("project created", "project_id", p.ID(), "key", p.Key())
	return dto.FromProject(p), nil
}
