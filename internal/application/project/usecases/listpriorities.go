package usecases

import (
	"context"

	"quarry/internal/application/project/dto"
	"quarry/internal/domain/project"
	"quarry/internal/shared/logger"
)

// ListPrioritiesUseCase returns the global priority ladder, highest first.
type ListPrioritiesUseCase struct {
	priorityRepo project.PriorityRepository
	logger       logger.Interface
}

func NewListPrioritiesUseCase(
	priorityRepo project.PriorityRepository,
	logger logger.Interface,
) *ListPrioritiesUseCase {
	return &ListPrioritiesUseCase{
		priorityRepo: priorityRepo,
		logger:       logger,
	}
}

func (uc *ListPrioritiesUseCase) Execute(ctx context.Context) ([]*dto.PriorityDTO, error) {
	priorities, err := uc.priorityRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list priorities", "error", err)
		return nil, err
	}

	items := make([]*dto.PriorityDTO, len(priorities))
	for i, p := range priorities {
		items[i] = dto.FromPriority(p)
	}

	return items, nil
}
