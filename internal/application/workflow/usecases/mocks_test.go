package usecases

import (
	"context"

	"quarry/internal/domain/project"
	"quarry/internal/domain/workflow"
	"quarry/internal/shared/logger"
)

type mockWorkflowRepository struct {
	GetByProjectIDFunc    func(ctx context.Context, projectID uint) (*workflow.Workflow, error)
	CreateOrUpdateFunc    func(ctx context.Context, wf *workflow.Workflow) error
	DeleteByProjectIDFunc func(ctx context.Context, projectID uint) error
}

func (m *mockWorkflowRepository) GetByProjectID(ctx context.Context, projectID uint) (*workflow.Workflow, error) {
	if m.GetByProjectIDFunc != nil {
		return m.GetByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockWorkflowRepository) CreateOrUpdate(ctx context.Context, wf *workflow.Workflow) error {
	if m.CreateOrUpdateFunc != nil {
		return m.CreateOrUpdateFunc(ctx, wf)
	}
	return nil
}

func (m *mockWorkflowRepository) DeleteByProjectID(ctx context.Context, projectID uint) error {
	if m.DeleteByProjectIDFunc != nil {
		return m.DeleteByProjectIDFunc(ctx, projectID)
	}
	return nil
}

type mockProjectRepository struct {
	GetByIDFunc func(ctx context.Context, projectID uint) (*project.Project, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error   { return nil }
func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error { return nil }
func (m *mockProjectRepository) Delete(ctx context.Context, projectID uint) error     { return nil }

func (m *mockProjectRepository) GetByID(ctx context.Context, projectID uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetByKey(ctx context.Context, key string) (*project.Project, error) {
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context, page, pageSize int) ([]*project.Project, int64, error) {
	return nil, 0, nil
}

type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, args ...any)                   {}
func (mockLogger) Info(msg string, args ...any)                    {}
func (mockLogger) Warn(msg string, args ...any)                    {}
func (mockLogger) Error(msg string, args ...any)                   {}
func (m mockLogger) With(args ...any) logger.Interface             { return m }
func (m mockLogger) Named(name string) logger.Interface            { return m }
func (mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
