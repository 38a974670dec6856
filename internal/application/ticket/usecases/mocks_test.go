package usecases

import (
	"context"

	"quarry/internal/domain/project"
	"quarry/internal/domain/shared/events"
	"quarry/internal/domain/ticket"
	vo "quarry/internal/domain/ticket/valueobjects"
	"quarry/internal/domain/user"
	"quarry/internal/domain/workflow"
	"quarry/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc              func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc              func(ctx context.Context, ticketID uint) error
	GetByIDFunc             func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByUIDFunc            func(ctx context.Context, uid string) (*ticket.Ticket, error)
	GetParentIDFunc         func(ctx context.Context, ticketID uint) (*uint, error)
	ListFunc                func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountChildrenFunc       func(ctx context.Context, ticketID uint) (int64, error)
	ReplaceAssigneesFunc    func(ctx context.Context, ticketID uint, userIDs []uint) error
	ReplaceCustomValuesFunc func(ctx context.Context, ticketID uint, values map[string]string) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByUID(ctx context.Context, uid string) (*ticket.Ticket, error) {
	if m.GetByUIDFunc != nil {
		return m.GetByUIDFunc(ctx, uid)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetParentID(ctx context.Context, ticketID uint) (*uint, error) {
	if m.GetParentIDFunc != nil {
		return m.GetParentIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountChildren(ctx context.Context, ticketID uint) (int64, error) {
	if m.CountChildrenFunc != nil {
		return m.CountChildrenFunc(ctx, ticketID)
	}
	return 0, nil
}

func (m *mockTicketRepository) ReplaceAssignees(ctx context.Context, ticketID uint, userIDs []uint) error {
	if m.ReplaceAssigneesFunc != nil {
		return m.ReplaceAssigneesFunc(ctx, ticketID, userIDs)
	}
	return nil
}

func (m *mockTicketRepository) ReplaceCustomValues(ctx context.Context, ticketID uint, values map[string]string) error {
	if m.ReplaceCustomValuesFunc != nil {
		return m.ReplaceCustomValuesFunc(ctx, ticketID, values)
	}
	return nil
}

type mockHistoryRepository struct {
	AppendFunc        func(ctx context.Context, h *ticket.History) error
	ListByTicketFunc  func(ctx context.Context, ticketID uint) ([]*ticket.History, error)
	CountByTicketFunc func(ctx context.Context, ticketID uint) (int64, error)
}

func (m *mockHistoryRepository) Append(ctx context.Context, h *ticket.History) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, h)
	}
	return nil
}

func (m *mockHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.History, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockHistoryRepository) CountByTicket(ctx context.Context, ticketID uint) (int64, error) {
	if m.CountByTicketFunc != nil {
		return m.CountByTicketFunc(ctx, ticketID)
	}
	return 0, nil
}

type mockDependencyRepository struct {
	SaveFunc                    func(ctx context.Context, d *ticket.Dependency) error
	DeleteFunc                  func(ctx context.Context, dependencyID uint) error
	GetByIDFunc                 func(ctx context.Context, dependencyID uint) (*ticket.Dependency, error)
	ListByTicketFunc            func(ctx context.Context, ticketID uint) ([]*ticket.Dependency, error)
	ExistsFunc                  func(ctx context.Context, ticketID, dependsOnID uint, depType vo.DependencyType) (bool, error)
	CountBlockingDependentsFunc func(ctx context.Context, ticketID uint) (int64, error)
}

func (m *mockDependencyRepository) Save(ctx context.Context, d *ticket.Dependency) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return nil
}

func (m *mockDependencyRepository) Delete(ctx context.Context, dependencyID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, dependencyID)
	}
	return nil
}

func (m *mockDependencyRepository) GetByID(ctx context.Context, dependencyID uint) (*ticket.Dependency, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, dependencyID)
	}
	return nil, nil
}

func (m *mockDependencyRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Dependency, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockDependencyRepository) Exists(ctx context.Context, ticketID, dependsOnID uint, depType vo.DependencyType) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, ticketID, dependsOnID, depType)
	}
	return false, nil
}

func (m *mockDependencyRepository) CountBlockingDependents(ctx context.Context, ticketID uint) (int64, error) {
	if m.CountBlockingDependentsFunc != nil {
		return m.CountBlockingDependentsFunc(ctx, ticketID)
	}
	return 0, nil
}

type mockProjectRepository struct {
	SaveFunc     func(ctx context.Context, p *project.Project) error
	UpdateFunc   func(ctx context.Context, p *project.Project) error
	DeleteFunc   func(ctx context.Context, projectID uint) error
	GetByIDFunc  func(ctx context.Context, projectID uint) (*project.Project, error)
	GetByKeyFunc func(ctx context.Context, key string) (*project.Project, error)
	ListFunc     func(ctx context.Context, page, pageSize int) ([]*project.Project, int64, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, projectID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, projectID)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, projectID uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetByKey(ctx context.Context, key string) (*project.Project, error) {
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context, page, pageSize int) ([]*project.Project, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

type mockStatusRepository struct {
	SaveFunc                   func(ctx context.Context, s *project.Status) error
	UpdateFunc                 func(ctx context.Context, s *project.Status) error
	DeleteFunc                 func(ctx context.Context, statusID uint) error
	GetByIDFunc                func(ctx context.Context, statusID uint) (*project.Status, error)
	ListByProjectFunc          func(ctx context.Context, projectID uint) ([]*project.Status, error)
	GetDefaultForProjectFunc   func(ctx context.Context, projectID uint) (*project.Status, error)
	CountTicketsWithStatusFunc func(ctx context.Context, statusID uint) (int64, error)
}

func (m *mockStatusRepository) Save(ctx context.Context, s *project.Status) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockStatusRepository) Update(ctx context.Context, s *project.Status) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockStatusRepository) Delete(ctx context.Context, statusID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, statusID)
	}
	return nil
}

func (m *mockStatusRepository) GetByID(ctx context.Context, statusID uint) (*project.Status, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, statusID)
	}
	return nil, nil
}

func (m *mockStatusRepository) ListByProject(ctx context.Context, projectID uint) ([]*project.Status, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockStatusRepository) GetDefaultForProject(ctx context.Context, projectID uint) (*project.Status, error) {
	if m.GetDefaultForProjectFunc != nil {
		return m.GetDefaultForProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockStatusRepository) CountTicketsWithStatus(ctx context.Context, statusID uint) (int64, error) {
	if m.CountTicketsWithStatusFunc != nil {
		return m.CountTicketsWithStatusFunc(ctx, statusID)
	}
	return 0, nil
}

type mockPriorityRepository struct {
	SaveFunc    func(ctx context.Context, p *project.Priority) error
	GetByIDFunc func(ctx context.Context, priorityID uint) (*project.Priority, error)
	ListFunc    func(ctx context.Context) ([]*project.Priority, error)
}

func (m *mockPriorityRepository) Save(ctx context.Context, p *project.Priority) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPriorityRepository) GetByID(ctx context.Context, priorityID uint) (*project.Priority, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, priorityID)
	}
	return nil, nil
}

func (m *mockPriorityRepository) List(ctx context.Context) ([]*project.Priority, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockCustomFieldRepository struct {
	SaveFunc           func(ctx context.Context, f *project.CustomField) error
	UpdateFunc         func(ctx context.Context, f *project.CustomField) error
	DeleteFunc         func(ctx context.Context, fieldID uint) error
	GetByIDFunc        func(ctx context.Context, fieldID uint) (*project.CustomField, error)
	ListActiveKeysFunc func(ctx context.Context, projectID uint) ([]string, error)
	ListByProjectFunc  func(ctx context.Context, projectID uint) ([]*project.CustomField, error)
}

func (m *mockCustomFieldRepository) Save(ctx context.Context, f *project.CustomField) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockCustomFieldRepository) Update(ctx context.Context, f *project.CustomField) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

func (m *mockCustomFieldRepository) Delete(ctx context.Context, fieldID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, fieldID)
	}
	return nil
}

func (m *mockCustomFieldRepository) GetByID(ctx context.Context, fieldID uint) (*project.CustomField, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, fieldID)
	}
	return nil, nil
}

func (m *mockCustomFieldRepository) ListActiveKeys(ctx context.Context, projectID uint) ([]string, error) {
	if m.ListActiveKeysFunc != nil {
		return m.ListActiveKeysFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockCustomFieldRepository) ListByProject(ctx context.Context, projectID uint) ([]*project.CustomField, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, u *user.User) error
	GetByIDFunc    func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ExistAllFunc   func(ctx context.Context, userIDs []uint) (bool, error)
	ListFunc       func(ctx context.Context, page, pageSize int) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistAll(ctx context.Context, userIDs []uint) (bool, error) {
	if m.ExistAllFunc != nil {
		return m.ExistAllFunc(ctx, userIDs)
	}
	return true, nil
}

func (m *mockUserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

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

// mockTxManager runs the transactional function directly on the given
// context, which is what the real manager does minus the database
// transaction.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
	Published      []events.DomainEvent
}

func (m *mockPublisher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockPublisher) PublishAll(evts []events.DomainEvent) error {
	m.Published = append(m.Published, evts...)
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, args ...any)                      {}
func (mockLogger) Info(msg string, args ...any)                       {}
func (mockLogger) Warn(msg string, args ...any)                       {}
func (mockLogger) Error(msg string, args ...any)                      {}
func (m mockLogger) With(args ...any) logger.Interface                { return m }
func (m mockLogger) Named(name string) logger.Interface               { return m }
func (mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
