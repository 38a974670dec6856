package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"quarry/internal/domain/ticket"
	"quarry/internal/infrastructure/persistence/mappers"
	"quarry/internal/infrastructure/persistence/models"
	db "quarry/internal/shared/db"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":               true,
	"name":             true,
	"issue_type":       true,
	"ticket_status_id": true,
	"priority_id":      true,
	"parent_id":        true,
	"created_by":       true,
	"due_date":         true,
	"created_at":       true,
	"updated_at":       true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	if err := r.replaceAssignees(tx, model.ID, t.AssigneeIDs()); err != nil {
		return err
	}

	return r.replaceCustomValues(tx, model.ID, t.CustomFields())
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so nil optional references (parent, epic, sprint) are
	// written back as NULL rather than skipped as zero values.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	// Cascade owned rows and dependency rows referencing this ticket on
	// either side. FK-free schema, so the cascade is explicit.
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketHistoryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket history: %w", err)
	}
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketCustomValueModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket custom values: %w", err)
	}
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketAssigneeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket assignees: %w", err)
	}
	if err := tx.Where("ticket_id = ? OR depends_on_ticket_id = ?", ticketID, ticketID).
		Delete(&models.TicketDependencyModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket dependencies: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.loadAggregate(tx, &model)
}

func (r *TicketRepository) GetByUID(ctx context.Context, uid string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("uid = ?", uid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.loadAggregate(tx, &model)
}

// GetParentID fetches only the parent reference; used for the bounded
// parent chain walk during circular reference checks.
func (r *TicketRepository) GetParentID(ctx context.Context, ticketID uint) (*uint, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Select("id", "parent_id").
		First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve ticket parent: %w", err)
	}

	return model.ParentID, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.StatusID != nil {
		query = query.Where("ticket_status_id = ?", *filter.StatusID)
	}
	if filter.PriorityID != nil {
		query = query.Where("priority_id = ?", *filter.PriorityID)
	}
	if filter.EpicID != nil {
		query = query.Where("epic_id = ?", *filter.EpicID)
	}
	if filter.SprintID != nil {
		query = query.Where("sprint_id = ?", *filter.SprintID)
	}
	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	}
	if filter.IssueType != nil {
		query = query.Where("issue_type = ?", filter.IssueType.String())
	}
	if filter.CreatorID != nil {
		query = query.Where("created_by = ?", *filter.CreatorID)
	}
	if filter.AssigneeID != nil {
		query = query.Where(
			"id IN (?)",
			tx.Model(&models.TicketAssigneeModel{}).
				Select("ticket_id").
				Where("user_id = ?", *filter.AssigneeID),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		t, err := r.loadAggregate(tx, &ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) CountChildren(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketModel{}).
		Where("parent_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count children: %w", err)
	}

	return count, nil
}

func (r *TicketRepository) ReplaceAssignees(ctx context.Context, ticketID uint, userIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return r.replaceAssignees(tx, ticketID, userIDs)
}

func (r *TicketRepository) ReplaceCustomValues(ctx context.Context, ticketID uint, values map[string]string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return r.replaceCustomValues(tx, ticketID, values)
}

func (r *TicketRepository) replaceAssignees(tx *gorm.DB, ticketID uint, userIDs []uint) error {
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketAssigneeModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear ticket assignees: %w", err)
	}

	if len(userIDs) == 0 {
		return nil
	}

	rows := make([]models.TicketAssigneeModel, 0, len(userIDs))
	for _, userID := range userIDs {
		rows = append(rows, models.TicketAssigneeModel{TicketID: ticketID, UserID: userID})
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to save ticket assignees: %w", err)
	}

	return nil
}

func (r *TicketRepository) replaceCustomValues(tx *gorm.DB, ticketID uint, values map[string]string) error {
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketCustomValueModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear ticket custom values: %w", err)
	}

	if len(values) == 0 {
		return nil
	}

	rows := make([]models.TicketCustomValueModel, 0, len(values))
	for key, value := range values {
		rows = append(rows, models.TicketCustomValueModel{TicketID: ticketID, FieldKey: key, Value: value})
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to save ticket custom values: %w", err)
	}

	return nil
}

func (r *TicketRepository) loadAggregate(tx *gorm.DB, model *models.TicketModel) (*ticket.Ticket, error) {
	var assigneeRows []models.TicketAssigneeModel
	if err := tx.Where("ticket_id = ?", model.ID).Find(&assigneeRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket assignees: %w", err)
	}
	assigneeIDs := make([]uint, len(assigneeRows))
	for i, row := range assigneeRows {
		assigneeIDs[i] = row.UserID
	}

	var valueRows []models.TicketCustomValueModel
	if err := tx.Where("ticket_id = ?", model.ID).Find(&valueRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket custom values: %w", err)
	}
	customFields := make(map[string]string, len(valueRows))
	for _, row := range valueRows {
		customFields[row.FieldKey] = row.Value
	}

	return r.mapper.ToDomain(model, assigneeIDs, customFields)
}
