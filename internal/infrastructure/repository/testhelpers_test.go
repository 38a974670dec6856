package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quarry/internal/domain/ticket"
	vo "quarry/internal/domain/ticket/valueobjects"
	"quarry/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.ProjectModel{},
		&models.TicketStatusModel{},
		&models.TicketPriorityModel{},
		&models.CustomFieldModel{},
		&models.ProjectWorkflowModel{},
		&models.TicketModel{},
		&models.TicketAssigneeModel{},
		&models.TicketCustomValueModel{},
		&models.TicketHistoryModel{},
		&models.TicketDependencyModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, projectID uint, name, uid string) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket(projectID, name, "", vo.IssueTypeTask, 1, 1)
	require.NoError(t, err)
	require.NoError(t, tk.SetUID(uid))
	require.NoError(t, tk.SetStatus(10))
	return tk
}
