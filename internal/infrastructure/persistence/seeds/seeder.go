package seeds

import (
	"context"

	"gorm.io/gorm"

	db "quarry/internal/shared/db"
)

// DefaultStatusSeeder seeds new projects with the standard status set,
// honoring any transaction carried on the context.
type DefaultStatusSeeder struct {
	db *gorm.DB
}

func NewDefaultStatusSeeder(database *gorm.DB) *DefaultStatusSeeder {
	return &DefaultStatusSeeder{db: database}
}

func (s *DefaultStatusSeeder) SeedDefaults(ctx context.Context, projectID uint) error {
	return SeedDefaultStatuses(db.GetTxFromContext(ctx, s.db), projectID)
}
