package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"quarry/internal/infrastructure/auth"
	"quarry/internal/infrastructure/config"
	"quarry/internal/infrastructure/database"
	"quarry/internal/infrastructure/permission"
	"quarry/internal/infrastructure/persistence/seeds"
	"quarry/internal/shared/logger"
)

var env string

// NewCommand seeds reference data: the priority scale, the default
// permission policies, and the bootstrap admin account. All seeds are
// idempotent, so rerunning the command is safe.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()

	if err := seeds.SeedPriorities(database.Get()); err != nil {
		return fmt.Errorf("failed to seed priorities: %w", err)
	}

	hasher := auth.NewPasswordHasher(cfg.Auth.Password.BcryptCost)
	if err := seeds.SeedAdminUser(database.Get(), hasher); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	enforcer, err := permission.NewEnforcer(database.Get(), log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}

	log.Infow("seeding completed")
	return nil
}
