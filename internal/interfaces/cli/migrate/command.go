package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/config"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/database"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/migration"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new SQL migration file for the configured database driver.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// migrateEnv is what every subcommand runs against. conn is nil for
// commands that do not touch the database.
type migrateEnv struct {
	strategy *migration.GooseStrategy
	conn     *gorm.DB
	log      logger.Interface
}

func (e *migrateEnv) close() {
	_ = database.Close(e.conn)
	_ = logger.Sync()
}

// initEnv loads configuration and the logger. The database is opened only
// when connect is set.
func initEnv(connect bool) (*migrateEnv, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	e := &migrateEnv{log: logger.NewLogger()}
	e.strategy = migration.NewGooseStrategy(cfg.Database.Driver, e.log)

	if connect {
		if e.conn, err = database.Open(&cfg.Database); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return e, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	e, err := initEnv(true)
	if err != nil {
		return err
	}
	defer e.close()

	e.log.Infow("running up migrations", "environment", env)

	if err := e.strategy.Migrate(e.conn); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	e.log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}

	e, err := initEnv(true)
	if err != nil {
		return err
	}
	defer e.close()

	e.log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := e.strategy.MigrateDown(e.conn, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	e.log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := initEnv(true)
	if err != nil {
		return err
	}
	defer e.close()

	version, err := e.strategy.GetVersion(e.conn)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := e.strategy.Status(e.conn); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	e, err := initEnv(false)
	if err != nil {
		return err
	}
	defer e.close()

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	if err := e.strategy.Create(root, name); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created successfully\n", name)
	return nil
}
