package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"resort/config"
	"resort/infras/postgres"
	"resort/shared/constant"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const defaultMigrationPath = "migrations/postgres"

func open(cfg *config.Config) (*migrate.Migrate, error) {
	pg := cfg.DB.Postgres

	params := url.Values{}
	if pg.MigrationTable != constant.Empty {
		params.Set("x-migrations-table", pg.MigrationTable)
	}

	path := pg.MigrationPath
	if path == constant.Empty {
		path = defaultMigrationPath
	}

	mig, err := migrate.New("file://"+path, postgres.DSN(cfg, pg.Write, params))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// run opens a migrator, applies step and reports the resulting version.
// ErrNoChange is not an error.
func run(cfg *config.Config, name string, step func(*migrate.Migrate) error) error {
	mig, err := open(cfg)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", name, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migrate %s: reading version: %w", name, err)
	}

	log.Info().Str("action", name).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(cfg *config.Config) error {
	return run(cfg, "up", (*migrate.Migrate).Up)
}

func StepUp(cfg *config.Config) error {
	return run(cfg, "step-up", func(m *migrate.Migrate) error { return m.Steps(1) })
}

func Down(cfg *config.Config) error {
	return run(cfg, "down", func(m *migrate.Migrate) error { return m.Steps(-1) })
}

// Drop rolls back every migration, leaving an empty schema.
func Drop(cfg *config.Config) error {
	return run(cfg, "drop", (*migrate.Migrate).Down)
}

// Version only logs the applied version.
func Version(cfg *config.Config) error {
	return run(cfg, "version", func(*migrate.Migrate) error { return nil })
}
