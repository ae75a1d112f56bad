package database

import (
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies the embedded SQL migrations that are pending.
func (s *DB) Migrate() error {
	log := s.log.Function("Migrate")

	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}

	sqlDB, err := s.SQL.DB()
	if err != nil {
		return log.Err("failed to get database handle for migrations", err)
	}

	applied, err := migrate.Exec(sqlDB, "sqlite3", source, migrate.Up)
	if err != nil {
		return log.Err("failed to run migrations", err)
	}

	log.Info("Migrations applied", "count", applied)
	return nil
}
