package migrator

import (
	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"

	"github.com/relayhq/relay/database"
)

type Migrator struct {
	dbx *sqlx.DB
	src migrate.MigrationSource
}

func New(d database.Database) *Migrator {
	migrations := &migrate.FileMigrationSource{
		Dir: "sql",
	}
	return &Migrator{dbx: d.GetDB(), src: migrations}
}

// Up applies every pending migration in order.
func (m *Migrator) Up() error {
	_, err := migrate.Exec(m.dbx.DB, "postgres", m.src, migrate.Up)
	if err != nil {
		return err
	}
	return nil
}

// Down rolls back at most max applied migrations.
func (m *Migrator) Down(max int) error {
	_, err := migrate.ExecMax(m.dbx.DB, "postgres", m.src, migrate.Down, max)
	if err != nil {
		return err
	}
	return nil
}
