package postgres

import (
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/relayhq/relay/config"
)

const pkgName = "postgres"

type Postgres struct {
	dbx *sqlx.DB
}

func NewDB(cfg config.Configuration) (*Postgres, error) {
	db, err := sqlx.Connect("pgx", cfg.Database.Dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "[%s]: failed to open database", pkgName)
	}

	return &Postgres{dbx: db}, nil
}

func (p *Postgres) GetDB() *sqlx.DB {
	return p.dbx
}

func (p *Postgres) Close() error {
	return p.dbx.Close()
}
