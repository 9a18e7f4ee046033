package repository

import (
	"context"
	"database/sql"
)

// QueryI is the subset of *sqlx.DB the repositories use. Rebind lets
// queries be written once with ? placeholders and served to both the
// postgres and sqlite3 drivers.
type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

type Repository struct {
	*SharedR
	*UserWordsR
	*UsersR
	*StatsR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		SharedR:    NewSharedRepository(db),
		UserWordsR: NewUserWordsRepository(db),
		UsersR:     NewUsersRepository(db),
		StatsR:     NewStatsRepository(db),
	}
}
