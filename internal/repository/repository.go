package repository

import (
	"context"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool 抽象了 pgxpool.Pool 提供的能力，便于在测试中用 pgxmock 替换
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	cfg    *config.Config
	dbpool DBPool
}

func NewRepository(cfg *config.Config, dbpool DBPool) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}
