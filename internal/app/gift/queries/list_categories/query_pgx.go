package list_categories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
)

type PgxCategoryQuery struct {
	Pool *pgxpool.Pool
}

func NewPgxCategoryQuery(pool *pgxpool.Pool) *PgxCategoryQuery {
	return &PgxCategoryQuery{Pool: pool}
}

func (q *PgxCategoryQuery) ListCategories(ctx context.Context, contains string, limit int) ([]*dto.CategoryDTO, error) {
	stmt := BuildStatement(store.DialectPostgres, contains, limit)

	rows, err := q.Pool.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, domain.NewQueryError(opList, err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[dto.CategoryDTO])
	if err != nil {
		return nil, domain.NewQueryError(opList, err)
	}
	if out == nil {
		out = []*dto.CategoryDTO{}
	}
	return out, nil
}
