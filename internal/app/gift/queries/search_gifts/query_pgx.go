package search_gifts

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
)

// PgxSearchQuery runs the gift search against PostgreSQL.
type PgxSearchQuery struct {
	Pool *pgxpool.Pool
}

func NewPgxSearchQuery(pool *pgxpool.Pool) *PgxSearchQuery {
	return &PgxSearchQuery{Pool: pool}
}

func (q *PgxSearchQuery) SearchProducts(ctx context.Context, filter domain.SearchFilter) ([]*dto.ProductResultDTO, error) {
	stmt := BuildStatement(store.DialectPostgres, filter, "")

	rows, err := q.Pool.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, domain.NewQueryError(opSearch, err)
	}
	defer rows.Close()

	out := make([]*dto.ProductResultDTO, 0, domain.ResultCap)
	for rows.Next() {
		var (
			r          dto.ProductResultDTO
			productURL *string
		)
		if err := rows.Scan(&r.ID, &r.Title, &r.Price, &r.ImageURL, &productURL, &r.CategoryTitle); err != nil {
			return nil, domain.NewQueryError(opSearch, err)
		}
		if productURL != nil {
			r.ProductURL = *productURL
		}
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewQueryError(opSearch, err)
	}
	return out, nil
}
