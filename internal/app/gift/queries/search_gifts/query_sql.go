package search_gifts

import (
	"context"
	"database/sql"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
)

const opSearch = "search products"

// SQLSearchQuery runs the gift search against a database/sql SQLite pool.
type SQLSearchQuery struct {
	DB *sql.DB
}

func NewSQLSearchQuery(db *sql.DB) *SQLSearchQuery {
	return &SQLSearchQuery{DB: db}
}

func (q *SQLSearchQuery) SearchProducts(ctx context.Context, filter domain.SearchFilter) ([]*dto.ProductResultDTO, error) {
	stmt := BuildStatement(store.DialectSQLite, filter, "")

	rows, err := q.DB.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, domain.NewQueryError(opSearch, err)
	}
	defer rows.Close()

	out := make([]*dto.ProductResultDTO, 0, domain.ResultCap)
	for rows.Next() {
		var (
			r          dto.ProductResultDTO
			imageURL   sql.NullString
			productURL sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.Title, &r.Price, &imageURL, &productURL, &r.CategoryTitle); err != nil {
			return nil, domain.NewQueryError(opSearch, err)
		}
		if imageURL.Valid {
			u := imageURL.String
			r.ImageURL = &u
		}
		r.ProductURL = productURL.String
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewQueryError(opSearch, err)
	}
	return out, nil
}
