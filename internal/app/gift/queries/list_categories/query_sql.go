package list_categories

import (
	"context"
	"database/sql"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
)

const opList = "list categories"

type SQLCategoryQuery struct {
	DB *sql.DB
}

func NewSQLCategoryQuery(db *sql.DB) *SQLCategoryQuery {
	return &SQLCategoryQuery{DB: db}
}

// ListCategories expects contains already lower-cased.
func (q *SQLCategoryQuery) ListCategories(ctx context.Context, contains string, limit int) ([]*dto.CategoryDTO, error) {
	stmt := BuildStatement(store.DialectSQLite, contains, limit)

	rows, err := q.DB.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, domain.NewQueryError(opList, err)
	}
	defer rows.Close()

	out := make([]*dto.CategoryDTO, 0)
	for rows.Next() {
		var c dto.CategoryDTO
		if err := rows.Scan(&c.ID, &c.Title); err != nil {
			return nil, domain.NewQueryError(opList, err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewQueryError(opList, err)
	}
	return out, nil
}
