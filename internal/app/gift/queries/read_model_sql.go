package queries

import (
	"context"
	"database/sql"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/list_categories"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/search_gifts"
)

// SQLReadModel serves both queries from a SQLite database.
type SQLReadModel struct {
	searchQ *search_gifts.SQLSearchQuery
	listQ   *list_categories.SQLCategoryQuery
}

func NewSQLReadModel(db *sql.DB) *SQLReadModel {
	return &SQLReadModel{
		searchQ: search_gifts.NewSQLSearchQuery(db),
		listQ:   list_categories.NewSQLCategoryQuery(db),
	}
}

func (rm *SQLReadModel) SearchProducts(ctx context.Context, filter domain.SearchFilter) ([]*dto.ProductResultDTO, error) {
	return rm.searchQ.SearchProducts(ctx, filter)
}

func (rm *SQLReadModel) ListCategories(ctx context.Context, contains string, limit int) ([]*dto.CategoryDTO, error) {
	return rm.listQ.ListCategories(ctx, contains, limit)
}
