package queries

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/list_categories"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/search_gifts"
)

// PgxReadModel serves both queries from PostgreSQL.
type PgxReadModel struct {
	searchQ *search_gifts.PgxSearchQuery
	listQ   *list_categories.PgxCategoryQuery
}

func NewPgxReadModel(pool *pgxpool.Pool) *PgxReadModel {
	return &PgxReadModel{
		searchQ: search_gifts.NewPgxSearchQuery(pool),
		listQ:   list_categories.NewPgxCategoryQuery(pool),
	}
}

func (rm *PgxReadModel) SearchProducts(ctx context.Context, filter domain.SearchFilter) ([]*dto.ProductResultDTO, error) {
	return rm.searchQ.SearchProducts(ctx, filter)
}

func (rm *PgxReadModel) ListCategories(ctx context.Context, contains string, limit int) ([]*dto.CategoryDTO, error) {
	return rm.listQ.ListCategories(ctx, contains, limit)
}
