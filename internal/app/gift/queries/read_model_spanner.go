package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/list_categories"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/search_gifts"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	searchQ *search_gifts.SpannerSearchQuery
	listQ   *list_categories.SpannerCategoryQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		searchQ: search_gifts.NewSpannerSearchQuery(client),
		listQ:   list_categories.NewSpannerCategoryQuery(client),
	}
}

func (rm *SpannerReadModel) SearchProducts(ctx context.Context, filter domain.SearchFilter) ([]*dto.ProductResultDTO, error) {
	return rm.searchQ.SearchProducts(ctx, filter)
}

func (rm *SpannerReadModel) ListCategories(ctx context.Context, contains string, limit int) ([]*dto.CategoryDTO, error) {
	return rm.listQ.ListCategories(ctx, contains, limit)
}
