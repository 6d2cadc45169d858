package list_categories

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
)

type SpannerCategoryQuery struct {
	Client *spanner.Client
}

func NewSpannerCategoryQuery(client *spanner.Client) *SpannerCategoryQuery {
	return &SpannerCategoryQuery{Client: client}
}

func (q *SpannerCategoryQuery) ListCategories(ctx context.Context, contains string, limit int) ([]*dto.CategoryDTO, error) {
	built := BuildStatement(store.DialectSpanner, contains, limit)

	iter := q.Client.Single().Query(ctx, spanner.Statement{SQL: built.SQL, Params: built.Params})
	defer iter.Stop()

	out := make([]*dto.CategoryDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, domain.NewQueryError(opList, err)
		}

		var c dto.CategoryDTO
		if err := row.Columns(&c.ID, &c.Title); err != nil {
			return nil, domain.NewQueryError(opList, err)
		}
		out = append(out, &c)
	}
}
