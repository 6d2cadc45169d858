package search_gifts

import (
	"context"
	"math/rand/v2"
	"strconv"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
)

// SpannerSearchQuery runs the gift search against Cloud Spanner.
type SpannerSearchQuery struct {
	Client *spanner.Client
}

func NewSpannerSearchQuery(client *spanner.Client) *SpannerSearchQuery {
	return &SpannerSearchQuery{Client: client}
}

func (q *SpannerSearchQuery) SearchProducts(ctx context.Context, filter domain.SearchFilter) ([]*dto.ProductResultDTO, error) {
	seed := strconv.FormatUint(rand.Uint64(), 36)
	built := BuildStatement(store.DialectSpanner, filter, seed)

	iter := q.Client.Single().Query(ctx, spanner.Statement{SQL: built.SQL, Params: built.Params})
	defer iter.Stop()

	out := make([]*dto.ProductResultDTO, 0, domain.ResultCap)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, domain.NewQueryError(opSearch, err)
		}

		var (
			id                   int64
			title, categoryTitle string
			price                float64
			imageURL, productURL spanner.NullString
		)
		if err := row.Columns(&id, &title, &price, &imageURL, &productURL, &categoryTitle); err != nil {
			return nil, domain.NewQueryError(opSearch, err)
		}

		r := &dto.ProductResultDTO{
			ID:            id,
			Title:         title,
			Price:         price,
			ProductURL:    productURL.StringVal,
			CategoryTitle: categoryTitle,
		}
		if imageURL.Valid {
			u := imageURL.StringVal
			r.ImageURL = &u
		}
		out = append(out, r)
	}
}
