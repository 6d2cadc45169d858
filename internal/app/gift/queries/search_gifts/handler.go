package search_gifts

import (
	"context"
	"time"

	contracts "github.com/murkotick/gift-finder-service/internal/app/gift/contracts"
	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/pkg/logx"
)

// Request carries the raw client parameters; both are optional.
type Request struct {
	Category   string
	PriceRange string
}

type Handler struct {
	readModel contracts.ProductReadModel
	timeout   time.Duration
}

// NewHandler builds the search handler. A zero timeout leaves the caller's
// deadline untouched.
func NewHandler(r contracts.ProductReadModel, timeout time.Duration) *Handler {
	return &Handler{readModel: r, timeout: timeout}
}

// Execute returns 1..ResultCap random matches, domain.ErrNoProductsFound when
// the search ran and nothing matched, or a *domain.QueryError when the store
// failed.
func (h *Handler) Execute(ctx context.Context, req Request) ([]*dto.ProductResultDTO, error) {
	filter := domain.NewSearchFilter(req.Category, req.PriceRange)

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	items, err := h.readModel.SearchProducts(ctx, filter)
	if err != nil {
		if !domain.IsQueryError(err) {
			err = domain.NewQueryError(opSearch, err)
		}
		logx.Error().Err(err).
			Str("category", req.Category).
			Str("price_range", filter.Range.String()).
			Msg("gift search failed")
		return nil, err
	}

	if len(items) == 0 {
		logx.Warn().
			Str("category", req.Category).
			Str("price_range", filter.Range.String()).
			Msg("no products match the request")
		return nil, domain.ErrNoProductsFound
	}

	if len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items, nil
}
