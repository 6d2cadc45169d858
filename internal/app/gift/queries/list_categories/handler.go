package list_categories

import (
	"context"
	"strconv"
	"strings"
	"time"

	contracts "github.com/murkotick/gift-finder-service/internal/app/gift/contracts"
	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/pkg/logx"
)

type Request struct {
	// Query filters titles by case-insensitive substring; empty lists all.
	Query string
	Limit int
}

type Handler struct {
	readModel contracts.CategoryReadModel
	cache     contracts.CategoryCache
	timeout   time.Duration
}

// NewHandler builds the listing handler. cache may be nil.
func NewHandler(r contracts.CategoryReadModel, cache contracts.CategoryCache, timeout time.Duration) *Handler {
	return &Handler{readModel: r, cache: cache, timeout: timeout}
}

// Execute returns up to MaxLimit categories. An empty list is a valid result.
// Cache failures are logged and bypassed.
func (h *Handler) Execute(ctx context.Context, req Request) ([]*dto.CategoryDTO, error) {
	needle := strings.ToLower(strings.TrimSpace(req.Query))
	limit := req.Limit
	if limit <= 0 || limit > MaxLimit {
		limit = MaxLimit
	}
	key := cacheKey(needle, limit)

	if h.cache != nil {
		items, ok, err := h.cache.Get(ctx, key)
		if err != nil {
			logx.Warn().Err(err).Str("key", key).Msg("category cache read failed")
		} else if ok {
			return items, nil
		}
	}

	qctx := ctx
	if h.timeout > 0 {
		var cancel context.CancelFunc
		qctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	items, err := h.readModel.ListCategories(qctx, needle, limit)
	if err != nil {
		if !domain.IsQueryError(err) {
			err = domain.NewQueryError(opList, err)
		}
		logx.Error().Err(err).Str("query", req.Query).Msg("category listing failed")
		return nil, err
	}
	if items == nil {
		items = []*dto.CategoryDTO{}
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, items); err != nil {
			logx.Warn().Err(err).Str("key", key).Msg("category cache write failed")
		}
	}
	return items, nil
}

func cacheKey(needle string, limit int) string {
	return "categories:" + strconv.Itoa(limit) + ":" + needle
}
