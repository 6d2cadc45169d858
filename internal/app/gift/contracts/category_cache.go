package contracts

import (
	"context"

	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
)

// CategoryCache stores category listings keyed by their query.
// Get returns ok=false on a miss.
type CategoryCache interface {
	Get(ctx context.Context, key string) (items []*dto.CategoryDTO, ok bool, err error)
	Set(ctx context.Context, key string, items []*dto.CategoryDTO) error
}
