package contracts

import (
	"context"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
)

// ProductReadModel searches products joined to their categories.
type ProductReadModel interface {
	SearchProducts(ctx context.Context, filter domain.SearchFilter) ([]*dto.ProductResultDTO, error)
}

// CategoryReadModel lists category titles.
type CategoryReadModel interface {
	ListCategories(ctx context.Context, contains string, limit int) ([]*dto.CategoryDTO, error)
}

// ReadModel is the read side of the catalog store.
//
// Implementations return an empty slice (not an error) when nothing matches
// and wrap store failures in *domain.QueryError.
type ReadModel interface {
	ProductReadModel
	CategoryReadModel
}
