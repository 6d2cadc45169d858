package gift

import (
	"errors"
	"net/http"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
)

const (
	msgNoProducts       = "no products found"
	msgSearchFailed     = "failed to fetch products"
	msgCategoriesFailed = "failed to fetch categories"
)

type errorResponse struct {
	Message string `json:"message"`
}

// mapSearchError translates search outcomes into a status and a client-safe
// message. Store details stay in the logs.
func mapSearchError(err error) (int, string) {
	if errors.Is(err, domain.ErrNoProductsFound) {
		return http.StatusNotFound, msgNoProducts
	}
	return http.StatusInternalServerError, msgSearchFailed
}

func mapCategoriesError(error) (int, string) {
	return http.StatusInternalServerError, msgCategoriesFailed
}
