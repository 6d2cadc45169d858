package gift

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/list_categories"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/search_gifts"
)

// Queries groups read handlers.
type Queries struct {
	Search     *search_gifts.Handler
	Categories *list_categories.Handler
}

// Handler is a thin gRPC transport adapter.
// It validates input, maps Struct <-> application DTOs and delegates to query handlers.
type Handler struct {
	queries Queries
}

var _ GiftServiceServer = (*Handler)(nil)

func NewHandler(qry Queries) *Handler {
	return &Handler{queries: qry}
}

func (h *Handler) SearchGifts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	appReq, err := mapSearchRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	items, err := h.queries.Search.Execute(ctx, appReq)
	if err != nil {
		return nil, mapError(err)
	}

	out, err := mapProductsToStruct(items)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (h *Handler) ListCategories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	appReq, err := mapCategoriesRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	items, err := h.queries.Categories.Execute(ctx, appReq)
	if err != nil {
		return nil, mapError(err)
	}

	out, err := mapCategoriesToStruct(items)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}
