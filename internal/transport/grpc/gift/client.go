package gift

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
)

// Client calls gift.v1.GiftService and decodes replies into DTOs.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) SearchGifts(ctx context.Context, category, priceRange string, opts ...grpc.CallOption) ([]*dto.ProductResultDTO, error) {
	in, err := structpb.NewStruct(map[string]any{fieldCategory: category, fieldPriceRange: priceRange})
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, SearchGiftsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return mapStructToProducts(out), nil
}

func (c *Client) ListCategories(ctx context.Context, q string, limit int, opts ...grpc.CallOption) ([]*dto.CategoryDTO, error) {
	fields := map[string]any{fieldQuery: q}
	if limit > 0 {
		fields[fieldLimit] = limit
	}
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListCategoriesMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return mapStructToCategories(out), nil
}
