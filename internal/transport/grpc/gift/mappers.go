package gift

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/list_categories"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/search_gifts"
)

const (
	fieldCategory   = "category"
	fieldPriceRange = "price_range"
	fieldQuery      = "q"
	fieldLimit      = "limit"
	fieldProducts   = "products"
	fieldCategories = "categories"
)

func mapSearchRequest(req *structpb.Struct) (search_gifts.Request, error) {
	category, err := optionalString(req, fieldCategory)
	if err != nil {
		return search_gifts.Request{}, err
	}
	priceRange, err := optionalString(req, fieldPriceRange)
	if err != nil {
		return search_gifts.Request{}, err
	}
	return search_gifts.Request{Category: category, PriceRange: priceRange}, nil
}

func mapCategoriesRequest(req *structpb.Struct) (list_categories.Request, error) {
	q, err := optionalString(req, fieldQuery)
	if err != nil {
		return list_categories.Request{}, err
	}
	limit, err := optionalPositiveInt(req, fieldLimit)
	if err != nil {
		return list_categories.Request{}, err
	}
	return list_categories.Request{Query: q, Limit: limit}, nil
}

func mapProductsToStruct(items []*dto.ProductResultDTO) (*structpb.Struct, error) {
	list := make([]any, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		var image any
		if it.ImageURL != nil {
			image = *it.ImageURL
		}
		list = append(list, map[string]any{
			"id":             it.ID,
			"title":          it.Title,
			"price":          it.Price,
			"image_url":      image,
			"product_url":    it.ProductURL,
			"category_title": it.CategoryTitle,
		})
	}
	return structpb.NewStruct(map[string]any{fieldProducts: list})
}

func mapCategoriesToStruct(items []*dto.CategoryDTO) (*structpb.Struct, error) {
	list := make([]any, 0, len(items))
	for _, it := range items {
		list = append(list, map[string]any{"id": it.ID, "title": it.Title})
	}
	return structpb.NewStruct(map[string]any{fieldCategories: list})
}

func mapStructToProducts(s *structpb.Struct) []*dto.ProductResultDTO {
	values := s.GetFields()[fieldProducts].GetListValue().GetValues()
	out := make([]*dto.ProductResultDTO, 0, len(values))
	for _, v := range values {
		f := v.GetStructValue().GetFields()
		p := &dto.ProductResultDTO{
			ID:            int64(f["id"].GetNumberValue()),
			Title:         f["title"].GetStringValue(),
			Price:         f["price"].GetNumberValue(),
			ProductURL:    f["product_url"].GetStringValue(),
			CategoryTitle: f["category_title"].GetStringValue(),
		}
		if img, ok := f["image_url"].GetKind().(*structpb.Value_StringValue); ok {
			u := img.StringValue
			p.ImageURL = &u
		}
		out = append(out, p)
	}
	return out
}

func mapStructToCategories(s *structpb.Struct) []*dto.CategoryDTO {
	values := s.GetFields()[fieldCategories].GetListValue().GetValues()
	out := make([]*dto.CategoryDTO, 0, len(values))
	for _, v := range values {
		f := v.GetStructValue().GetFields()
		out = append(out, &dto.CategoryDTO{
			ID:    int64(f["id"].GetNumberValue()),
			Title: f["title"].GetStringValue(),
		})
	}
	return out
}
