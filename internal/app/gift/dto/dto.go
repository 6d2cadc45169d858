package dto

// ProductResultDTO is one flattened product/category join row returned by a
// gift search. A product in several matching categories yields one row per
// category.
type ProductResultDTO struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	ImageURL      *string `json:"image_url"`
	ProductURL    string  `json:"product_url"`
	CategoryTitle string  `json:"category_title"`
}

// CategoryDTO is a compact category entry for suggestion lists.
type CategoryDTO struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
