package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColID         = "id"
	ColTitle      = "title"
	ColPrice      = "price"
	ColImageURL   = "image_url"
	ColProductURL = "product_url"
)
