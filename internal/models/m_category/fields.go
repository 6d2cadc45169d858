package m_category

// Field constants for the categories table.
const (
	TableName = "categories"

	ColID          = "id"
	ColParentID    = "parent_id"
	ColTitle       = "title"
	ColLevel       = "level"
	ColRelativeURL = "relative_url"
)

// Field constants for the product_categories association table.
const (
	LinkTableName = "product_categories"

	ColLinkProductID  = "product_id"
	ColLinkCategoryID = "category_id"
)
