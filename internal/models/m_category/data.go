package m_category

import (
	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the canonical fields for a category. Root
// categories have a nil parentID.
func BuildInsertMap(id int64, parentID *int64, title string, level int64, relativeURL string) map[string]interface{} {
	m := map[string]interface{}{
		ColID:    id,
		ColTitle: title,
		ColLevel: level,
	}

	if parentID != nil {
		m[ColParentID] = *parentID
	} else {
		m[ColParentID] = nil
	}

	if relativeURL != "" {
		m[ColRelativeURL] = relativeURL
	} else {
		m[ColRelativeURL] = nil
	}

	return m
}

// InsertMutation builds a spanner.Insert mutation for a category.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// LinkMutation builds the mutation attaching a product to a category.
func LinkMutation(productID, categoryID int64) *spanner.Mutation {
	return spanner.Insert(LinkTableName,
		[]string{ColLinkProductID, ColLinkCategoryID},
		[]interface{}{productID, categoryID})
}

// Columns lists the categories columns in schema order, matching InsertArgs.
func Columns() []string {
	return []string{ColID, ColParentID, ColTitle, ColLevel, ColRelativeURL}
}

// InsertArgs returns the values of m in Columns order, for positional INSERTs.
func InsertArgs(m map[string]interface{}) []interface{} {
	cols := Columns()
	out := make([]interface{}, 0, len(cols))
	for _, c := range cols {
		out = append(out, m[c])
	}
	return out
}
