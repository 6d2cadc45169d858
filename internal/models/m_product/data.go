package m_product

import (
	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a product using a map of values.
// expected keys are the column names declared in fields.go
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical fields for insertion.
// A nil imageURL or an empty productURL is stored as NULL.
func BuildInsertMap(id int64, title string, price float64, imageURL *string, productURL string) map[string]interface{} {
	m := map[string]interface{}{
		ColID:    id,
		ColTitle: title,
		ColPrice: price,
	}

	if imageURL != nil {
		m[ColImageURL] = *imageURL
	} else {
		m[ColImageURL] = nil
	}

	if productURL != "" {
		m[ColProductURL] = productURL
	} else {
		m[ColProductURL] = nil
	}

	return m
}

// Columns lists the columns in schema order, matching InsertArgs.
func Columns() []string {
	return []string{ColID, ColTitle, ColPrice, ColImageURL, ColProductURL}
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
