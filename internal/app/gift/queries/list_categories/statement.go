package list_categories

import (
	"fmt"

	"github.com/murkotick/gift-finder-service/internal/models/m_category"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
)

// MaxLimit caps a single category listing.
const MaxLimit = 50

type Statement struct {
	SQL    string
	Args   []any
	Params map[string]any
}

// BuildStatement lists categories ordered by title. A non-empty contains
// restricts to titles holding it, case-insensitively.
func BuildStatement(d store.Dialect, contains string, limit int) Statement {
	if limit <= 0 || limit > MaxLimit {
		limit = MaxLimit
	}
	b := store.NewBinder(d)

	sql := fmt.Sprintf("SELECT c.%s, c.%s\nFROM %s c", m_category.ColID, m_category.ColTitle, m_category.TableName)
	if contains != "" {
		haystack := fmt.Sprintf("%s(c.%s)", d.LowerFunc(), m_category.ColTitle)
		sql += "\nWHERE " + d.ContainsExpr(haystack, b.Bind("contains", contains))
	}
	sql += fmt.Sprintf("\nORDER BY c.%s, c.%s\nLIMIT %s", m_category.ColTitle, m_category.ColID, b.Bind("limit", limit))

	return Statement{SQL: sql, Args: b.Args(), Params: b.Params()}
}
