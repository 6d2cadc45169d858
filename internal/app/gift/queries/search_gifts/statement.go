package search_gifts

import (
	"fmt"
	"strings"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/models/m_category"
	"github.com/murkotick/gift-finder-service/internal/models/m_product"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
)

// selectSQL joins products to their categories and projects one row per
// (product, category) pair.
var selectSQL = fmt.Sprintf(`SELECT p.%[1]s, p.%[2]s, p.%[3]s, p.%[4]s, p.%[5]s, c.%[6]s AS category_title
FROM %[7]s p
JOIN %[8]s pc ON p.%[1]s = pc.%[9]s
JOIN %[10]s c ON pc.%[11]s = c.%[12]s`,
	m_product.ColID, m_product.ColTitle, m_product.ColPrice, m_product.ColImageURL, m_product.ColProductURL,
	m_category.ColTitle,
	m_product.TableName,
	m_category.LinkTableName, m_category.ColLinkProductID,
	m_category.TableName, m_category.ColLinkCategoryID, m_category.ColID,
)

// Statement is a fully parameterized search query. Positional dialects use
// Args, Spanner uses Params.
type Statement struct {
	SQL    string
	Args   []any
	Params map[string]any
}

// BuildStatement renders the search for filter in dialect d. User input is
// only ever bound as a parameter. seed salts the Spanner ordering and is
// ignored by dialects with a native random().
func BuildStatement(d store.Dialect, filter domain.SearchFilter, seed string) Statement {
	b := store.NewBinder(d)

	var where []string
	if filter.Band.Bounded() {
		where = append(where, fmt.Sprintf("p.%s BETWEEN %s AND %s",
			m_product.ColPrice, b.Bind("min_price", filter.Band.Min), b.Bind("max_price", filter.Band.Max)))
	} else {
		where = append(where, fmt.Sprintf("p.%s >= %s", m_product.ColPrice, b.Bind("min_price", filter.Band.Min)))
	}

	if filter.HasCategory() {
		haystack := fmt.Sprintf("%s(c.%s)", d.LowerFunc(), m_category.ColTitle)
		where = append(where, d.ContainsExpr(haystack, b.Bind("category", filter.CategoryNeedle())))
	}

	var order string
	switch d {
	case store.DialectSpanner:
		// No RAND() in Spanner: hash each id with a per-call salt instead.
		order = fmt.Sprintf("FARM_FINGERPRINT(CONCAT(CAST(p.%s AS STRING), %s))", m_product.ColID, b.Bind("seed", seed))
	case store.DialectPostgres:
		order = "random()"
	default:
		order = "RANDOM()"
	}

	limit := filter.Limit
	if limit <= 0 || limit > domain.ResultCap {
		limit = domain.ResultCap
	}

	var sb strings.Builder
	sb.WriteString(selectSQL)
	sb.WriteString("\nWHERE ")
	sb.WriteString(strings.Join(where, " AND "))
	sb.WriteString("\nORDER BY ")
	sb.WriteString(order)
	sb.WriteString("\nLIMIT ")
	sb.WriteString(b.Bind("limit", limit))

	return Statement{SQL: sb.String(), Args: b.Args(), Params: b.Params()}
}
