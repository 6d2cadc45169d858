package search_gifts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
)

func TestBuildStatement_SQLiteWithoutCategory(t *testing.T) {
	stmt := BuildStatement(store.DialectSQLite, domain.NewSearchFilter("", "low"), "")

	assert.Contains(t, stmt.SQL, "JOIN product_categories pc ON p.id = pc.product_id")
	assert.Contains(t, stmt.SQL, "JOIN categories c ON pc.category_id = c.id")
	assert.Contains(t, stmt.SQL, "c.title AS category_title")
	assert.Contains(t, stmt.SQL, "WHERE p.price BETWEEN ? AND ?")
	assert.NotContains(t, stmt.SQL, "instr(")
	assert.True(t, strings.HasSuffix(stmt.SQL, "ORDER BY RANDOM()\nLIMIT ?"), stmt.SQL)
	assert.Equal(t, []any{0.0, 5000.0, 5}, stmt.Args)
	assert.Nil(t, stmt.Params)
}

func TestBuildStatement_UnboundedRangeHasNoUpperBound(t *testing.T) {
	for _, token := range []string{"", "high", "bogus"} {
		stmt := BuildStatement(store.DialectSQLite, domain.NewSearchFilter("", token), "")
		assert.Contains(t, stmt.SQL, "WHERE p.price >= ?", token)
		assert.NotContains(t, stmt.SQL, "BETWEEN", token)
		assert.Len(t, stmt.Args, 2, token)
	}
}

func TestBuildStatement_CategoryIsBoundLowerCased(t *testing.T) {
	stmt := BuildStatement(store.DialectSQLite, domain.NewSearchFilter("Электро", "medium"), "")

	assert.Contains(t, stmt.SQL, "AND instr(casefold(c.title), ?) > 0")
	assert.Equal(t, []any{5000.0, 20000.0, "электро", 5}, stmt.Args)
}

func TestBuildStatement_PostgresNumbersPlaceholders(t *testing.T) {
	stmt := BuildStatement(store.DialectPostgres, domain.NewSearchFilter("toys", "low"), "")

	assert.Contains(t, stmt.SQL, "p.price BETWEEN $1 AND $2")
	assert.Contains(t, stmt.SQL, "strpos(lower(c.title), $3) > 0")
	assert.Contains(t, stmt.SQL, "ORDER BY random()")
	assert.Contains(t, stmt.SQL, "LIMIT $4")
	assert.Equal(t, []any{0.0, 5000.0, "toys", 5}, stmt.Args)
}

func TestBuildStatement_SpannerUsesNamedParamsAndSeed(t *testing.T) {
	stmt := BuildStatement(store.DialectSpanner, domain.NewSearchFilter("Toys", "high"), "k3x")

	assert.Contains(t, stmt.SQL, "p.price >= @min_price")
	assert.Contains(t, stmt.SQL, "STRPOS(LOWER(c.title), @category) > 0")
	assert.Contains(t, stmt.SQL, "ORDER BY FARM_FINGERPRINT(CONCAT(CAST(p.id AS STRING), @seed))")
	assert.Contains(t, stmt.SQL, "LIMIT @limit")
	assert.Empty(t, stmt.Args)
	assert.Equal(t, map[string]any{
		"min_price": 20000.0,
		"category":  "toys",
		"seed":      "k3x",
		"limit":     5,
	}, stmt.Params)
}

func TestBuildStatement_NeverInterpolatesInput(t *testing.T) {
	hostile := "'; DROP TABLE products; --"
	for _, d := range []store.Dialect{store.DialectSQLite, store.DialectPostgres, store.DialectSpanner} {
		stmt := BuildStatement(d, domain.NewSearchFilter(hostile, "low"), "seed")
		assert.NotContains(t, stmt.SQL, "DROP TABLE", d.String())
	}
}

func TestBuildStatement_LimitIsCapped(t *testing.T) {
	f := domain.NewSearchFilter("", "")
	f.Limit = 500
	stmt := BuildStatement(store.DialectSQLite, f, "")
	assert.Equal(t, domain.ResultCap, stmt.Args[len(stmt.Args)-1])

	f.Limit = 0
	stmt = BuildStatement(store.DialectSQLite, f, "")
	assert.Equal(t, domain.ResultCap, stmt.Args[len(stmt.Args)-1])
}
