package search_gifts

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/pkg/catalogtest"
)

func newSQLQuery(t *testing.T, c catalogtest.Catalog) *SQLSearchQuery {
	t.Helper()
	return NewSQLSearchQuery(catalogtest.OpenSQLite(t, c))
}

func search(t *testing.T, q *SQLSearchQuery, category, priceRange string) []*dto.ProductResultDTO {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := q.SearchProducts(ctx, domain.NewSearchFilter(category, priceRange))
	require.NoError(t, err)
	require.LessOrEqual(t, len(items), domain.ResultCap)
	return items
}

// rowKeys identifies rows as "id/category" so order-free comparisons work.
func rowKeys(items []*dto.ProductResultDTO) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, strings.Join([]string{itoa(it.ID), it.CategoryTitle}, "/"))
	}
	sort.Strings(out)
	return out
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func TestSQLSearch_SingleCheapProduct(t *testing.T) {
	q := newSQLQuery(t, catalogtest.Catalog{
		Categories: []catalogtest.Category{{ID: 1, Title: "Electronics"}},
		Products: []catalogtest.Product{
			{ID: 1, Title: "Earbuds", Price: 3000, ImageURL: catalogtest.StrPtr("https://img/1.png"), ProductURL: "https://shop/1", Categories: []int64{1}},
		},
	})

	items := search(t, q, "", "low")
	require.Len(t, items, 1)
	assert.Equal(t, &dto.ProductResultDTO{
		ID:            1,
		Title:         "Earbuds",
		Price:         3000,
		ImageURL:      catalogtest.StrPtr("https://img/1.png"),
		ProductURL:    "https://shop/1",
		CategoryTitle: "Electronics",
	}, items[0])
}

func TestSQLSearch_NothingUnderLowBand(t *testing.T) {
	q := newSQLQuery(t, catalogtest.Catalog{
		Categories: []catalogtest.Category{{ID: 1, Title: "Electronics"}},
		Products: []catalogtest.Product{
			{ID: 1, Title: "TV", Price: 45000, Categories: []int64{1}},
		},
	})

	items := search(t, q, "", "low")
	assert.Empty(t, items)
}

func TestSQLSearch_UnknownRangeEqualsUnrestricted(t *testing.T) {
	q := newSQLQuery(t, giftCatalog())

	// three electronics rows, below the cap, so both calls see the full set
	want := rowKeys(search(t, q, "электроника", ""))
	require.Len(t, want, 3)
	assert.Equal(t, want, rowKeys(search(t, q, "электроника", "bogus")))
}

func TestSQLSearch_CapsAtFiveInRandomOrder(t *testing.T) {
	q := newSQLQuery(t, manyMatches(12))

	seen := map[string]struct{}{}
	for i := 0; i < 25; i++ {
		items := search(t, q, "gadget", "low")
		require.Len(t, items, domain.ResultCap)

		ids := make([]string, 0, len(items))
		for _, it := range items {
			assert.Equal(t, "Gadgets", it.CategoryTitle)
			ids = append(ids, itoa(it.ID))
		}
		seen[strings.Join(ids, ",")] = struct{}{}
	}
	// 25 identical draws out of 12P5 orderings would mean the order is fixed.
	assert.Greater(t, len(seen), 1)
}

func TestSQLSearch_PricesStayWithinBand(t *testing.T) {
	q := newSQLQuery(t, giftCatalog())

	for _, token := range []string{"low", "medium", "high"} {
		band := domain.ParsePriceRange(token).Band()
		for i := 0; i < 5; i++ {
			for _, it := range search(t, q, "", token) {
				assert.True(t, band.Contains(it.Price), "%s: price %v outside band", token, it.Price)
			}
		}
	}
}

func TestSQLSearch_BandEdgesAreInclusive(t *testing.T) {
	q := newSQLQuery(t, giftCatalog())

	// board game sits exactly on the low/medium edge
	assert.Equal(t, []string{"11/Toys & Games", "15/Toys & Games"}, rowKeys(search(t, q, "toys", "low")))
	assert.Equal(t, []string{"11/Toys & Games"}, rowKeys(search(t, q, "toys", "medium")))

	assert.Equal(t, []string{"12/Электроника"}, rowKeys(search(t, q, "электроника", "medium")))
	assert.Equal(t, []string{"12/Электроника", "13/Электроника"}, rowKeys(search(t, q, "электроника", "high")))
}

func TestSQLSearch_CategoryIsCaseInsensitiveSubstring(t *testing.T) {
	q := newSQLQuery(t, giftCatalog())

	for _, needle := range []string{"X", "x", "-x-", "PREFIX", "Suffix"} {
		assert.Equal(t, []string{"14/prefiX-X-suffix"}, rowKeys(search(t, q, needle, "")), needle)
	}
	for _, needle := range []string{"ЭЛЕКТРО", "электро", "ТРОНИК"} {
		assert.Len(t, search(t, q, needle, ""), 3, needle)
	}
}

func TestSQLSearch_EmptyCategoryIgnoresCategories(t *testing.T) {
	q := newSQLQuery(t, giftCatalog())

	// low band: 10, 11, 14, 15 (x2) = 5 rows across four categories
	assert.Equal(t,
		[]string{"10/Электроника", "11/Toys & Games", "14/prefiX-X-suffix", "15/Books", "15/Toys & Games"},
		rowKeys(search(t, q, "", "low")))
}

func TestSQLSearch_ProductRepeatsPerMatchingCategory(t *testing.T) {
	q := newSQLQuery(t, giftCatalog())

	// Latin "o" hits "Toys & Games" and "Books" only.
	assert.Equal(t,
		[]string{"11/Toys & Games", "13/Books", "15/Books", "15/Toys & Games"},
		rowKeys(search(t, q, "o", "")))
}

func TestSQLSearch_NullableColumns(t *testing.T) {
	q := newSQLQuery(t, giftCatalog())

	items := search(t, q, "prefix", "")
	require.Len(t, items, 1)
	assert.Nil(t, items[0].ImageURL)
	assert.Equal(t, "", items[0].ProductURL)
}

func TestSQLSearch_WildcardsAndQuotesAreLiteral(t *testing.T) {
	q := newSQLQuery(t, giftCatalog())

	assert.Empty(t, search(t, q, "%", ""))
	assert.Empty(t, search(t, q, "_", ""))
	assert.Empty(t, search(t, q, "' OR 1=1 --", ""))
	assert.Equal(t, []string{"11/Toys & Games", "15/Toys & Games"}, rowKeys(search(t, q, " & ", "")))
}

func TestSQLSearch_StoreFailureIsQueryError(t *testing.T) {
	db := catalogtest.OpenSQLite(t, giftCatalog())
	q := NewSQLSearchQuery(db)
	require.NoError(t, db.Close())

	items, err := q.SearchProducts(context.Background(), domain.NewSearchFilter("", "low"))
	require.Error(t, err)
	assert.Nil(t, items)
	assert.True(t, domain.IsQueryError(err))
}

func TestSQLSearch_MissingSchemaIsQueryError(t *testing.T) {
	q := newSQLQuery(t, catalogtest.Catalog{})
	_, err := q.DB.Exec("DROP TABLE product_categories")
	require.NoError(t, err)

	_, err = q.SearchProducts(context.Background(), domain.NewSearchFilter("", ""))
	require.Error(t, err)
	assert.True(t, domain.IsQueryError(err))
	assert.Contains(t, err.Error(), "product_categories")
}
