package list_categories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
	"github.com/murkotick/gift-finder-service/internal/app/gift/dto"
	"github.com/murkotick/gift-finder-service/internal/pkg/catalogtest"
)

type fakeCategories struct {
	items []*dto.CategoryDTO
	err   error
	calls int

	gotContains string
	gotLimit    int
}

func (f *fakeCategories) ListCategories(_ context.Context, contains string, limit int) ([]*dto.CategoryDTO, error) {
	f.calls++
	f.gotContains, f.gotLimit = contains, limit
	return f.items, f.err
}

type memCache struct {
	data    map[string][]*dto.CategoryDTO
	getErr  error
	setErr  error
	setKeys []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]*dto.CategoryDTO{}}
}

func (m *memCache) Get(_ context.Context, key string) ([]*dto.CategoryDTO, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, items []*dto.CategoryDTO) error {
	m.setKeys = append(m.setKeys, key)
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = items
	return nil
}

func TestHandler_NormalisesQueryAndLimit(t *testing.T) {
	rm := &fakeCategories{items: []*dto.CategoryDTO{{ID: 1, Title: "Toys"}}}
	h := NewHandler(rm, nil, time.Second)

	items, err := h.Execute(context.Background(), Request{Query: "  ToYs ", Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "toys", rm.gotContains)
	assert.Equal(t, MaxLimit, rm.gotLimit)
}

func TestHandler_EmptyIsNotAnError(t *testing.T) {
	h := NewHandler(&fakeCategories{}, nil, 0)

	items, err := h.Execute(context.Background(), Request{Query: "garden"})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestHandler_StoreFailureIsQueryError(t *testing.T) {
	h := NewHandler(&fakeCategories{err: errors.New("boom")}, newMemCache(), time.Second)

	_, err := h.Execute(context.Background(), Request{})
	assert.True(t, domain.IsQueryError(err))
}

func TestHandler_ServesFromCache(t *testing.T) {
	rm := &fakeCategories{items: []*dto.CategoryDTO{{ID: 2, Title: "Books"}}}
	cache := newMemCache()
	h := NewHandler(rm, cache, time.Second)

	first, err := h.Execute(context.Background(), Request{Query: "Book"})
	require.NoError(t, err)
	second, err := h.Execute(context.Background(), Request{Query: "BOOK"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, rm.calls)
	assert.Equal(t, []string{"categories:50:book"}, cache.setKeys)
}

func TestHandler_CacheFailuresAreBypassed(t *testing.T) {
	rm := &fakeCategories{items: []*dto.CategoryDTO{{ID: 2, Title: "Books"}}}
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	h := NewHandler(rm, cache, time.Second)

	items, err := h.Execute(context.Background(), Request{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, rm.calls)
}

func TestHandler_FailuresAreNotCached(t *testing.T) {
	cache := newMemCache()
	h := NewHandler(&fakeCategories{err: errors.New("boom")}, cache, time.Second)

	_, err := h.Execute(context.Background(), Request{})
	require.Error(t, err)
	assert.Empty(t, cache.setKeys)
}

func testCatalog() catalogtest.Catalog {
	return catalogtest.Catalog{Categories: []catalogtest.Category{
		{ID: 1, Title: "Электроника"},
		{ID: 2, Title: "Toys & Games"},
		{ID: 3, Title: "Board games", ParentID: func() *int64 { v := int64(2); return &v }(), Level: 1},
		{ID: 4, Title: "Books"},
	}}
}

func TestSQLCategoryQuery(t *testing.T) {
	q := NewSQLCategoryQuery(catalogtest.OpenSQLite(t, testCatalog()))
	ctx := context.Background()

	all, err := q.ListCategories(ctx, "", 0)
	require.NoError(t, err)
	titles := make([]string, 0, len(all))
	for _, c := range all {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"Board games", "Books", "Toys & Games", "Электроника"}, titles)

	games, err := q.ListCategories(ctx, "game", 0)
	require.NoError(t, err)
	assert.Equal(t, []*dto.CategoryDTO{{ID: 3, Title: "Board games"}, {ID: 2, Title: "Toys & Games"}}, games)

	cyr, err := q.ListCategories(ctx, "электро", 0)
	require.NoError(t, err)
	assert.Equal(t, []*dto.CategoryDTO{{ID: 1, Title: "Электроника"}}, cyr)

	limited, err := q.ListCategories(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := q.ListCategories(ctx, "%", 0)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSQLCategoryQuery_ClosedDB(t *testing.T) {
	db := catalogtest.OpenSQLite(t, testCatalog())
	q := NewSQLCategoryQuery(db)
	require.NoError(t, db.Close())

	_, err := q.ListCategories(context.Background(), "", 0)
	assert.True(t, domain.IsQueryError(err))
}

func TestPgxCategoryQuery(t *testing.T) {
	q := NewPgxCategoryQuery(catalogtest.OpenPostgres(t, testCatalog()))

	games, err := q.ListCategories(context.Background(), "game", 0)
	require.NoError(t, err)
	assert.Len(t, games, 2)

	none, err := q.ListCategories(context.Background(), "garden", 0)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSpannerCategoryQuery(t *testing.T) {
	q := NewSpannerCategoryQuery(catalogtest.OpenSpanner(t, testCatalog()))

	cyr, err := q.ListCategories(context.Background(), "электро", 0)
	require.NoError(t, err)
	assert.Equal(t, []*dto.CategoryDTO{{ID: 1, Title: "Электроника"}}, cyr)
}
