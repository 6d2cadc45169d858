package search_gifts

import (
	"fmt"

	"github.com/murkotick/gift-finder-service/internal/pkg/catalogtest"
)

const (
	catElectronics int64 = 1
	catToys        int64 = 2
	catPrefix      int64 = 3
	catBooks       int64 = 4
)

// giftCatalog is shared by the store-backed tests. Products 13 and 15 sit in
// two categories each, so the join yields 8 rows for 6 products.
func giftCatalog() catalogtest.Catalog {
	return catalogtest.Catalog{
		Categories: []catalogtest.Category{
			{ID: catElectronics, Title: "Электроника", RelativeURL: "/catalog/electronics/"},
			{ID: catToys, Title: "Toys & Games"},
			{ID: catPrefix, Title: "prefiX-X-suffix", ParentID: ptr(catToys), Level: 1},
			{ID: catBooks, Title: "Books"},
		},
		Products: []catalogtest.Product{
			{ID: 10, Title: "Headphones", Price: 3000, ImageURL: catalogtest.StrPtr("https://img/10.png"), ProductURL: "https://shop/10", Categories: []int64{catElectronics}},
			{ID: 11, Title: "Board game", Price: 5000, ProductURL: "https://shop/11", Categories: []int64{catToys}},
			{ID: 12, Title: "Drone", Price: 20000, ProductURL: "https://shop/12", Categories: []int64{catElectronics}},
			{ID: 13, Title: "Laptop", Price: 85000, ProductURL: "https://shop/13", Categories: []int64{catElectronics, catBooks}},
			{ID: 14, Title: "Puzzle", Price: 1200, Categories: []int64{catPrefix}},
			{ID: 15, Title: "Novel", Price: 700, ProductURL: "https://shop/15", Categories: []int64{catBooks, catToys}},
		},
	}
}

// manyMatches returns n products in one category, all priced within "low".
func manyMatches(n int) catalogtest.Catalog {
	c := catalogtest.Catalog{Categories: []catalogtest.Category{{ID: 1, Title: "Gadgets"}}}
	for i := 1; i <= n; i++ {
		c.Products = append(c.Products, catalogtest.Product{
			ID:         int64(100 + i),
			Title:      fmt.Sprintf("Gadget %d", i),
			Price:      float64(100 * i),
			ProductURL: fmt.Sprintf("https://shop/%d", 100+i),
			Categories: []int64{1},
		})
	}
	return c
}

func ptr(v int64) *int64 {
	return &v
}
