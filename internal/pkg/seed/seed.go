// Package seed loads catalog fixtures into the supported stores.
package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cloud.google.com/go/spanner"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/murkotick/gift-finder-service/internal/models/m_category"
	"github.com/murkotick/gift-finder-service/internal/models/m_product"
	"github.com/murkotick/gift-finder-service/internal/pkg/committer"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
)

type Category struct {
	ID          int64  `json:"id"`
	ParentID    *int64 `json:"parent_id,omitempty"`
	Title       string `json:"title"`
	Level       int64  `json:"level,omitempty"`
	RelativeURL string `json:"relative_url,omitempty"`
}

type Product struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	ImageURL   *string `json:"image_url,omitempty"`
	ProductURL string  `json:"product_url,omitempty"`
	Categories []int64 `json:"categories"`
}

// Catalog is a self-contained set of rows. Categories are inserted in order,
// so parents must precede their children.
type Catalog struct {
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
}

// LoadFile decodes a JSON catalog.
func LoadFile(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read %s: %w", path, err)
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return c, nil
}

// SQL inserts c through database/sql using '?' placeholders.
func SQL(ctx context.Context, db *sql.DB, c Catalog) error {
	return insertAll(c, store.DialectSQLite, func(query string, args []interface{}) error {
		_, err := db.ExecContext(ctx, query, args...)
		return err
	})
}

// Postgres inserts c through a pgx pool.
func Postgres(ctx context.Context, pool *pgxpool.Pool, c Catalog) error {
	return insertAll(c, store.DialectPostgres, func(query string, args []interface{}) error {
		_, err := pool.Exec(ctx, query, args...)
		return err
	})
}

// Spanner commits c as an ordered mutation plan.
func Spanner(ctx context.Context, client *spanner.Client, c Catalog) error {
	return committer.NewAdapter(client).Apply(ctx, committer.NewPlan(Mutations(c)...))
}

// Mutations returns the insert mutations for c, parents first.
func Mutations(c Catalog) []*spanner.Mutation {
	muts := make([]*spanner.Mutation, 0, len(c.Categories)+2*len(c.Products))
	for _, cat := range c.Categories {
		muts = append(muts, m_category.InsertMutation(categoryValues(cat)))
	}
	for _, p := range c.Products {
		muts = append(muts, m_product.InsertMutation(productValues(p)))
	}
	for _, p := range c.Products {
		for _, cid := range p.Categories {
			muts = append(muts, m_category.LinkMutation(p.ID, cid))
		}
	}
	return muts
}

func insertAll(c Catalog, d store.Dialect, exec func(string, []interface{}) error) error {
	insertCategory := insertSQL(d, m_category.TableName, m_category.Columns())
	insertProduct := insertSQL(d, m_product.TableName, m_product.Columns())
	insertLink := insertSQL(d, m_category.LinkTableName,
		[]string{m_category.ColLinkProductID, m_category.ColLinkCategoryID})

	for _, cat := range c.Categories {
		if err := exec(insertCategory, m_category.InsertArgs(categoryValues(cat))); err != nil {
			return fmt.Errorf("insert category %d: %w", cat.ID, err)
		}
	}
	for _, p := range c.Products {
		if err := exec(insertProduct, m_product.InsertArgs(productValues(p))); err != nil {
			return fmt.Errorf("insert product %d: %w", p.ID, err)
		}
		for _, cid := range p.Categories {
			if err := exec(insertLink, []interface{}{p.ID, cid}); err != nil {
				return fmt.Errorf("link product %d to category %d: %w", p.ID, cid, err)
			}
		}
	}
	return nil
}

func insertSQL(d store.Dialect, table string, cols []string) string {
	ph := make([]string, len(cols))
	for i := range cols {
		if d == store.DialectPostgres {
			ph[i] = "$" + strconv.Itoa(i+1)
		} else {
			ph[i] = "?"
		}
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), strings.Join(ph, ", "))
}

func categoryValues(c Category) map[string]interface{} {
	return m_category.BuildInsertMap(c.ID, c.ParentID, c.Title, c.Level, c.RelativeURL)
}

func productValues(p Product) map[string]interface{} {
	return m_product.BuildInsertMap(p.ID, p.Title, p.Price, p.ImageURL, p.ProductURL)
}
