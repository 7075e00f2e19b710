// Package seed fills the auchan table with plausible fake products for local
// development and demos.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/auchan-scraper/auchan/storage"
	"github.com/auchan-scraper/auchan/storage/db"
	"github.com/brianvoe/gofakeit/v7"
)

var (
	categories = []string{"Dairy", "Bakery", "Beverages", "Grocery", "Frozen", "Household", "Personal care"}
	currencies = []string{"UAH", "EUR"}
	units      = []string{"ml", "l", "g", "kg", "pcs"}
	packUnits  = []string{"pcs", "pack", "box"}
)

// Products builds n insert params from f. A fixed seed on f gives the same
// products every time.
func Products(n int, f *gofakeit.Faker) []db.InsertProductParams {
	params := make([]db.InsertProductParams, 0, n)
	for i := 0; i < n; i++ {
		unit := f.RandomString(units)
		volume := int64(f.IntRange(1, 2000))
		packSize := int64(f.IntRange(1, 24))

		params = append(params, db.InsertProductParams{
			ProductName:  text(f.ProductName()),
			CategoryName: text(f.RandomString(categories)),
			Price:        integer(int64(f.IntRange(500, 99999))),
			Currency:     text(f.RandomString(currencies)),
			Volume:       integer(volume),
			Unit:         text(unit),
			VolumeInfo:   text(fmt.Sprintf("%d %s", volume, unit)),
			PackageUnit:  text(f.RandomString(packUnits)),
			PackageSize:  integer(packSize),
		})
	}
	return params
}

// Run inserts n fake products in a single transaction and returns how many
// rows were written.
func Run(ctx context.Context, store *storage.Storage, n int, f *gofakeit.Faker) (int, error) {
	err := storage.WithTransaction(ctx, store.DB(), func(tx *sql.Tx) error {
		q := store.Queries.WithTx(tx)
		for i, p := range Products(n, f) {
			if _, err := q.InsertProduct(ctx, p); err != nil {
				return fmt.Errorf("insert product %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("seeded products", "count", n)
	return n, nil
}

func text(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func integer(n int64) sql.NullInt64 {
	return sql.NullInt64{Int64: n, Valid: true}
}
