// Package export turns stored product rows into flat records for CSV and
// JSON consumers.
package export

import (
	"database/sql"
	"fmt"
	"io"

	"github.com/auchan-scraper/auchan/storage/db"
	"github.com/gocarina/gocsv"
)

// Record is one product row with NULL columns as nil.
type Record struct {
	ProductID    int64   `csv:"product_id" json:"product_id"`
	ProductName  *string `csv:"product_name" json:"product_name"`
	CategoryName *string `csv:"category_name" json:"category_name"`
	Price        *int64  `csv:"price" json:"price"`
	Currency     *string `csv:"currency" json:"currency"`
	Volume       *int64  `csv:"volume" json:"volume"`
	Unit         *string `csv:"unit" json:"unit"`
	VolumeInfo   *string `csv:"volume_info" json:"volume_info"`
	PackageUnit  *string `csv:"package_unit" json:"package_unit"`
	PackageSize  *int64  `csv:"package_size" json:"package_size"`
}

func FromProducts(products []db.Auchan) []Record {
	records := make([]Record, 0, len(products))
	for _, p := range products {
		records = append(records, Record{
			ProductID:    p.ProductID,
			ProductName:  nullString(p.ProductName),
			CategoryName: nullString(p.CategoryName),
			Price:        nullInt(p.Price),
			Currency:     nullString(p.Currency),
			Volume:       nullInt(p.Volume),
			Unit:         nullString(p.Unit),
			VolumeInfo:   nullString(p.VolumeInfo),
			PackageUnit:  nullString(p.PackageUnit),
			PackageSize:  nullInt(p.PackageSize),
		})
	}
	return records
}

// WriteCSV writes a header row followed by one line per record. NULL
// columns become empty cells.
func WriteCSV(w io.Writer, records []Record) error {
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Header is the first line WriteCSV emits.
const Header = "product_id,product_name,category_name,price,currency,volume,unit,volume_info,package_unit,package_size"

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
