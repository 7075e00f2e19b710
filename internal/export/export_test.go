package export

import (
	"bytes"
	"database/sql"
	"strings"
	"testing"

	"github.com/auchan-scraper/auchan/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromProducts(t *testing.T) {
	products := []db.Auchan{
		{
			ProductID:    7,
			ProductName:  sql.NullString{String: "Sour cream 15%", Valid: true},
			CategoryName: sql.NullString{String: "Dairy", Valid: true},
			Price:        sql.NullInt64{Int64: 3150, Valid: true},
			Currency:     sql.NullString{String: "UAH", Valid: true},
			Volume:       sql.NullInt64{Int64: 350, Valid: true},
			Unit:         sql.NullString{String: "g", Valid: true},
		},
	}

	records := FromProducts(products)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, int64(7), r.ProductID)
	require.NotNil(t, r.ProductName)
	assert.Equal(t, "Sour cream 15%", *r.ProductName)
	require.NotNil(t, r.Price)
	assert.Equal(t, int64(3150), *r.Price)
	assert.Nil(t, r.VolumeInfo)
	assert.Nil(t, r.PackageUnit)
	assert.Nil(t, r.PackageSize)
}

func TestFromProducts_Empty(t *testing.T) {
	records := FromProducts(nil)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestWriteCSV(t *testing.T) {
	records := FromProducts([]db.Auchan{
		{
			ProductID:    1,
			ProductName:  sql.NullString{String: "Milk", Valid: true},
			CategoryName: sql.NullString{String: "Dairy", Valid: true},
			Price:        sql.NullInt64{Int64: 4290, Valid: true},
			Currency:     sql.NullString{String: "UAH", Valid: true},
			Volume:       sql.NullInt64{Int64: 900, Valid: true},
			Unit:         sql.NullString{String: "ml", Valid: true},
			VolumeInfo:   sql.NullString{String: "bottle", Valid: true},
			PackageUnit:  sql.NullString{String: "pcs", Valid: true},
			PackageSize:  sql.NullInt64{Int64: 1, Valid: true},
		},
		{
			ProductID:   2,
			ProductName: sql.NullString{String: "Bread", Valid: true},
		},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "1,Milk,Dairy,4290,UAH,900,ml,bottle,pcs,1", lines[1])
	assert.Equal(t, "2,Bread,,,,,,,,", lines[2])
}

func TestWriteCSV_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []Record{}))
	assert.Equal(t, Header, strings.TrimSpace(buf.String()))
}
