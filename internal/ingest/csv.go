// Package ingest reads the delimited source extracts into raw record sets.
// It is the ingestion collaborator at the boundary of the pipeline: a header
// row is skipped, the field delimiter is configurable, and empty fields
// become nil. Field values are staged verbatim; all cleaning happens in the
// transformation engine.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// dateLayout is the date format used by the source extracts.
const dateLayout = "2006-01-02"

// Loader reads source extracts from a directory.
type Loader struct {
	dir       string
	delimiter rune
	files     map[string]string
}

// NewLoader creates a Loader for the given source configuration.
func NewLoader(cfg types.Config) *Loader {
	return &Loader{
		dir:       cfg.Sources.Dir,
		delimiter: cfg.DelimiterRune(),
		files:     cfg.Sources.Files,
	}
}

// Snapshot reads every configured source file into one raw snapshot. A
// missing or unreadable file aborts the load; producing readable extracts
// is the upstream system's responsibility.
func (l *Loader) Snapshot() (types.RawSnapshot, error) {
	if l.dir == "" {
		return types.RawSnapshot{}, types.ErrSourceDirEmpty
	}

	var snap types.RawSnapshot
	var err error

	if snap.Customers, err = l.customers(); err != nil {
		return types.RawSnapshot{}, &types.EntityError{Entity: types.SourceCrmCustomers, Err: err}
	}
	if snap.Products, err = l.products(); err != nil {
		return types.RawSnapshot{}, &types.EntityError{Entity: types.SourceCrmProducts, Err: err}
	}
	if snap.Sales, err = l.sales(); err != nil {
		return types.RawSnapshot{}, &types.EntityError{Entity: types.SourceCrmSales, Err: err}
	}
	if snap.ErpCustomers, err = l.erpCustomers(); err != nil {
		return types.RawSnapshot{}, &types.EntityError{Entity: types.SourceErpCustomers, Err: err}
	}
	if snap.ErpLocations, err = l.erpLocations(); err != nil {
		return types.RawSnapshot{}, &types.EntityError{Entity: types.SourceErpLocations, Err: err}
	}
	if snap.ErpCategories, err = l.erpCategories(); err != nil {
		return types.RawSnapshot{}, &types.EntityError{Entity: types.SourceErpCategories, Err: err}
	}
	return snap, nil
}

// records opens one source file and returns its data rows with the header
// row skipped. Rows may have varying field counts; short rows are padded
// with empty fields by the per-entity parsers.
func (l *Loader) records(key string) ([][]string, error) {
	name, ok := l.files[key]
	if !ok {
		return nil, types.ErrSourceFileUnknown
	}
	path := filepath.Join(l.dir, name)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrRawSetMissing, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = l.delimiter
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

func (l *Loader) customers() ([]types.RawCustomer, error) {
	rows, err := l.records(types.SourceCrmCustomers)
	if err != nil {
		return nil, err
	}
	out := make([]types.RawCustomer, 0, len(rows))
	for _, row := range rows {
		out = append(out, types.RawCustomer{
			BusinessID:  optInt(field(row, 0)),
			Key:         optString(field(row, 1)),
			FirstName:   optString(field(row, 2)),
			LastName:    optString(field(row, 3)),
			MaritalCode: optString(field(row, 4)),
			GenderCode:  optString(field(row, 5)),
			CreatedAt:   optDate(field(row, 6)),
		})
	}
	return out, nil
}

func (l *Loader) products() ([]types.RawProduct, error) {
	rows, err := l.records(types.SourceCrmProducts)
	if err != nil {
		return nil, err
	}
	out := make([]types.RawProduct, 0, len(rows))
	for _, row := range rows {
		out = append(out, types.RawProduct{
			ProductID:  optInt(field(row, 0)),
			ProductKey: optString(field(row, 1)),
			Name:       optString(field(row, 2)),
			Cost:       optDecimal(field(row, 3)),
			LineCode:   optString(field(row, 4)),
			StartDate:  optDate(field(row, 5)),
			EndDate:    optDate(field(row, 6)),
		})
	}
	return out, nil
}

func (l *Loader) sales() ([]types.RawSalesLine, error) {
	rows, err := l.records(types.SourceCrmSales)
	if err != nil {
		return nil, err
	}
	out := make([]types.RawSalesLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, types.RawSalesLine{
			OrderNumber:        optString(field(row, 0)),
			ProductKey:         optString(field(row, 1)),
			CustomerBusinessID: optInt(field(row, 2)),
			OrderDateInt:       optInt(field(row, 3)),
			ShipDateInt:        optInt(field(row, 4)),
			DueDateInt:         optInt(field(row, 5)),
			SalesAmount:        optDecimal(field(row, 6)),
			Quantity:           optInt(field(row, 7)),
			UnitPrice:          optDecimal(field(row, 8)),
		})
	}
	return out, nil
}

func (l *Loader) erpCustomers() ([]types.RawErpCustomer, error) {
	rows, err := l.records(types.SourceErpCustomers)
	if err != nil {
		return nil, err
	}
	out := make([]types.RawErpCustomer, 0, len(rows))
	for _, row := range rows {
		out = append(out, types.RawErpCustomer{
			ExternalID: optString(field(row, 0)),
			BirthDate:  optDate(field(row, 1)),
			GenderText: optString(field(row, 2)),
		})
	}
	return out, nil
}

func (l *Loader) erpLocations() ([]types.RawErpLocation, error) {
	rows, err := l.records(types.SourceErpLocations)
	if err != nil {
		return nil, err
	}
	out := make([]types.RawErpLocation, 0, len(rows))
	for _, row := range rows {
		out = append(out, types.RawErpLocation{
			ExternalID:  optString(field(row, 0)),
			CountryText: optString(field(row, 1)),
		})
	}
	return out, nil
}

func (l *Loader) erpCategories() ([]types.RawErpCategory, error) {
	rows, err := l.records(types.SourceErpCategories)
	if err != nil {
		return nil, err
	}
	out := make([]types.RawErpCategory, 0, len(rows))
	for _, row := range rows {
		out = append(out, types.RawErpCategory{
			CategoryID:      optString(field(row, 0)),
			Category:        optString(field(row, 1)),
			Subcategory:     optString(field(row, 2)),
			MaintenanceFlag: optString(field(row, 3)),
		})
	}
	return out, nil
}

// field returns the i-th field of a row, or empty when the row is short.
func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func optString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// optInt parses an integer field. Empty and non-numeric values become nil:
// staging never rejects a record over a malformed field.
func optInt(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func optDecimal(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// optDate parses a date field. Empty and unparseable values become nil.
func optDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
