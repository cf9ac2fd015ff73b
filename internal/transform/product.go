package transform

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// Products normalizes raw products and derives the category id, cleaned
// product key, and end-date chain.
//
// category_id is the first 5 characters of the raw product key with '-'
// replaced by '_'; the cleaned product key is the raw key from position 7 to
// the end. A null cost becomes 0 (negative inputs pass through uncorrected).
// End dates are recomputed per cleaned key: rows sorted ascending by start
// date, each row ends one day before its successor starts, and the last row
// in the chain has a null end date. The raw end date column is ignored.
func (e *Engine) Products(raws []types.RawProduct) []types.CanonicalProduct {
	out := make([]types.CanonicalProduct, 0, len(raws))
	for _, raw := range raws {
		rawKey := derefString(raw.ProductKey)
		out = append(out, types.CanonicalProduct{
			ProductID:  derefInt(raw.ProductID),
			CategoryID: deriveCategoryID(rawKey),
			ProductKey: cleanProductKey(rawKey),
			Name:       strings.TrimSpace(derefString(raw.Name)),
			Cost:       derefDecimal(raw.Cost),
			Line:       types.Lookup(e.maps.ProductLine, raw.LineCode),
			StartDate:  raw.StartDate,
		})
	}

	chainEndDates(out)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ProductKey != out[j].ProductKey {
			return out[i].ProductKey < out[j].ProductKey
		}
		return dateBefore(out[i].StartDate, out[j].StartDate)
	})
	return out
}

// deriveCategoryID returns the first 5 characters of the raw key with '-'
// replaced by '_'. Shorter keys use the whole key.
func deriveCategoryID(rawKey string) string {
	prefix := rawKey
	if len(prefix) > 5 {
		prefix = prefix[:5]
	}
	return strings.ReplaceAll(prefix, "-", "_")
}

// cleanProductKey returns the raw key from character position 7 to the end,
// or empty when the key is too short.
func cleanProductKey(rawKey string) string {
	if len(rawKey) <= 6 {
		return ""
	}
	return rawKey[6:]
}

// chainEndDates computes end dates in place: for each cleaned product key,
// rows sorted ascending by start date, end date of row i is the start date
// of row i+1 minus one day, and the last row gets nil.
func chainEndDates(products []types.CanonicalProduct) {
	byKey := make(map[string][]int)
	for i := range products {
		byKey[products[i].ProductKey] = append(byKey[products[i].ProductKey], i)
	}

	for _, idxs := range byKey {
		sort.SliceStable(idxs, func(a, b int) bool {
			return dateBefore(products[idxs[a]].StartDate, products[idxs[b]].StartDate)
		})
		for n, idx := range idxs {
			if n == len(idxs)-1 {
				products[idx].EndDate = nil
				continue
			}
			next := products[idxs[n+1]].StartDate
			if next == nil {
				products[idx].EndDate = nil
				continue
			}
			end := next.AddDate(0, 0, -1)
			products[idx].EndDate = &end
		}
	}
}

// dateBefore orders nullable dates ascending with nil first.
func dateBefore(a, b *time.Time) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		return true
	case b == nil:
		return false
	}
	return a.Before(*b)
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
