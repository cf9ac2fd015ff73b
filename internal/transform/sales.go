package transform

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// Plausible calendar bounds for 8-digit integer dates.
const (
	minDateInt = 19000101
	maxDateInt = 20500101
)

// Sales validates the integer date columns and repairs the sales arithmetic
// so that sales_amount = quantity x abs(unit_price) wherever the inputs
// allow it. No rule raises an error; invalid values become null.
func (e *Engine) Sales(raws []types.RawSalesLine) []types.CanonicalSalesLine {
	out := make([]types.CanonicalSalesLine, 0, len(raws))
	for _, raw := range raws {
		amount, price := repairAmounts(raw.SalesAmount, raw.Quantity, raw.UnitPrice)
		out = append(out, types.CanonicalSalesLine{
			OrderNumber:        strings.TrimSpace(derefString(raw.OrderNumber)),
			ProductKey:         strings.TrimSpace(derefString(raw.ProductKey)),
			CustomerBusinessID: raw.CustomerBusinessID,
			OrderDate:          parseDateInt(raw.OrderDateInt),
			ShipDate:           parseDateInt(raw.ShipDateInt),
			DueDate:            parseDateInt(raw.DueDateInt),
			SalesAmount:        amount,
			Quantity:           raw.Quantity,
			UnitPrice:          price,
		})
	}
	return out
}

// parseDateInt converts an 8-digit YYYYMMDD integer to a date. Null,
// non-positive, wrong-width, out-of-range, and non-calendar values all
// become nil.
func parseDateInt(v *int64) *time.Time {
	if v == nil {
		return nil
	}
	n := *v
	if n <= 0 || len(strconv.FormatInt(n, 10)) != 8 {
		return nil
	}
	if n < minDateInt || n > maxDateInt {
		return nil
	}
	t, err := time.Parse("20060102", strconv.FormatInt(n, 10))
	if err != nil {
		return nil
	}
	return &t
}

// repairAmounts applies the sales consistency rules against the raw values:
//
//   - sales_amount: recomputed as quantity x abs(unit_price) when null,
//     non-positive, or inconsistent with that product; otherwise kept.
//   - unit_price: derived as sales_amount / quantity when null (nil when the
//     quantity is null or zero); absolute value when non-positive; otherwise
//     kept.
//
// Both rules read the raw columns, so the derived unit price uses the given
// sales amount, not the recomputed one.
func repairAmounts(sales *decimal.Decimal, qty *int64, price *decimal.Decimal) (*decimal.Decimal, *decimal.Decimal) {
	var expected *decimal.Decimal
	if qty != nil && price != nil {
		v := decimal.NewFromInt(*qty).Mul(price.Abs())
		expected = &v
	}

	outSales := sales
	switch {
	case sales == nil || sales.Sign() <= 0:
		outSales = expected
	case expected != nil && !sales.Equal(*expected):
		outSales = expected
	}

	var outPrice *decimal.Decimal
	switch {
	case price == nil:
		if sales != nil && qty != nil && *qty != 0 {
			v := sales.Div(decimal.NewFromInt(*qty))
			outPrice = &v
		}
	case price.Sign() <= 0:
		v := price.Abs()
		outPrice = &v
	default:
		outPrice = price
	}

	return outSales, outPrice
}
