package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

func TestTransformIdempotent(t *testing.T) {
	e := NewEngine(types.DefaultMappings())

	raw := types.RawSnapshot{
		Customers: []types.RawCustomer{
			{BusinessID: intp(1), Key: strp("AW1"), FirstName: strp("Jon"), CreatedAt: datep(t, "2024-01-01")},
			{BusinessID: intp(1), Key: strp("AW1"), FirstName: strp("Jonathan"), CreatedAt: datep(t, "2024-06-01")},
			{BusinessID: intp(2), Key: strp("AW2"), GenderCode: strp("F")},
		},
		Products: []types.RawProduct{
			{ProductID: intp(10), ProductKey: strp("AB-CO-1234"), LineCode: strp("M"), StartDate: datep(t, "2020-01-01")},
			{ProductID: intp(11), ProductKey: strp("AB-CO-1234"), LineCode: strp("M"), StartDate: datep(t, "2021-01-01")},
		},
		Sales: []types.RawSalesLine{
			{OrderNumber: strp("SO1"), ProductKey: strp("1234"), CustomerBusinessID: intp(1),
				OrderDateInt: intp(20240115), Quantity: intp(2), SalesAmount: decp(t, "100")},
		},
		ErpCustomers:  []types.RawErpCustomer{{ExternalID: strp("NASAW1"), GenderText: strp("Female")}},
		ErpLocations:  []types.RawErpLocation{{ExternalID: strp("AW-1"), CountryText: strp("US")}},
		ErpCategories: []types.RawErpCategory{{CategoryID: strp("AB_CO"), Category: strp("Bikes")}},
	}

	first := e.Transform(raw)
	second := e.Transform(raw)
	assert.Equal(t, first, second)

	// Spot-check cross-entity shape.
	assert.Len(t, first.Customers, 2)
	assert.Len(t, first.Products, 2)
	assert.Len(t, first.Sales, 1)
	assert.Equal(t, "AW1", first.ErpCustomers[0].ExternalID)
	assert.Equal(t, "USA", first.ErpLocations[0].Country)
}
