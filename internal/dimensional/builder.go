// Package dimensional implements the dimensional modeling layer: it assigns
// dense surrogate keys and assembles the conformed customer dimension,
// product dimension, and sales fact from the canonical entity sets.
package dimensional

import (
	"sort"
	"time"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// Build assembles a full gold snapshot. Fact assembly is ordered strictly
// after both dimension builds: it resolves business keys against the
// surrogate keys the dimensions just assigned.
func Build(canon types.CanonicalSnapshot) types.GoldSnapshot {
	customers := BuildCustomers(canon.Customers, canon.ErpCustomers, canon.ErpLocations)
	products := BuildProducts(canon.Products, canon.ErpCategories)
	return types.GoldSnapshot{
		Customers: customers,
		Products:  products,
		Sales:     BuildFact(canon.Sales, customers, products),
	}
}

// BuildCustomers assembles the customer dimension: canonical customers
// sorted by business id ascending, surrogate keys 1..N in that order, ERP
// demographics and location left-joined by the customer key. The CRM gender
// wins unless it is N/A, in which case the ERP gender is used.
func BuildCustomers(customers []types.CanonicalCustomer, erp []types.CanonicalErpCustomer, locations []types.CanonicalErpLocation) []types.DimCustomer {
	erpByID := make(map[string]types.CanonicalErpCustomer, len(erp))
	for _, c := range erp {
		erpByID[c.ExternalID] = c
	}
	locByID := make(map[string]types.CanonicalErpLocation, len(locations))
	for _, l := range locations {
		locByID[l.ExternalID] = l
	}

	sorted := make([]types.CanonicalCustomer, len(customers))
	copy(sorted, customers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BusinessID < sorted[j].BusinessID
	})

	out := make([]types.DimCustomer, 0, len(sorted))
	for i, c := range sorted {
		dim := types.DimCustomer{
			SurrogateKey:  int64(i + 1),
			BusinessID:    c.BusinessID,
			Key:           c.Key,
			FirstName:     c.FirstName,
			LastName:      c.LastName,
			Country:       types.NotAvailable,
			MaritalStatus: c.MaritalStatus,
			Gender:        c.Gender,
			CreatedAt:     c.CreatedAt,
		}
		if e, ok := erpByID[c.Key]; ok {
			dim.BirthDate = e.BirthDate
			if dim.Gender == types.NotAvailable && e.Gender != "" {
				dim.Gender = e.Gender
			}
		}
		if l, ok := locByID[c.Key]; ok && l.Country != "" {
			dim.Country = l.Country
		}
		out = append(out, dim)
	}
	return out
}

// BuildProducts assembles the product dimension from currently active
// products (null end date), sorted by start date then product key, with
// surrogate keys 1..M and the ERP category left-joined by category id.
func BuildProducts(products []types.CanonicalProduct, categories []types.CanonicalErpCategory) []types.DimProduct {
	catByID := make(map[string]types.CanonicalErpCategory, len(categories))
	for _, c := range categories {
		catByID[c.CategoryID] = c
	}

	active := make([]types.CanonicalProduct, 0, len(products))
	for _, p := range products {
		if p.EndDate == nil {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i], active[j]
		if !equalDates(a.StartDate, b.StartDate) {
			return beforeDates(a.StartDate, b.StartDate)
		}
		return a.ProductKey < b.ProductKey
	})

	out := make([]types.DimProduct, 0, len(active))
	for i, p := range active {
		dim := types.DimProduct{
			SurrogateKey: int64(i + 1),
			ProductID:    p.ProductID,
			ProductKey:   p.ProductKey,
			Name:         p.Name,
			CategoryID:   p.CategoryID,
			Category:     types.NotAvailable,
			Subcategory:  types.NotAvailable,
			Maintenance:  types.NotAvailable,
			Cost:         p.Cost,
			Line:         p.Line,
			StartDate:    p.StartDate,
		}
		if c, ok := catByID[p.CategoryID]; ok {
			dim.Category = c.Category
			dim.Subcategory = c.Subcategory
			dim.Maintenance = c.MaintenanceFlag
		}
		out = append(out, dim)
	}
	return out
}

// BuildFact resolves each canonical sales line's business keys to dimension
// surrogate keys. An unresolved side yields a nil surrogate key; the row is
// carried forward either way for the quality verifier.
func BuildFact(sales []types.CanonicalSalesLine, customers []types.DimCustomer, products []types.DimProduct) []types.FactSalesLine {
	productSK := make(map[string]int64, len(products))
	for _, p := range products {
		productSK[p.ProductKey] = p.SurrogateKey
	}
	customerSK := make(map[int64]int64, len(customers))
	for _, c := range customers {
		customerSK[c.BusinessID] = c.SurrogateKey
	}

	out := make([]types.FactSalesLine, 0, len(sales))
	for _, s := range sales {
		fact := types.FactSalesLine{
			OrderNumber: s.OrderNumber,
			OrderDate:   s.OrderDate,
			ShipDate:    s.ShipDate,
			DueDate:     s.DueDate,
			SalesAmount: s.SalesAmount,
			Quantity:    s.Quantity,
			UnitPrice:   s.UnitPrice,
		}
		if sk, ok := productSK[s.ProductKey]; ok {
			fact.ProductKey = &sk
		}
		if s.CustomerBusinessID != nil {
			if sk, ok := customerSK[*s.CustomerBusinessID]; ok {
				fact.CustomerKey = &sk
			}
		}
		out = append(out, fact)
	}
	return out
}

func equalDates(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func beforeDates(a, b *time.Time) bool {
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
