package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Raw entities mirror the staged source extracts verbatim: no uniqueness or
// null guarantees. Nullable columns are pointer fields; nil means the source
// field was empty.

// RawCustomer is a staged CRM customer row.
type RawCustomer struct {
	BusinessID  *int64
	Key         *string
	FirstName   *string
	LastName    *string
	MaritalCode *string
	GenderCode  *string
	CreatedAt   *time.Time
}

// RawProduct is a staged CRM product row.
type RawProduct struct {
	ProductID  *int64
	ProductKey *string
	Name       *string
	Cost       *decimal.Decimal
	LineCode   *string
	StartDate  *time.Time
	EndDate    *time.Time
}

// RawSalesLine is a staged CRM sales detail row. Order, ship, and due dates
// arrive as 8-digit integers (YYYYMMDD) and are validated downstream.
type RawSalesLine struct {
	OrderNumber        *string
	ProductKey         *string
	CustomerBusinessID *int64
	OrderDateInt       *int64
	ShipDateInt        *int64
	DueDateInt         *int64
	SalesAmount        *decimal.Decimal
	Quantity           *int64
	UnitPrice          *decimal.Decimal
}

// RawErpCustomer is a staged ERP customer demographics row.
type RawErpCustomer struct {
	ExternalID *string
	BirthDate  *time.Time
	GenderText *string
}

// RawErpLocation is a staged ERP customer location row.
type RawErpLocation struct {
	ExternalID  *string
	CountryText *string
}

// RawErpCategory is a staged ERP product category row.
type RawErpCategory struct {
	CategoryID      *string
	Category        *string
	Subcategory     *string
	MaintenanceFlag *string
}

// RawSnapshot is one full staged snapshot: every raw record set for a run.
type RawSnapshot struct {
	Customers     []RawCustomer
	Products      []RawProduct
	Sales         []RawSalesLine
	ErpCustomers  []RawErpCustomer
	ErpLocations  []RawErpLocation
	ErpCategories []RawErpCategory
}

// Empty reports whether the snapshot contains no records at all.
func (s RawSnapshot) Empty() bool {
	return len(s.Customers) == 0 &&
		len(s.Products) == 0 &&
		len(s.Sales) == 0 &&
		len(s.ErpCustomers) == 0 &&
		len(s.ErpLocations) == 0 &&
		len(s.ErpCategories) == 0
}
