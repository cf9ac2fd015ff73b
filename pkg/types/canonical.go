package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canonical entities are the transformation engine's output: one logical
// record per business key, values normalized, malformed input coerced to a
// sentinel or null.

// CanonicalCustomer is the surviving, normalized record for one customer
// business id.
type CanonicalCustomer struct {
	BusinessID    int64
	Key           string
	FirstName     string
	LastName      string
	MaritalStatus string // Single, Married, or N/A
	Gender        string // Male, Female, or N/A
	CreatedAt     *time.Time
}

// CanonicalProduct is a normalized product row with derived category id,
// cleaned product key, and chained end date. EndDate is nil exactly for the
// most recent start date in the key's chain.
type CanonicalProduct struct {
	ProductID  int64
	CategoryID string
	ProductKey string
	Name       string
	Cost       decimal.Decimal
	Line       string // Mountain, Road, Touring, Other Sales, or N/A
	StartDate  *time.Time
	EndDate    *time.Time
}

// CanonicalSalesLine is a repaired sales detail row. Invalid date integers
// become nil; sales amount and unit price are made consistent with
// quantity x abs(unit price) where the inputs allow it.
type CanonicalSalesLine struct {
	OrderNumber        string
	ProductKey         string
	CustomerBusinessID *int64
	OrderDate          *time.Time
	ShipDate           *time.Time
	DueDate            *time.Time
	SalesAmount        *decimal.Decimal
	Quantity           *int64
	UnitPrice          *decimal.Decimal
}

// CanonicalErpCustomer is a normalized ERP demographics row with the "NAS"
// id prefix stripped and future birth dates nulled.
type CanonicalErpCustomer struct {
	ExternalID string
	BirthDate  *time.Time
	Gender     string // Male, Female, or N/A
}

// CanonicalErpLocation is a normalized ERP location row with dashes stripped
// from the id and the country mapped through the lookup table.
type CanonicalErpLocation struct {
	ExternalID string
	Country    string
}

// CanonicalErpCategory is an ERP category row, passed through unchanged.
type CanonicalErpCategory struct {
	CategoryID      string
	Category        string
	Subcategory     string
	MaintenanceFlag string
}

// CanonicalSnapshot is one full canonical snapshot: the engine's output for
// a run.
type CanonicalSnapshot struct {
	Customers     []CanonicalCustomer
	Products      []CanonicalProduct
	Sales         []CanonicalSalesLine
	ErpCustomers  []CanonicalErpCustomer
	ErpLocations  []CanonicalErpLocation
	ErpCategories []CanonicalErpCategory
}
