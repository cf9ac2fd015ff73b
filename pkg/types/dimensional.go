package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dimensional entities are the conformed gold views. Surrogate keys are
// dense integers 1..N assigned per run; they are not stable across runs if
// the input set changes.

// DimCustomer is a conformed customer dimension row: CRM master data joined
// with ERP demographics and location by the customer key.
type DimCustomer struct {
	SurrogateKey  int64
	BusinessID    int64
	Key           string
	FirstName     string
	LastName      string
	Country       string
	MaritalStatus string
	Gender        string
	BirthDate     *time.Time
	CreatedAt     *time.Time
}

// DimProduct is a conformed product dimension row for a currently active
// product, joined with its ERP category.
type DimProduct struct {
	SurrogateKey int64
	ProductID    int64
	ProductKey   string
	Name         string
	CategoryID   string
	Category     string
	Subcategory  string
	Maintenance  string
	Cost         decimal.Decimal
	Line         string
	StartDate    *time.Time
}

// FactSalesLine is a conformed sales fact row. ProductKey and CustomerKey
// carry the resolved dimension surrogate keys; nil means the business key
// had no matching dimension row, which is preserved for the quality
// verifier, never dropped.
type FactSalesLine struct {
	OrderNumber string
	ProductKey  *int64
	CustomerKey *int64
	OrderDate   *time.Time
	ShipDate    *time.Time
	DueDate     *time.Time
	SalesAmount *decimal.Decimal
	Quantity    *int64
	UnitPrice   *decimal.Decimal
}

// GoldSnapshot is one full dimensional snapshot: both dimensions and the
// fact view for a run.
type GoldSnapshot struct {
	Customers []DimCustomer
	Products  []DimProduct
	Sales     []FactSalesLine
}
