// Package verify implements the quality verifier: post-hoc assertions over
// the published silver and gold state. The verifier only reports; it never
// repairs or drops rows.
package verify

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/medallion/internal/sqlite"
	"github.com/mesh-intelligence/medallion/pkg/types"
)

// Violation is one failed quality assertion.
type Violation struct {
	Check  string // check identifier
	Entity string // table the violation was found in
	Count  int    // number of offending rows
	Detail string // human-readable description
}

func (v Violation) String() string {
	return fmt.Sprintf("%s [%s]: %d row(s): %s", v.Check, v.Entity, v.Count, v.Detail)
}

// check is one countable assertion: the query returns the number of
// offending rows.
type check struct {
	name   string
	entity string
	query  string
	detail string
}

// checks lists every quality assertion in report order.
var checks = []check{
	{
		name:   "duplicate_business_id",
		entity: types.SilverCustomers,
		query: `SELECT COUNT(*) FROM (
            SELECT business_id FROM silver_customers GROUP BY business_id HAVING COUNT(*) > 1)`,
		detail: "customer business ids must be unique after dedup",
	},
	{
		name:   "customer_surrogate_density",
		entity: types.GoldDimCustomers,
		query: `SELECT CASE WHEN COUNT(*) = 0 THEN 0
            WHEN COUNT(*) = COUNT(DISTINCT customer_key)
                AND MIN(customer_key) = 1
                AND MAX(customer_key) = COUNT(*) THEN 0
            ELSE 1 END FROM gold_dim_customers`,
		detail: "customer surrogate keys must form a contiguous 1..N range",
	},
	{
		name:   "product_surrogate_density",
		entity: types.GoldDimProducts,
		query: `SELECT CASE WHEN COUNT(*) = 0 THEN 0
            WHEN COUNT(*) = COUNT(DISTINCT product_key)
                AND MIN(product_key) = 1
                AND MAX(product_key) = COUNT(*) THEN 0
            ELSE 1 END FROM gold_dim_products`,
		detail: "product surrogate keys must form a contiguous 1..N range",
	},
	{
		name:   "unresolved_fact_product",
		entity: types.GoldFactSales,
		query:  `SELECT COUNT(*) FROM gold_fact_sales WHERE product_key IS NULL`,
		detail: "fact rows whose product key resolved to no active product",
	},
	{
		name:   "unresolved_fact_customer",
		entity: types.GoldFactSales,
		query:  `SELECT COUNT(*) FROM gold_fact_sales WHERE customer_key IS NULL`,
		detail: "fact rows whose customer id resolved to no customer",
	},
	{
		name:   "sales_arithmetic",
		entity: types.SilverSales,
		query: `SELECT COUNT(*) FROM silver_sales
            WHERE sales_amount IS NULL
               OR CAST(sales_amount AS REAL) <= 0
               OR (quantity IS NOT NULL AND unit_price IS NOT NULL
                   AND ABS(CAST(sales_amount AS REAL) - quantity * CAST(unit_price AS REAL)) > 0.000001)`,
		detail: "sales amount must equal quantity x unit price and be positive",
	},
	{
		name:   "date_order",
		entity: types.SilverSales,
		query: `SELECT COUNT(*) FROM silver_sales
            WHERE (order_date IS NOT NULL AND ship_date IS NOT NULL AND order_date > ship_date)
               OR (order_date IS NOT NULL AND due_date IS NOT NULL AND order_date > due_date)`,
		detail: "order date must not follow the ship or due date",
	},
	{
		name:   "negative_cost",
		entity: types.SilverProducts,
		query:  `SELECT COUNT(*) FROM silver_products WHERE CAST(cost AS REAL) < 0`,
		detail: "negative costs pass through the engine uncorrected",
	},
}

// Verifier runs quality assertions against an attached store.
type Verifier struct {
	db *sql.DB
}

// New creates a Verifier reading the given store. Returns ErrNotAttached
// when the store is detached.
func New(store *sqlite.Store) (*Verifier, error) {
	db, err := store.DB()
	if err != nil {
		return nil, err
	}
	return &Verifier{db: db}, nil
}

// Run executes every quality assertion and returns the violations found.
// An empty slice means the published state is clean.
func (v *Verifier) Run() ([]Violation, error) {
	var out []Violation
	for _, c := range checks {
		var n int
		if err := v.db.QueryRow(c.query).Scan(&n); err != nil {
			return nil, fmt.Errorf("running check %s: %w", c.name, err)
		}
		if n > 0 {
			out = append(out, Violation{
				Check:  c.name,
				Entity: c.entity,
				Count:  n,
				Detail: c.detail,
			})
		}
	}
	return out, nil
}
