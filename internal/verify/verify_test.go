package verify

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/medallion/internal/sqlite"
	"github.com/mesh-intelligence/medallion/pkg/types"
)

func newVerifier(t *testing.T) (*Verifier, *sql.DB) {
	t.Helper()
	store := sqlite.NewStore()
	require.NoError(t, store.Attach(types.Config{DataDir: t.TempDir()}.WithDefaults()))
	t.Cleanup(func() { store.Detach() })

	v, err := New(store)
	require.NoError(t, err)
	db, err := store.DB()
	require.NoError(t, err)
	return v, db
}

// Seed helpers insert complete rows so tests only name the columns they
// exercise.

func seedDimCustomer(t *testing.T, db *sql.DB, surrogateKey, businessID int64) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO gold_dim_customers
        (customer_key, business_id, customer_number, first_name, last_name, country, marital_status, gender)
        VALUES (?, ?, 'AW1', 'Jon', 'Yang', 'Germany', 'Married', 'Male')`, surrogateKey, businessID)
	require.NoError(t, err)
}

func seedDimProduct(t *testing.T, db *sql.DB, surrogateKey int64) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO gold_dim_products
        (product_key, product_id, product_number, name, category_id, category, subcategory, maintenance, cost, line)
        VALUES (?, 210, 'HL-U509-R', 'Sport-100 Helmet', 'AC_HE', 'Accessories', 'Helmets', 'No', '12.75', 'Road')`, surrogateKey)
	require.NoError(t, err)
}

func seedFact(t *testing.T, db *sql.DB, productKey, customerKey any) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO gold_fact_sales
        (order_number, product_key, customer_key, sales_amount, quantity, unit_price)
        VALUES ('SO1', ?, ?, '25.50', 2, '12.75')`, productKey, customerKey)
	require.NoError(t, err)
}

func seedSilverSale(t *testing.T, db *sql.DB, orderDate, shipDate, salesAmount any, quantity any, unitPrice any) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO silver_sales
        (order_number, product_key, customer_business_id, order_date, ship_date, due_date, sales_amount, quantity, unit_price, refreshed_at)
        VALUES ('SO1', 'HL-U509-R', 1, ?, ?, NULL, ?, ?, ?, 'x')`,
		orderDate, shipDate, salesAmount, quantity, unitPrice)
	require.NoError(t, err)
}

func seedSilverProduct(t *testing.T, db *sql.DB, cost string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO silver_products
        (product_id, category_id, product_key, name, cost, line, start_date, refreshed_at)
        VALUES (210, 'AC_HE', 'HL-U509-R', 'Sport-100 Helmet', ?, 'Road', '2011-07-01', 'x')`, cost)
	require.NoError(t, err)
}

func violationNames(violations []Violation) []string {
	names := make([]string, 0, len(violations))
	for _, v := range violations {
		names = append(names, v.Check)
	}
	return names
}

func findViolation(t *testing.T, violations []Violation, name string) Violation {
	t.Helper()
	for _, v := range violations {
		if v.Check == name {
			return v
		}
	}
	t.Fatalf("expected a %s violation, got %v", name, violationNames(violations))
	return Violation{}
}

func TestVerifierCleanStateIsQuiet(t *testing.T) {
	v, db := newVerifier(t)

	_, err := db.Exec(`INSERT INTO silver_customers
        (business_id, customer_key, first_name, last_name, marital_status, gender, refreshed_at)
        VALUES (1, 'AW1', 'Jon', 'Yang', 'Married', 'Male', 'x')`)
	require.NoError(t, err)
	seedSilverProduct(t, db, "12.75")
	seedSilverSale(t, db, "2010-12-29", "2011-01-05", "25.50", 2, "12.75")
	seedDimCustomer(t, db, 1, 1)
	seedDimProduct(t, db, 1)
	seedFact(t, db, 1, 1)

	violations, err := v.Run()
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestVerifierEmptyWarehouseIsQuiet(t *testing.T) {
	v, _ := newVerifier(t)

	violations, err := v.Run()
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestVerifierSurrogateDensity(t *testing.T) {
	v, db := newVerifier(t)

	// Customer keys 1 and 3: the range has a hole. Product keys start at 2
	// instead of 1.
	seedDimCustomer(t, db, 1, 1)
	seedDimCustomer(t, db, 3, 3)
	seedDimProduct(t, db, 2)

	violations, err := v.Run()
	require.NoError(t, err)
	names := violationNames(violations)
	assert.Contains(t, names, "customer_surrogate_density")
	assert.Contains(t, names, "product_surrogate_density")
}

func TestVerifierUnresolvedFactKeys(t *testing.T) {
	v, db := newVerifier(t)

	seedFact(t, db, nil, 1)
	seedFact(t, db, 1, nil)
	seedFact(t, db, 1, 1)

	violations, err := v.Run()
	require.NoError(t, err)

	product := findViolation(t, violations, "unresolved_fact_product")
	assert.Equal(t, 1, product.Count)
	assert.Equal(t, types.GoldFactSales, product.Entity)

	customer := findViolation(t, violations, "unresolved_fact_customer")
	assert.Equal(t, 1, customer.Count)
}

func TestVerifierSalesArithmetic(t *testing.T) {
	v, db := newVerifier(t)

	// Amount does not equal quantity times price.
	seedSilverSale(t, db, nil, nil, "100", 3, "10")
	// Null amount.
	seedSilverSale(t, db, nil, nil, nil, 1, "10")
	// Consistent row stays quiet.
	seedSilverSale(t, db, nil, nil, "30", 3, "10")

	violations, err := v.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, findViolation(t, violations, "sales_arithmetic").Count)
}

func TestVerifierDateOrder(t *testing.T) {
	v, db := newVerifier(t)

	seedSilverSale(t, db, "2011-01-10", "2011-01-05", "10", 1, "10")
	seedSilverSale(t, db, "2011-01-01", "2011-01-05", "10", 1, "10")

	violations, err := v.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, findViolation(t, violations, "date_order").Count)
}

func TestVerifierNegativeCost(t *testing.T) {
	v, db := newVerifier(t)

	seedSilverProduct(t, db, "-5")

	violations, err := v.Run()
	require.NoError(t, err)
	assert.Contains(t, violationNames(violations), "negative_cost")
}

func TestNewRequiresAttachedStore(t *testing.T) {
	_, err := New(sqlite.NewStore())
	assert.ErrorIs(t, err, types.ErrNotAttached)
}

func TestViolationString(t *testing.T) {
	v := Violation{Check: "date_order", Entity: types.SilverSales, Count: 2, Detail: "order date must not follow the ship or due date"}
	assert.Equal(t, "date_order [silver_sales]: 2 row(s): order date must not follow the ship or due date", v.String())
}
