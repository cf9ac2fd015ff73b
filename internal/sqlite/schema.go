// Package sqlite implements the warehouse store: bronze staging tables,
// silver canonical tables, gold dimension/fact tables, and run history, all
// in a single SQLite database under the data directory.
package sqlite

// Bronze DDL: staged source extracts, verbatim, no constraints. Bronze is
// replaced wholesale by each load and persists between loads and runs, so
// tables are created only if missing.
const (
	createBronzeCrmCustomers = `CREATE TABLE IF NOT EXISTS bronze_crm_customers (
    business_id INTEGER,
    customer_key TEXT,
    first_name TEXT,
    last_name TEXT,
    marital_code TEXT,
    gender_code TEXT,
    created_at TEXT
);`

	createBronzeCrmProducts = `CREATE TABLE IF NOT EXISTS bronze_crm_products (
    product_id INTEGER,
    product_key TEXT,
    name TEXT,
    cost TEXT,
    line_code TEXT,
    start_date TEXT,
    end_date TEXT
);`

	createBronzeCrmSales = `CREATE TABLE IF NOT EXISTS bronze_crm_sales (
    order_number TEXT,
    product_key TEXT,
    customer_business_id INTEGER,
    order_date_int INTEGER,
    ship_date_int INTEGER,
    due_date_int INTEGER,
    sales_amount TEXT,
    quantity INTEGER,
    unit_price TEXT
);`

	createBronzeErpCustomers = `CREATE TABLE IF NOT EXISTS bronze_erp_customers (
    external_id TEXT,
    birth_date TEXT,
    gender_text TEXT
);`

	createBronzeErpLocations = `CREATE TABLE IF NOT EXISTS bronze_erp_locations (
    external_id TEXT,
    country_text TEXT
);`

	createBronzeErpCategories = `CREATE TABLE IF NOT EXISTS bronze_erp_categories (
    category_id TEXT,
    category TEXT,
    subcategory TEXT,
    maintenance_flag TEXT
);`
)

// Silver DDL: canonical entities, one logical record per business key.
// refreshed_at is the audit timestamp set when the row was (re)computed.
const (
	createSilverCustomers = `CREATE TABLE IF NOT EXISTS silver_customers (
    business_id INTEGER PRIMARY KEY,
    customer_key TEXT NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    marital_status TEXT NOT NULL,
    gender TEXT NOT NULL,
    created_at TEXT,
    refreshed_at TEXT NOT NULL
);`

	createSilverProducts = `CREATE TABLE IF NOT EXISTS silver_products (
    product_id INTEGER NOT NULL,
    category_id TEXT NOT NULL,
    product_key TEXT NOT NULL,
    name TEXT NOT NULL,
    cost TEXT NOT NULL,
    line TEXT NOT NULL,
    start_date TEXT,
    end_date TEXT,
    refreshed_at TEXT NOT NULL
);`

	createSilverSales = `CREATE TABLE IF NOT EXISTS silver_sales (
    order_number TEXT NOT NULL,
    product_key TEXT NOT NULL,
    customer_business_id INTEGER,
    order_date TEXT,
    ship_date TEXT,
    due_date TEXT,
    sales_amount TEXT,
    quantity INTEGER,
    unit_price TEXT,
    refreshed_at TEXT NOT NULL
);`

	createSilverErpCustomers = `CREATE TABLE IF NOT EXISTS silver_erp_customers (
    external_id TEXT NOT NULL,
    birth_date TEXT,
    gender TEXT NOT NULL,
    refreshed_at TEXT NOT NULL
);`

	createSilverErpLocations = `CREATE TABLE IF NOT EXISTS silver_erp_locations (
    external_id TEXT NOT NULL,
    country TEXT NOT NULL,
    refreshed_at TEXT NOT NULL
);`

	createSilverErpCategories = `CREATE TABLE IF NOT EXISTS silver_erp_categories (
    category_id TEXT NOT NULL,
    category TEXT NOT NULL,
    subcategory TEXT NOT NULL,
    maintenance_flag TEXT NOT NULL,
    refreshed_at TEXT NOT NULL
);`
)

// Gold DDL: conformed dimensions and the sales fact. customer_key and
// product_key on the fact are dimension surrogate keys and stay NULL when
// the business key resolved to no dimension row.
const (
	createGoldDimCustomers = `CREATE TABLE IF NOT EXISTS gold_dim_customers (
    customer_key INTEGER PRIMARY KEY,
    business_id INTEGER NOT NULL,
    customer_number TEXT NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    country TEXT NOT NULL,
    marital_status TEXT NOT NULL,
    gender TEXT NOT NULL,
    birth_date TEXT,
    created_at TEXT
);`

	createGoldDimProducts = `CREATE TABLE IF NOT EXISTS gold_dim_products (
    product_key INTEGER PRIMARY KEY,
    product_id INTEGER NOT NULL,
    product_number TEXT NOT NULL,
    name TEXT NOT NULL,
    category_id TEXT NOT NULL,
    category TEXT NOT NULL,
    subcategory TEXT NOT NULL,
    maintenance TEXT NOT NULL,
    cost TEXT NOT NULL,
    line TEXT NOT NULL,
    start_date TEXT
);`

	createGoldFactSales = `CREATE TABLE IF NOT EXISTS gold_fact_sales (
    order_number TEXT NOT NULL,
    product_key INTEGER,
    customer_key INTEGER,
    order_date TEXT,
    ship_date TEXT,
    due_date TEXT,
    sales_amount TEXT,
    quantity INTEGER,
    unit_price TEXT
);`
)

// Run history DDL: one row per pipeline run, counts as a JSON object.
const createRunHistory = `CREATE TABLE IF NOT EXISTS run_history (
    run_id TEXT PRIMARY KEY,
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    status TEXT NOT NULL,
    counts TEXT NOT NULL,
    failed_entity TEXT,
    failure_reason TEXT
);`

// Index DDL for fact resolution lookups and run ordering.
const (
	idxFactProduct  = `CREATE INDEX IF NOT EXISTS idx_gold_fact_sales_product ON gold_fact_sales(product_key);`
	idxFactCustomer = `CREATE INDEX IF NOT EXISTS idx_gold_fact_sales_customer ON gold_fact_sales(customer_key);`
	idxRunsStarted  = `CREATE INDEX IF NOT EXISTS idx_run_history_started ON run_history(started_at);`
)

// schemaDDL lists all CREATE TABLE statements in layer order.
var schemaDDL = []string{
	createBronzeCrmCustomers,
	createBronzeCrmProducts,
	createBronzeCrmSales,
	createBronzeErpCustomers,
	createBronzeErpLocations,
	createBronzeErpCategories,
	createSilverCustomers,
	createSilverProducts,
	createSilverSales,
	createSilverErpCustomers,
	createSilverErpLocations,
	createSilverErpCategories,
	createGoldDimCustomers,
	createGoldDimProducts,
	createGoldFactSales,
	createRunHistory,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxFactProduct,
	idxFactCustomer,
	idxRunsStarted,
}
