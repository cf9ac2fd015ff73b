package types

// Bronze layer table names: one staged table per source extract, verbatim.
const (
	BronzeCrmCustomers  = "bronze_crm_customers"
	BronzeCrmProducts   = "bronze_crm_products"
	BronzeCrmSales      = "bronze_crm_sales"
	BronzeErpCustomers  = "bronze_erp_customers"
	BronzeErpLocations  = "bronze_erp_locations"
	BronzeErpCategories = "bronze_erp_categories"
)

// Silver layer table names: one canonical table per business entity.
const (
	SilverCustomers     = "silver_customers"
	SilverProducts      = "silver_products"
	SilverSales         = "silver_sales"
	SilverErpCustomers  = "silver_erp_customers"
	SilverErpLocations  = "silver_erp_locations"
	SilverErpCategories = "silver_erp_categories"
)

// Gold layer table names: conformed dimension and fact views.
const (
	GoldDimCustomers = "gold_dim_customers"
	GoldDimProducts  = "gold_dim_products"
	GoldFactSales    = "gold_fact_sales"
)

// RunHistoryTable records one row per pipeline run.
const RunHistoryTable = "run_history"

// BronzeTableNames lists the bronze tables in load order.
var BronzeTableNames = []string{
	BronzeCrmCustomers,
	BronzeCrmProducts,
	BronzeCrmSales,
	BronzeErpCustomers,
	BronzeErpLocations,
	BronzeErpCategories,
}

// SilverTableNames lists the silver tables in publish order.
var SilverTableNames = []string{
	SilverCustomers,
	SilverProducts,
	SilverSales,
	SilverErpCustomers,
	SilverErpLocations,
	SilverErpCategories,
}

// GoldTableNames lists the gold tables in publish order. The fact table is
// last: it resolves business keys against both dimensions.
var GoldTableNames = []string{
	GoldDimCustomers,
	GoldDimProducts,
	GoldFactSales,
}
