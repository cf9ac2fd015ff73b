// Snapshot publication: silver and gold are rebuilt inside one transaction
// so a mid-run failure leaves the previous snapshot intact.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// Publish atomically replaces every silver and gold table with the given
// canonical and dimensional snapshots. refreshedAt is written as the audit
// timestamp on every silver row. On any failure the transaction rolls back
// and the prior snapshot remains published.
func (s *Store) Publish(canon types.CanonicalSnapshot, gold types.GoldSnapshot, refreshedAt time.Time) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning publish: %w", err)
	}
	defer tx.Rollback()

	tables := make([]string, 0, len(types.SilverTableNames)+len(types.GoldTableNames))
	tables = append(tables, types.SilverTableNames...)
	tables = append(tables, types.GoldTableNames...)
	for _, name := range tables {
		if _, err := tx.Exec("DELETE FROM " + name); err != nil {
			return &types.EntityError{Entity: name, Err: err}
		}
	}

	stamp := refreshedAt.UTC().Format(time.RFC3339)

	if err := insertSilverCustomers(tx, canon.Customers, stamp); err != nil {
		return &types.EntityError{Entity: types.SilverCustomers, Err: err}
	}
	if err := insertSilverProducts(tx, canon.Products, stamp); err != nil {
		return &types.EntityError{Entity: types.SilverProducts, Err: err}
	}
	if err := insertSilverSales(tx, canon.Sales, stamp); err != nil {
		return &types.EntityError{Entity: types.SilverSales, Err: err}
	}
	if err := insertSilverErpCustomers(tx, canon.ErpCustomers, stamp); err != nil {
		return &types.EntityError{Entity: types.SilverErpCustomers, Err: err}
	}
	if err := insertSilverErpLocations(tx, canon.ErpLocations, stamp); err != nil {
		return &types.EntityError{Entity: types.SilverErpLocations, Err: err}
	}
	if err := insertSilverErpCategories(tx, canon.ErpCategories, stamp); err != nil {
		return &types.EntityError{Entity: types.SilverErpCategories, Err: err}
	}

	if err := insertDimCustomers(tx, gold.Customers); err != nil {
		return &types.EntityError{Entity: types.GoldDimCustomers, Err: err}
	}
	if err := insertDimProducts(tx, gold.Products); err != nil {
		return &types.EntityError{Entity: types.GoldDimProducts, Err: err}
	}
	if err := insertFactSales(tx, gold.Sales); err != nil {
		return &types.EntityError{Entity: types.GoldFactSales, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing publish: %w", err)
	}
	return nil
}

func insertSilverCustomers(tx *sql.Tx, rows []types.CanonicalCustomer, stamp string) error {
	stmt, err := tx.Prepare(`INSERT INTO silver_customers
        (business_id, customer_key, first_name, last_name, marital_status, gender, created_at, refreshed_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(r.BusinessID, r.Key, r.FirstName, r.LastName,
			r.MaritalStatus, r.Gender, dateArg(r.CreatedAt), stamp)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertSilverProducts(tx *sql.Tx, rows []types.CanonicalProduct, stamp string) error {
	stmt, err := tx.Prepare(`INSERT INTO silver_products
        (product_id, category_id, product_key, name, cost, line, start_date, end_date, refreshed_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(r.ProductID, r.CategoryID, r.ProductKey, r.Name,
			r.Cost.String(), r.Line, dateArg(r.StartDate), dateArg(r.EndDate), stamp)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertSilverSales(tx *sql.Tx, rows []types.CanonicalSalesLine, stamp string) error {
	stmt, err := tx.Prepare(`INSERT INTO silver_sales
        (order_number, product_key, customer_business_id, order_date, ship_date, due_date, sales_amount, quantity, unit_price, refreshed_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(r.OrderNumber, r.ProductKey, intArg(r.CustomerBusinessID),
			dateArg(r.OrderDate), dateArg(r.ShipDate), dateArg(r.DueDate),
			decimalArg(r.SalesAmount), intArg(r.Quantity), decimalArg(r.UnitPrice), stamp)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertSilverErpCustomers(tx *sql.Tx, rows []types.CanonicalErpCustomer, stamp string) error {
	stmt, err := tx.Prepare(`INSERT INTO silver_erp_customers
        (external_id, birth_date, gender, refreshed_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.ExternalID, dateArg(r.BirthDate), r.Gender, stamp); err != nil {
			return err
		}
	}
	return nil
}

func insertSilverErpLocations(tx *sql.Tx, rows []types.CanonicalErpLocation, stamp string) error {
	stmt, err := tx.Prepare(`INSERT INTO silver_erp_locations
        (external_id, country, refreshed_at) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.ExternalID, r.Country, stamp); err != nil {
			return err
		}
	}
	return nil
}

func insertSilverErpCategories(tx *sql.Tx, rows []types.CanonicalErpCategory, stamp string) error {
	stmt, err := tx.Prepare(`INSERT INTO silver_erp_categories
        (category_id, category, subcategory, maintenance_flag, refreshed_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.CategoryID, r.Category, r.Subcategory, r.MaintenanceFlag, stamp); err != nil {
			return err
		}
	}
	return nil
}

func insertDimCustomers(tx *sql.Tx, rows []types.DimCustomer) error {
	stmt, err := tx.Prepare(`INSERT INTO gold_dim_customers
        (customer_key, business_id, customer_number, first_name, last_name, country, marital_status, gender, birth_date, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(r.SurrogateKey, r.BusinessID, r.Key, r.FirstName, r.LastName,
			r.Country, r.MaritalStatus, r.Gender, dateArg(r.BirthDate), dateArg(r.CreatedAt))
		if err != nil {
			return err
		}
	}
	return nil
}

func insertDimProducts(tx *sql.Tx, rows []types.DimProduct) error {
	stmt, err := tx.Prepare(`INSERT INTO gold_dim_products
        (product_key, product_id, product_number, name, category_id, category, subcategory, maintenance, cost, line, start_date)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(r.SurrogateKey, r.ProductID, r.ProductKey, r.Name,
			r.CategoryID, r.Category, r.Subcategory, r.Maintenance,
			r.Cost.String(), r.Line, dateArg(r.StartDate))
		if err != nil {
			return err
		}
	}
	return nil
}

func insertFactSales(tx *sql.Tx, rows []types.FactSalesLine) error {
	stmt, err := tx.Prepare(`INSERT INTO gold_fact_sales
        (order_number, product_key, customer_key, order_date, ship_date, due_date, sales_amount, quantity, unit_price)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(r.OrderNumber, intArg(r.ProductKey), intArg(r.CustomerKey),
			dateArg(r.OrderDate), dateArg(r.ShipDate), dateArg(r.DueDate),
			decimalArg(r.SalesAmount), intArg(r.Quantity), decimalArg(r.UnitPrice))
		if err != nil {
			return err
		}
	}
	return nil
}
