// Bronze layer access: wholesale replacement on load, full reads for a run.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// ReplaceRawSnapshot replaces the entire bronze layer with the given
// snapshot inside one transaction: either every raw set is swapped or none
// is.
func (s *Store) ReplaceRawSnapshot(snap types.RawSnapshot) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning bronze load: %w", err)
	}
	defer tx.Rollback()

	for _, name := range types.BronzeTableNames {
		if _, err := tx.Exec("DELETE FROM " + name); err != nil {
			return &types.EntityError{Entity: name, Err: err}
		}
	}

	if err := insertBronzeCustomers(tx, snap.Customers); err != nil {
		return &types.EntityError{Entity: types.BronzeCrmCustomers, Err: err}
	}
	if err := insertBronzeProducts(tx, snap.Products); err != nil {
		return &types.EntityError{Entity: types.BronzeCrmProducts, Err: err}
	}
	if err := insertBronzeSales(tx, snap.Sales); err != nil {
		return &types.EntityError{Entity: types.BronzeCrmSales, Err: err}
	}
	if err := insertBronzeErpCustomers(tx, snap.ErpCustomers); err != nil {
		return &types.EntityError{Entity: types.BronzeErpCustomers, Err: err}
	}
	if err := insertBronzeErpLocations(tx, snap.ErpLocations); err != nil {
		return &types.EntityError{Entity: types.BronzeErpLocations, Err: err}
	}
	if err := insertBronzeErpCategories(tx, snap.ErpCategories); err != nil {
		return &types.EntityError{Entity: types.BronzeErpCategories, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bronze load: %w", err)
	}
	return nil
}

func insertBronzeCustomers(tx *sql.Tx, rows []types.RawCustomer) error {
	stmt, err := tx.Prepare(`INSERT INTO bronze_crm_customers
        (business_id, customer_key, first_name, last_name, marital_code, gender_code, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(
			intArg(r.BusinessID), stringArg(r.Key), stringArg(r.FirstName),
			stringArg(r.LastName), stringArg(r.MaritalCode), stringArg(r.GenderCode),
			dateArg(r.CreatedAt),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertBronzeProducts(tx *sql.Tx, rows []types.RawProduct) error {
	stmt, err := tx.Prepare(`INSERT INTO bronze_crm_products
        (product_id, product_key, name, cost, line_code, start_date, end_date)
        VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(
			intArg(r.ProductID), stringArg(r.ProductKey), stringArg(r.Name),
			decimalArg(r.Cost), stringArg(r.LineCode),
			dateArg(r.StartDate), dateArg(r.EndDate),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertBronzeSales(tx *sql.Tx, rows []types.RawSalesLine) error {
	stmt, err := tx.Prepare(`INSERT INTO bronze_crm_sales
        (order_number, product_key, customer_business_id, order_date_int, ship_date_int, due_date_int, sales_amount, quantity, unit_price)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(
			stringArg(r.OrderNumber), stringArg(r.ProductKey), intArg(r.CustomerBusinessID),
			intArg(r.OrderDateInt), intArg(r.ShipDateInt), intArg(r.DueDateInt),
			decimalArg(r.SalesAmount), intArg(r.Quantity), decimalArg(r.UnitPrice),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertBronzeErpCustomers(tx *sql.Tx, rows []types.RawErpCustomer) error {
	stmt, err := tx.Prepare(`INSERT INTO bronze_erp_customers
        (external_id, birth_date, gender_text) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(stringArg(r.ExternalID), dateArg(r.BirthDate), stringArg(r.GenderText)); err != nil {
			return err
		}
	}
	return nil
}

func insertBronzeErpLocations(tx *sql.Tx, rows []types.RawErpLocation) error {
	stmt, err := tx.Prepare(`INSERT INTO bronze_erp_locations
        (external_id, country_text) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(stringArg(r.ExternalID), stringArg(r.CountryText)); err != nil {
			return err
		}
	}
	return nil
}

func insertBronzeErpCategories(tx *sql.Tx, rows []types.RawErpCategory) error {
	stmt, err := tx.Prepare(`INSERT INTO bronze_erp_categories
        (category_id, category, subcategory, maintenance_flag) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(stringArg(r.CategoryID), stringArg(r.Category), stringArg(r.Subcategory), stringArg(r.MaintenanceFlag)); err != nil {
			return err
		}
	}
	return nil
}

// RawSnapshot reads the entire bronze layer into memory for a run.
func (s *Store) RawSnapshot() (types.RawSnapshot, error) {
	db, err := s.handle()
	if err != nil {
		return types.RawSnapshot{}, err
	}

	var snap types.RawSnapshot
	if snap.Customers, err = readBronzeCustomers(db); err != nil {
		return types.RawSnapshot{}, &types.EntityError{Entity: types.BronzeCrmCustomers, Err: err}
	}
	if snap.Products, err = readBronzeProducts(db); err != nil {
		return types.RawSnapshot{}, &types.EntityError{Entity: types.BronzeCrmProducts, Err: err}
	}
	if snap.Sales, err = readBronzeSales(db); err != nil {
		return types.RawSnapshot{}, &types.EntityError{Entity: types.BronzeCrmSales, Err: err}
	}
	if snap.ErpCustomers, err = readBronzeErpCustomers(db); err != nil {
		return types.RawSnapshot{}, &types.EntityError{Entity: types.BronzeErpCustomers, Err: err}
	}
	if snap.ErpLocations, err = readBronzeErpLocations(db); err != nil {
		return types.RawSnapshot{}, &types.EntityError{Entity: types.BronzeErpLocations, Err: err}
	}
	if snap.ErpCategories, err = readBronzeErpCategories(db); err != nil {
		return types.RawSnapshot{}, &types.EntityError{Entity: types.BronzeErpCategories, Err: err}
	}
	return snap, nil
}

func readBronzeCustomers(db *sql.DB) ([]types.RawCustomer, error) {
	rows, err := db.Query(`SELECT business_id, customer_key, first_name, last_name,
        marital_code, gender_code, created_at FROM bronze_crm_customers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.RawCustomer
	for rows.Next() {
		var (
			id                  sql.NullInt64
			key, fn, ln, ms, gc sql.NullString
			created             sql.NullString
		)
		if err := rows.Scan(&id, &key, &fn, &ln, &ms, &gc, &created); err != nil {
			return nil, err
		}
		createdAt, err := scanDate(created)
		if err != nil {
			return nil, err
		}
		out = append(out, types.RawCustomer{
			BusinessID:  scanInt(id),
			Key:         scanString(key),
			FirstName:   scanString(fn),
			LastName:    scanString(ln),
			MaritalCode: scanString(ms),
			GenderCode:  scanString(gc),
			CreatedAt:   createdAt,
		})
	}
	return out, rows.Err()
}

func readBronzeProducts(db *sql.DB) ([]types.RawProduct, error) {
	rows, err := db.Query(`SELECT product_id, product_key, name, cost, line_code,
        start_date, end_date FROM bronze_crm_products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.RawProduct
	for rows.Next() {
		var (
			id              sql.NullInt64
			key, name, line sql.NullString
			cost            sql.NullString
			start, end      sql.NullString
		)
		if err := rows.Scan(&id, &key, &name, &cost, &line, &start, &end); err != nil {
			return nil, err
		}
		costDec, err := scanDecimal(cost)
		if err != nil {
			return nil, err
		}
		startDate, err := scanDate(start)
		if err != nil {
			return nil, err
		}
		endDate, err := scanDate(end)
		if err != nil {
			return nil, err
		}
		out = append(out, types.RawProduct{
			ProductID:  scanInt(id),
			ProductKey: scanString(key),
			Name:       scanString(name),
			Cost:       costDec,
			LineCode:   scanString(line),
			StartDate:  startDate,
			EndDate:    endDate,
		})
	}
	return out, rows.Err()
}

func readBronzeSales(db *sql.DB) ([]types.RawSalesLine, error) {
	rows, err := db.Query(`SELECT order_number, product_key, customer_business_id,
        order_date_int, ship_date_int, due_date_int, sales_amount, quantity, unit_price
        FROM bronze_crm_sales`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.RawSalesLine
	for rows.Next() {
		var (
			orderNum, prodKey    sql.NullString
			custID               sql.NullInt64
			orderDt, shipDt, due sql.NullInt64
			sales, price         sql.NullString
			qty                  sql.NullInt64
		)
		if err := rows.Scan(&orderNum, &prodKey, &custID, &orderDt, &shipDt, &due, &sales, &qty, &price); err != nil {
			return nil, err
		}
		salesDec, err := scanDecimal(sales)
		if err != nil {
			return nil, err
		}
		priceDec, err := scanDecimal(price)
		if err != nil {
			return nil, err
		}
		out = append(out, types.RawSalesLine{
			OrderNumber:        scanString(orderNum),
			ProductKey:         scanString(prodKey),
			CustomerBusinessID: scanInt(custID),
			OrderDateInt:       scanInt(orderDt),
			ShipDateInt:        scanInt(shipDt),
			DueDateInt:         scanInt(due),
			SalesAmount:        salesDec,
			Quantity:           scanInt(qty),
			UnitPrice:          priceDec,
		})
	}
	return out, rows.Err()
}

func readBronzeErpCustomers(db *sql.DB) ([]types.RawErpCustomer, error) {
	rows, err := db.Query(`SELECT external_id, birth_date, gender_text FROM bronze_erp_customers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.RawErpCustomer
	for rows.Next() {
		var id, birth, gender sql.NullString
		if err := rows.Scan(&id, &birth, &gender); err != nil {
			return nil, err
		}
		birthDate, err := scanDate(birth)
		if err != nil {
			return nil, err
		}
		out = append(out, types.RawErpCustomer{
			ExternalID: scanString(id),
			BirthDate:  birthDate,
			GenderText: scanString(gender),
		})
	}
	return out, rows.Err()
}

func readBronzeErpLocations(db *sql.DB) ([]types.RawErpLocation, error) {
	rows, err := db.Query(`SELECT external_id, country_text FROM bronze_erp_locations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.RawErpLocation
	for rows.Next() {
		var id, country sql.NullString
		if err := rows.Scan(&id, &country); err != nil {
			return nil, err
		}
		out = append(out, types.RawErpLocation{
			ExternalID:  scanString(id),
			CountryText: scanString(country),
		})
	}
	return out, rows.Err()
}

func readBronzeErpCategories(db *sql.DB) ([]types.RawErpCategory, error) {
	rows, err := db.Query(`SELECT category_id, category, subcategory, maintenance_flag FROM bronze_erp_categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.RawErpCategory
	for rows.Next() {
		var id, cat, sub, maint sql.NullString
		if err := rows.Scan(&id, &cat, &sub, &maint); err != nil {
			return nil, err
		}
		out = append(out, types.RawErpCategory{
			CategoryID:      scanString(id),
			Category:        scanString(cat),
			Subcategory:     scanString(sub),
			MaintenanceFlag: scanString(maint),
		})
	}
	return out, rows.Err()
}
