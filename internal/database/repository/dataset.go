package repository

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jask/finkit/internal/database"
	"github.com/jask/finkit/internal/dataset"
)

// DatasetRepo stores generated datasets.
type DatasetRepo struct {
	db *sql.DB
}

func NewDatasetRepo(db *sql.DB) *DatasetRepo { return &DatasetRepo{db: db} }

// Replace swaps the stored dataset for ds and records run, in one transaction.
func (r *DatasetRepo) Replace(ctx context.Context, run Run, ds dataset.Dataset) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, table := range []string{"sales", "targets", "products", "sellers"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO generation_runs(id, seed, generated_at) VALUES(?, ?, ?)`,
			run.ID, int64(run.Seed), run.GeneratedAt.UTC()); err != nil {
			return fmt.Errorf("insert run: %w", err)
		}
		if err := insertSellers(ctx, tx, ds.Sellers); err != nil {
			return err
		}
		if err := insertProducts(ctx, tx, ds.Products); err != nil {
			return err
		}
		if err := insertTargets(ctx, tx, ds.Targets); err != nil {
			return err
		}
		return insertSales(ctx, tx, ds.Sales)
	})
}

func insertSellers(ctx context.Context, tx *sql.Tx, sellers []dataset.Seller) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sellers(id, name, manager_id, manager_name) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, s := range sellers {
		var managerID, managerName any
		if s.ManagerID != nil {
			managerID, managerName = *s.ManagerID, s.ManagerName
		}
		if _, err := stmt.ExecContext(ctx, s.ID, s.Name, managerID, managerName); err != nil {
			return fmt.Errorf("insert seller %d: %w", s.ID, err)
		}
	}
	return nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, products []dataset.Product) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO products(id, name, unit_price, margin) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, p := range products {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.UnitPrice.StringFixed(2), p.Margin.StringFixed(2)); err != nil {
			return fmt.Errorf("insert product %d: %w", p.ID, err)
		}
	}
	return nil
}

func insertTargets(ctx context.Context, tx *sql.Tx, targets []dataset.Target) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO targets(seller_id, seller_name, month, amount) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, t := range targets {
		if _, err := stmt.ExecContext(ctx, t.SellerID, t.SellerName, t.Month.Format(time.DateOnly), t.Amount.StringFixed(2)); err != nil {
			return fmt.Errorf("insert target %d/%s: %w", t.SellerID, t.Month.Format(time.DateOnly), err)
		}
	}
	return nil
}

func insertSales(ctx context.Context, tx *sql.Tx, sales []dataset.Sale) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO sales(
	 id, invoice, seller_id, seller_name, product_id, product_name,
	 unit_price, quantity, total, sale_date, region)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, s := range sales {
		if _, err := stmt.ExecContext(ctx, s.ID, s.Invoice, s.SellerID, s.SellerName, s.ProductID, s.ProductName,
			s.UnitPrice.StringFixed(2), s.Quantity, s.Total.StringFixed(2), s.Date.Format(time.DateOnly), string(s.Region)); err != nil {
			return fmt.Errorf("insert sale %d: %w", s.ID, err)
		}
	}
	return nil
}

// Counts returns the number of rows in each dataset table.
func (r *DatasetRepo) Counts(ctx context.Context) (TableCounts, error) {
	var c TableCounts
	for _, q := range []struct {
		table string
		dst   *int
	}{
		{"sellers", &c.Sellers},
		{"products", &c.Products},
		{"targets", &c.Targets},
		{"sales", &c.Sales},
	} {
		if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+q.table).Scan(q.dst); err != nil {
			return TableCounts{}, fmt.Errorf("count %s: %w", q.table, err)
		}
	}
	return c, nil
}

// Runs lists recorded runs, newest first.
func (r *DatasetRepo) Runs(ctx context.Context) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, seed, generated_at FROM generation_runs ORDER BY generated_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Run
	for rows.Next() {
		var run Run
		var seed int64
		if err := rows.Scan(&run.ID, &seed, &run.GeneratedAt); err != nil {
			return nil, err
		}
		run.Seed = uint64(seed)
		out = append(out, run)
	}
	return out, rows.Err()
}

// RegionTotals sums sales per region, largest first.
func (r *DatasetRepo) RegionTotals(ctx context.Context) ([]RegionTotal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT region, total FROM sales ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byRegion := map[string]*RegionTotal{}
	var order []string
	for rows.Next() {
		var region, total string
		if err := rows.Scan(&region, &total); err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("sale total %q: %w", total, err)
		}
		rt, ok := byRegion[region]
		if !ok {
			rt = &RegionTotal{Region: region}
			byRegion[region] = rt
			order = append(order, region)
		}
		rt.Sales++
		rt.Total = rt.Total.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]RegionTotal, 0, len(order))
	for _, region := range order {
		out = append(out, *byRegion[region])
	}
	slices.SortStableFunc(out, func(a, b RegionTotal) int { return b.Total.Cmp(a.Total) })
	return out, nil
}
