// Package export writes a generated dataset to delimited files and records
// the run in a manifest.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jask/finkit/internal/dataset"
)

// Table is one output file: a header row followed by formatted records.
type Table struct {
	Name   string
	File   string
	Header []string
	Rows   [][]string
}

// Tables formats every table of ds in dependency order.
func Tables(ds dataset.Dataset) []Table {
	return []Table{
		SellersTable(ds.Sellers),
		ProductsTable(ds.Products),
		TargetsTable(ds.Targets),
		SalesTable(ds.Sales),
	}
}

func SellersTable(sellers []dataset.Seller) Table {
	t := Table{
		Name:   "sellers",
		File:   "TAB_Vendedors.csv",
		Header: []string{"ID_vendedor", "Nome_vendedor", "ID_gerente", "Nome_gerente"},
	}
	for _, s := range sellers {
		managerID := ""
		if s.ManagerID != nil {
			managerID = strconv.Itoa(*s.ManagerID)
		}
		t.Rows = append(t.Rows, []string{strconv.Itoa(s.ID), s.Name, managerID, s.ManagerName})
	}
	return t
}

func ProductsTable(products []dataset.Product) Table {
	t := Table{
		Name:   "products",
		File:   "TAB_Produtos.csv",
		Header: []string{"ID_produto", "Nome_produto", "Valor_produto", "PNG_produto"},
	}
	for _, p := range products {
		t.Rows = append(t.Rows, []string{strconv.Itoa(p.ID), p.Name, p.UnitPrice.StringFixed(2), p.Margin.StringFixed(2)})
	}
	return t
}

func TargetsTable(targets []dataset.Target) Table {
	t := Table{
		Name:   "targets",
		File:   "TAB_Meta.csv",
		Header: []string{"ID_vendedor", "Nome_vendedor", "Data_meta", "Valor_meta"},
	}
	for _, m := range targets {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(m.SellerID), m.SellerName, m.Month.Format(dataset.DateLayout), m.Amount.StringFixed(2),
		})
	}
	return t
}

func SalesTable(sales []dataset.Sale) Table {
	t := Table{
		Name: "sales",
		File: "TAB_Vendas.csv",
		Header: []string{
			"ID_venda", "NFe", "ID_vendedor", "Nome_vendedor",
			"ID_produto", "Nome_produto", "Valor_produto",
			"Quant_Produto", "Valor_venda", "Data_venda", "Regiao_venda",
		},
	}
	for _, s := range sales {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(s.ID),
			s.Invoice,
			strconv.Itoa(s.SellerID),
			s.SellerName,
			strconv.Itoa(s.ProductID),
			s.ProductName,
			s.UnitPrice.StringFixed(2),
			strconv.Itoa(s.Quantity),
			s.Total.StringFixed(2),
			s.Date.Format(dataset.DateLayout),
			string(s.Region),
		})
	}
	return t
}

// WriteCSV writes the header and rows of t to w.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteTable writes t into dir and returns the file path.
func WriteTable(dir string, t Table) (string, error) {
	path := filepath.Join(dir, t.File)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", t.File, err)
	}
	if err := WriteCSV(f, t); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", t.File, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", t.File, err)
	}
	return path, nil
}
