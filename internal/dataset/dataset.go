// Package dataset generates the synthetic sales dataset: a fixed seller
// roster and product catalog, monthly targets per seller and a year of
// seasonally weighted sales.
package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day-first layout used for every date written out.
const DateLayout = "02/01/2006"

// Seller is a member of the sales team. Managers have no ManagerID.
type Seller struct {
	ID          int
	Name        string
	ManagerID   *int
	ManagerName string
}

// IsManager reports whether s sits at the top of the hierarchy.
func (s Seller) IsManager() bool { return s.ManagerID == nil }

// Product is a catalog item.
type Product struct {
	ID        int
	Name      string
	UnitPrice decimal.Decimal
	Margin    decimal.Decimal
}

// Target is a seller's sales goal for one calendar month.
type Target struct {
	SellerID   int
	SellerName string
	Month      time.Time // first day of month
	Amount     decimal.Decimal
}

// Region is where a sale was made.
type Region string

const (
	RegionSoutheast  Region = "Sudeste"
	RegionSouth      Region = "Sul"
	RegionNortheast  Region = "Nordeste"
	RegionCenterWest Region = "Centro-Oeste"
	RegionNorth      Region = "Norte"
)

// Sale is one invoiced line.
type Sale struct {
	ID          int
	Invoice     string
	SellerID    int
	SellerName  string
	ProductID   int
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Total       decimal.Decimal
	Date        time.Time
	Region      Region
}

// Dataset bundles the four generated tables.
type Dataset struct {
	Sellers  []Seller
	Products []Product
	Targets  []Target
	Sales    []Sale
}

// Date returns midnight UTC for the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Days returns every calendar day from start to end inclusive.
func Days(start, end time.Time) []time.Time {
	var out []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// MonthStarts returns the first day of every month from start to end inclusive.
func MonthStarts(start, end time.Time) []time.Time {
	first := Date(start.Year(), start.Month(), 1)
	var out []time.Time
	for m := first; !m.After(end); m = m.AddDate(0, 1, 0) {
		out = append(out, m)
	}
	return out
}
