package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Run represents a generation_runs row.
type Run struct {
	ID          string
	Seed        uint64
	GeneratedAt time.Time
}

// TableCounts holds row counts for the dataset tables.
type TableCounts struct {
	Sellers  int
	Products int
	Targets  int
	Sales    int
}

// RegionTotal is the revenue booked in one region.
type RegionTotal struct {
	Region string
	Sales  int
	Total  decimal.Decimal
}
