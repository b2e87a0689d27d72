package dataset

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// DefaultSales is the number of sales generated when none is configured.
const DefaultSales = 3250

// Options controls a generation run.
type Options struct {
	Seed  uint64
	Sales int
}

// Calendar bounds for targets and sales.
var (
	TargetStart = Date(2025, time.January, 1)
	TargetEnd   = Date(2026, time.January, 1)
	SalesStart  = Date(2025, time.January, 1)
	SalesEnd    = Date(2026, time.January, 31)
	BlackFriday = Date(2025, time.November, 28)
)

// Holidays are the national holidays inside the sales window.
var Holidays = []time.Time{
	Date(2025, time.January, 1),
	Date(2025, time.April, 21),
	Date(2025, time.May, 1),
	Date(2025, time.September, 7),
	Date(2025, time.October, 12),
	Date(2025, time.November, 2),
	Date(2025, time.November, 15),
	Date(2025, time.December, 25),
	Date(2026, time.January, 1),
}

// Generate builds all four tables. The same options always yield the same
// dataset.
func Generate(opts Options) (Dataset, error) {
	if opts.Sales <= 0 {
		opts.Sales = DefaultSales
	}
	r := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	sellers := Sellers()
	if err := ValidateHierarchy(sellers); err != nil {
		return Dataset{}, fmt.Errorf("seller roster: %w", err)
	}
	products := Products()
	active := ActiveSellers(sellers, ManagerCutoff)

	targets := GenerateTargets(r, active, MonthStarts(TargetStart, TargetEnd))

	season := NewSeasonality(Holidays, BlackFriday)
	sampler, err := NewDateSampler(Days(SalesStart, SalesEnd), season.Weight)
	if err != nil {
		return Dataset{}, fmt.Errorf("sale dates: %w", err)
	}
	dates := sampler.Sample(r, opts.Sales)

	asm := SaleAssembler{Active: active, Top: TopSellers(active), Products: products}
	sales := asm.Assemble(r, dates)

	return Dataset{Sellers: sellers, Products: products, Targets: targets, Sales: sales}, nil
}
