package dataset

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestGenerateSales(t *testing.T) {
	t.Parallel()

	ds, err := Generate(Options{Seed: 42, Sales: DefaultSales})
	require.NoError(t, err)
	require.Len(t, ds.Sales, 3250)

	products := make(map[int]Product)
	for _, p := range ds.Products {
		products[p.ID] = p
	}
	validRegion := make(map[Region]bool)
	for _, r := range Regions {
		validRegion[r.Region] = true
	}

	var prev time.Time
	for i, s := range ds.Sales {
		require.Equal(t, i+1, s.ID)
		require.Equal(t, InvoiceNumber(i+1), s.Invoice)
		require.LessOrEqual(t, s.SellerID, ManagerCutoff)
		require.False(t, s.Date.Before(prev), "sales must be in date order")
		prev = s.Date

		p, ok := products[s.ProductID]
		require.True(t, ok)
		require.Equal(t, p.Name, s.ProductName)
		require.True(t, p.UnitPrice.Equal(s.UnitPrice))
		require.True(t, s.Total.Equal(s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))))

		require.GreaterOrEqual(t, s.Quantity, 1)
		require.LessOrEqual(t, s.Quantity, 5)
		if s.Quantity > 3 {
			require.True(t, s.UnitPrice.LessThan(decimal.NewFromInt(100)), "bulk quantity on %s", s.ProductName)
		}
		require.True(t, validRegion[s.Region], "region %q", s.Region)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	t.Parallel()

	a, err := Generate(Options{Seed: 7, Sales: 300})
	require.NoError(t, err)
	b, err := Generate(Options{Seed: 7, Sales: 300})
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := Generate(Options{Seed: 8, Sales: 300})
	require.NoError(t, err)
	require.NotEqual(t, a.Sales, c.Sales)
}

func TestGenerateDefaultsSalesCount(t *testing.T) {
	t.Parallel()

	ds, err := Generate(Options{Seed: 1})
	require.NoError(t, err)
	require.Len(t, ds.Sales, DefaultSales)
	require.Len(t, ds.Targets, 15*13)
}

func TestTopSellersConcentration(t *testing.T) {
	t.Parallel()

	active := ActiveSellers(Sellers(), ManagerCutoff)
	top := TopSellers(active)
	require.Len(t, top, 3)
	require.Equal(t, top, TopSellers(active))

	seen := map[int]bool{}
	for _, s := range top {
		require.LessOrEqual(t, s.ID, ManagerCutoff)
		require.False(t, seen[s.ID])
		seen[s.ID] = true
	}

	asm := SaleAssembler{Active: active, Top: top, Products: Products()}
	dates := make([]time.Time, 20000)
	for i := range dates {
		dates[i] = SalesStart
	}
	sales := asm.Assemble(rand.New(rand.NewPCG(5, 5)), dates)

	topCount := 0
	for _, s := range sales {
		if seen[s.SellerID] {
			topCount++
		}
	}
	// 0.4 + 0.6*3/15 = 0.52 of sales go to the top group.
	require.InDelta(t, 0.52, float64(topCount)/float64(len(sales)), 0.02)
}

func TestBulkQuantityRate(t *testing.T) {
	t.Parallel()

	var cheap []Product
	for _, p := range Products() {
		if p.UnitPrice.LessThan(decimal.NewFromInt(100)) {
			cheap = append(cheap, p)
		}
	}
	require.NotEmpty(t, cheap)

	asm := SaleAssembler{Active: ActiveSellers(Sellers(), ManagerCutoff), Products: cheap}
	sales := asm.Assemble(rand.New(rand.NewPCG(13, 13)), make([]time.Time, 40000))

	bulk := 0
	for _, s := range sales {
		require.True(t, s.Quantity >= 1 && s.Quantity <= 5, "quantity %d", s.Quantity)
		if s.Quantity >= 4 {
			bulk++
		}
	}
	require.InDelta(t, 0.05, float64(bulk)/float64(len(sales)), 0.006)
}

func TestBulkQuantityNeedsCheapItem(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 3))
	for range 5000 {
		q := quantity(r, decimal.NewFromInt(100))
		require.True(t, q >= 1 && q <= 3, "quantity %d", q)
	}
}

func TestRegionShares(t *testing.T) {
	t.Parallel()

	asm := SaleAssembler{Active: ActiveSellers(Sellers(), ManagerCutoff), Products: Products()}
	dates := make([]time.Time, 20000)
	sales := asm.Assemble(rand.New(rand.NewPCG(11, 11)), dates)

	counts := map[Region]int{}
	for _, s := range sales {
		counts[s.Region]++
	}
	for _, r := range Regions {
		require.InDelta(t, r.Share, float64(counts[r.Region])/float64(len(sales)), 0.015, string(r.Region))
	}
}

func TestInvoiceNumber(t *testing.T) {
	t.Parallel()

	require.Equal(t, "000001", InvoiceNumber(1))
	require.Equal(t, "003250", InvoiceNumber(3250))
	require.Equal(t, "1234567", InvoiceNumber(1234567))
}
