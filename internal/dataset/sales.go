package dataset

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

const (
	topSellerShare   = 0.4
	bulkChance       = 0.05
	invoiceWidth     = 6
	topSellerCount   = 3
	topSellerPickKey = 1
)

var bulkPriceCeiling = decimal.NewFromInt(100)

// Regions lists every region with its share of sales.
var Regions = []struct {
	Region Region
	Share  float64
}{
	{RegionSoutheast, 0.45},
	{RegionSouth, 0.25},
	{RegionNortheast, 0.15},
	{RegionCenterWest, 0.10},
	{RegionNorth, 0.05},
}

// TopSellers picks a fixed group of sellers that receive a boosted share of
// sales. The pick uses its own source so it stays the same for every seed.
func TopSellers(active []Seller) []Seller {
	n := min(topSellerCount, len(active))
	r := rand.New(rand.NewPCG(topSellerPickKey, topSellerPickKey))
	perm := r.Perm(len(active))
	out := make([]Seller, n)
	for i := range out {
		out[i] = active[perm[i]]
	}
	return out
}

// SaleAssembler turns sampled dates into sale records.
type SaleAssembler struct {
	Active   []Seller
	Top      []Seller
	Products []Product
}

// Assemble creates one sale per date, numbering them from 1 in the order given.
func (a SaleAssembler) Assemble(r *rand.Rand, dates []time.Time) []Sale {
	shares := make([]float64, len(Regions))
	for i, reg := range Regions {
		shares[i] = reg.Share
	}

	out := make([]Sale, 0, len(dates))
	for i, d := range dates {
		seller := a.pickSeller(r)
		product := a.Products[r.IntN(len(a.Products))]
		qty := quantity(r, product.UnitPrice)
		region := Regions[weightedIndex(r, shares)].Region

		out = append(out, Sale{
			ID:          i + 1,
			Invoice:     InvoiceNumber(i + 1),
			SellerID:    seller.ID,
			SellerName:  seller.Name,
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.UnitPrice,
			Quantity:    qty,
			Total:       product.UnitPrice.Mul(decimal.NewFromInt(int64(qty))).Round(2),
			Date:        d,
			Region:      region,
		})
	}
	return out
}

func (a SaleAssembler) pickSeller(r *rand.Rand) Seller {
	if len(a.Top) > 0 && r.Float64() < topSellerShare {
		return a.Top[r.IntN(len(a.Top))]
	}
	return a.Active[r.IntN(len(a.Active))]
}

// quantity is 1-3 units, occasionally 4-5 for cheap items.
func quantity(r *rand.Rand, price decimal.Decimal) int {
	q := 1 + r.IntN(3)
	if price.LessThan(bulkPriceCeiling) && r.Float64() < bulkChance {
		q = 4 + r.IntN(2)
	}
	return q
}

// InvoiceNumber formats a sale sequence as a fixed-width invoice number.
func InvoiceNumber(seq int) string {
	return fmt.Sprintf("%0*d", invoiceWidth, seq)
}
