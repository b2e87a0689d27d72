package dataset

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSellersRoster(t *testing.T) {
	t.Parallel()

	sellers := Sellers()
	require.Len(t, sellers, 18)
	require.NoError(t, ValidateHierarchy(sellers))

	require.Equal(t, "Carlos Almeida", sellers[0].Name)
	require.Equal(t, 1000, sellers[0].ID)
	require.Equal(t, 1015, *sellers[0].ManagerID)
	require.Equal(t, "Mariana Costa", sellers[0].ManagerName)

	require.Equal(t, 1014, sellers[14].ID)
	require.Equal(t, 1017, *sellers[14].ManagerID)

	for _, s := range sellers[15:] {
		require.True(t, s.IsManager())
		require.Empty(t, s.ManagerName)
	}

	active := ActiveSellers(sellers, ManagerCutoff)
	require.Len(t, active, 15)
	for _, s := range active {
		require.False(t, s.IsManager())
	}
}

func TestValidateHierarchy(t *testing.T) {
	t.Parallel()

	boss := 1
	mid := 2
	ghost := 9

	cases := []struct {
		name    string
		sellers []Seller
		ok      bool
	}{
		{"flat", []Seller{{ID: 1, Name: "Boss"}, {ID: 2, Name: "Ann", ManagerID: &boss, ManagerName: "Boss"}}, true},
		{"unknown manager", []Seller{{ID: 1, Name: "Boss"}, {ID: 2, Name: "Ann", ManagerID: &ghost}}, false},
		{"three levels", []Seller{
			{ID: 1, Name: "Boss"},
			{ID: 2, Name: "Mid", ManagerID: &boss, ManagerName: "Boss"},
			{ID: 3, Name: "Ann", ManagerID: &mid, ManagerName: "Mid"},
		}, false},
		{"duplicate id", []Seller{{ID: 1, Name: "Boss"}, {ID: 1, Name: "Boss"}}, false},
		{"name mismatch", []Seller{{ID: 1, Name: "Boss"}, {ID: 2, Name: "Ann", ManagerID: &boss, ManagerName: "Other"}}, false},
	}
	for _, tc := range cases {
		err := ValidateHierarchy(tc.sellers)
		if tc.ok {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestProductsCatalog(t *testing.T) {
	t.Parallel()

	products := Products()
	require.Len(t, products, 30)
	for i, p := range products {
		require.Equal(t, FirstProductID+i, p.ID)
		require.True(t, p.Margin.GreaterThanOrEqual(decimal.Zero))
		require.True(t, p.Margin.LessThanOrEqual(decimal.NewFromInt(1)))
		require.True(t, p.UnitPrice.IsPositive())
	}
	require.Equal(t, "79.90", products[1].UnitPrice.StringFixed(2))
	require.Equal(t, "0.55", products[1].Margin.StringFixed(2))
	require.Equal(t, "Monitor Dell P2422H 24''", products[29].Name)

	// a second build starts numbering again
	require.Equal(t, FirstProductID, Products()[0].ID)
}
