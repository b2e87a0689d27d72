package ledger

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPrinterBalance(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewPrinter(&buf).Balance(decimal.RequireFromString("-12.5"))
	require.Contains(t, buf.String(), "Current Balance:")
	require.Contains(t, buf.String(), "$-12.50")
}

func TestPrinterHistory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.History([]Transaction{
		{ID: 1, Amount: decimal.RequireFromString("10.5"), Description: "lunch"},
		{ID: 2, Amount: decimal.RequireFromString("-3"), Description: "bus"},
	})
	out := buf.String()
	require.Contains(t, out, "1 | ")
	require.Contains(t, out, "10.5")
	require.Contains(t, out, " | lunch\n")
	require.Contains(t, out, " | bus\n")

	buf.Reset()
	p.History(nil)
	require.Contains(t, buf.String(), "No transactions yet.")
}

func TestPrinterUnknown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewPrinter(&buf).Unknown("transfer")
	require.Equal(t, "Unknown command: transfer\n", buf.String())
}
