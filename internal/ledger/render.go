package ledger

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Printer writes ledger output, colouring it when w is a terminal.
type Printer struct {
	w        io.Writer
	label    lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
	muted    lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:        w,
		label:    r.NewStyle().Bold(true),
		positive: r.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
		negative: r.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
		muted:    r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (p *Printer) amount(d decimal.Decimal, text string) string {
	if d.IsNegative() {
		return p.negative.Render(text)
	}
	return p.positive.Render(text)
}

// Balance prints the running total with two decimals.
func (p *Printer) Balance(total decimal.Decimal) {
	fmt.Fprintf(p.w, "%s %s\n", p.label.Render("Current Balance:"), p.amount(total, "$"+total.StringFixed(2)))
}

// History prints one "id | amount | description" line per transaction.
func (p *Printer) History(txs []Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(p.w, p.muted.Render("No transactions yet."))
		return
	}
	for _, tx := range txs {
		fmt.Fprintf(p.w, "%d | %s | %s\n", tx.ID, p.amount(tx.Amount, tx.Amount.String()), tx.Description)
	}
}

// Added confirms a new transaction.
func (p *Printer) Added(tx Transaction) {
	fmt.Fprintf(p.w, "Added #%d: %s %s (%s)\n", tx.ID, p.amount(tx.Amount, tx.Amount.String()), tx.Category, tx.Description)
}

// Hint points at a category the user may have meant.
func (p *Printer) Hint(typed, suggestion string) {
	fmt.Fprintln(p.w, p.muted.Render(fmt.Sprintf("Note: %q is new; did you mean %q?", typed, suggestion)))
}

// Usage prints a usage line.
func (p *Printer) Usage(line string) {
	fmt.Fprintln(p.w, "Usage: "+line)
}

// Unknown reports an unrecognized command.
func (p *Printer) Unknown(command string) {
	fmt.Fprintf(p.w, "Unknown command: %s\n", command)
}
