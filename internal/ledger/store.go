// Package ledger keeps a personal transaction log in a single JSON file.
//
// Every operation reads the whole file and every mutation rewrites it. A file
// that cannot be decoded is treated as an empty ledger. There is no locking:
// ids are count+1, so two writers racing on one file can drop or duplicate
// records.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// HistorySize is how many records History returns.
const HistorySize = 10

// ErrInvalidAmount is returned by Add when the amount is not a number.
var ErrInvalidAmount = errors.New("invalid amount")

// Transaction is one ledger entry. Expenses are negative by convention.
type Transaction struct {
	ID          int
	Timestamp   string
	Amount      decimal.Decimal
	Category    string
	Description string
}

// record is the on-disk shape of a Transaction.
type record struct {
	ID          int         `json:"id"`
	Date        string      `json:"date"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
}

// Store is a ledger backed by the JSON file at Path.
type Store struct {
	Path string
	Now  func() time.Time
}

func NewStore(path string) *Store { return &Store{Path: path, Now: time.Now} }

// Add parses amount and appends a transaction stamped with the current time.
func (s *Store) Add(amount, category, description string) (Transaction, error) {
	value, err := ParseAmount(amount)
	if err != nil {
		return Transaction{}, err
	}
	txs, err := s.load()
	if err != nil {
		return Transaction{}, err
	}
	tx := Transaction{
		ID:          len(txs) + 1,
		Timestamp:   s.Now().Format(time.RFC3339Nano),
		Amount:      value,
		Category:    category,
		Description: description,
	}
	txs = append(txs, tx)
	if err := s.save(txs); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Balance sums every amount in the ledger.
func (s *Store) Balance() (decimal.Decimal, error) {
	txs, err := s.load()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total, nil
}

// History returns the most recent transactions, oldest first.
func (s *Store) History() ([]Transaction, error) {
	txs, err := s.load()
	if err != nil {
		return nil, err
	}
	if len(txs) > HistorySize {
		txs = txs[len(txs)-HistorySize:]
	}
	return txs, nil
}

// Categories lists distinct categories in the order they first appear.
func (s *Store) Categories() ([]string, error) {
	txs, err := s.load()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, tx := range txs {
		if !seen[tx.Category] {
			seen[tx.Category] = true
			out = append(out, tx.Category)
		}
	}
	return out, nil
}

// ParseAmount accepts a signed decimal such as "-12.50" or "1e3".
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q: %v", ErrInvalidAmount, raw, err)
	}
	return d, nil
}

// ensure creates the directory and an empty ledger if the file is missing.
func (s *Store) ensure() error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir ledger dir: %w", err)
	}
	if _, err := os.Stat(s.Path); errors.Is(err, os.ErrNotExist) {
		return s.save(nil)
	} else if err != nil {
		return err
	}
	return nil
}

func (s *Store) load() ([]Transaction, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		// unreadable ledgers start over empty
		return nil, nil
	}
	txs := make([]Transaction, 0, len(recs))
	for _, r := range recs {
		amount := decimal.Zero
		if r.Amount != "" {
			if amount, err = decimal.NewFromString(r.Amount.String()); err != nil {
				return nil, nil
			}
		}
		txs = append(txs, Transaction{
			ID:          r.ID,
			Timestamp:   r.Date,
			Amount:      amount,
			Category:    r.Category,
			Description: r.Description,
		})
	}
	return txs, nil
}

func (s *Store) save(txs []Transaction) error {
	recs := make([]record, 0, len(txs))
	for _, tx := range txs {
		recs = append(recs, record{
			ID:          tx.ID,
			Date:        tx.Timestamp,
			Amount:      json.Number(tx.Amount.String()),
			Category:    tx.Category,
			Description: tx.Description,
		})
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return os.Rename(tmp, s.Path)
}
