package store

import (
	"sort"
	"strings"

	"github.com/foliohq/folio/internal/invoice/domain"
)

// SortKey selects the column the derived list is ordered by.
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
)

// SortDirection orders the derived list ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOption is the consumer-owned sort state of the invoice table.
type SortOption struct {
	Key       SortKey
	Direction SortDirection
}

// DefaultSort matches the table's initial state: newest issue date first.
func DefaultSort() SortOption {
	return SortOption{Key: SortByDate, Direction: SortDesc}
}

// VisibleInvoices computes the table's derived list from the snapshot:
// status filter, then case-insensitive substring search over customer,
// email and id, then a stable sort. Ties keep their input order.
func (snap Snapshot) VisibleInvoices(opt SortOption) []domain.Invoice {
	out := make([]domain.Invoice, 0, len(snap.Invoices))
	query := strings.ToLower(snap.SearchQuery)
	for _, inv := range snap.Invoices {
		if !snap.FilterStatus.Matches(inv.Status) {
			continue
		}
		if query != "" && !matchesQuery(inv, query) {
			continue
		}
		out = append(out, inv)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], opt)
	})
	return out
}

// StatusCounts tallies invoices per status for the dashboard summary cards.
func (snap Snapshot) StatusCounts() map[domain.Status]int {
	counts := make(map[domain.Status]int, 3)
	for _, inv := range snap.Invoices {
		counts[inv.Status]++
	}
	return counts
}

// TotalAmount sums the amount of the given invoices.
func TotalAmount(invoices []domain.Invoice) float64 {
	var sum float64
	for _, inv := range invoices {
		sum += inv.Amount
	}
	return sum
}

func matchesQuery(inv domain.Invoice, query string) bool {
	return strings.Contains(strings.ToLower(inv.Customer), query) ||
		strings.Contains(strings.ToLower(inv.Email), query) ||
		strings.Contains(strings.ToLower(inv.ID), query)
}

func less(a, b domain.Invoice, opt SortOption) bool {
	var cmp int
	switch opt.Key {
	case SortByAmount:
		switch {
		case a.Amount < b.Amount:
			cmp = -1
		case a.Amount > b.Amount:
			cmp = 1
		}
	default:
		// Dates are YYYY-MM-DD strings, so lexical order is date order.
		cmp = strings.Compare(a.Date, b.Date)
	}
	if opt.Direction == SortDesc {
		return cmp > 0
	}
	return cmp < 0
}
