package store

import (
	"testing"

	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDashboard(t *testing.T) *Store {
	t.Helper()
	s, _ := newTestStore(t, config.Config{})
	// listed order ends up oldest-insertion-last
	s.Seed(domain.Invoice{
		ID: "INV-003", Customer: "Globex", Email: "ap@globex.com",
		Amount: 1850, Date: "2024-01-10", Status: domain.StatusOverdue,
	})
	s.Seed(domain.Invoice{
		ID: "INV-002", Customer: "TechStart Inc", Email: "finance@techstart.io",
		Amount: 3250, Date: "2024-01-18", Status: domain.StatusPending,
	})
	s.Seed(domain.Invoice{
		ID: "INV-001", Customer: "Acme Inc.", Email: "billing@acme.com",
		Amount: 2450, Date: "2024-01-15", Status: domain.StatusPaid,
	})
	return s
}

func ids(invoices []domain.Invoice) []string {
	out := make([]string, len(invoices))
	for i, inv := range invoices {
		out[i] = inv.ID
	}
	return out
}

func TestVisibleInvoices_NoFilterKeepsInsertionOrderUnderEqualSort(t *testing.T) {
	s, _ := newTestStore(t, config.Config{})
	s.Seed(domain.Invoice{ID: "INV-b", Date: "2024-01-10", Amount: 100})
	s.Seed(domain.Invoice{ID: "INV-a", Date: "2024-01-10", Amount: 100})

	// equal sort keys: stable sort keeps the list order (newest-first)
	visible := s.Snapshot().VisibleInvoices(DefaultSort())
	assert.Equal(t, []string{"INV-a", "INV-b"}, ids(visible))
}

func TestVisibleInvoices_FilterByStatus(t *testing.T) {
	s := seedDashboard(t)
	s.SetFilterStatus(domain.FilterPaid)

	visible := s.Snapshot().VisibleInvoices(DefaultSort())
	assert.Equal(t, []string{"INV-001"}, ids(visible))
}

func TestVisibleInvoices_FilterSeesLaterUpdates(t *testing.T) {
	s := seedDashboard(t)
	s.SetFilterStatus(domain.FilterPaid)
	s.UpdateInvoice("INV-002", domain.PatchStatus(domain.StatusPaid))

	// date desc: INV-002 (01-18) before INV-001 (01-15)
	visible := s.Snapshot().VisibleInvoices(DefaultSort())
	assert.Equal(t, []string{"INV-002", "INV-001"}, ids(visible))

	// amount asc flips them; order comes from the sort, not filter timing
	visible = s.Snapshot().VisibleInvoices(SortOption{Key: SortByAmount, Direction: SortAsc})
	assert.Equal(t, []string{"INV-001", "INV-002"}, ids(visible))
}

func TestVisibleInvoices_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"customer match", "ACME", []string{"INV-001"}},
		{"email match", "techstart.io", []string{"INV-002"}},
		{"id match", "inv-003", []string{"INV-003"}},
		{"shared substring", "inv-", []string{"INV-002", "INV-001", "INV-003"}},
		{"no match", "umbrella", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := seedDashboard(t)
			s.SetSearchQuery(tc.query)
			visible := s.Snapshot().VisibleInvoices(DefaultSort())
			assert.Equal(t, tc.want, ids(visible))
		})
	}
}

func TestVisibleInvoices_FilterAndSearchCompose(t *testing.T) {
	s := seedDashboard(t)
	s.Seed(domain.Invoice{
		ID: "INV-004", Customer: "Acme Subsidiary", Email: "sub@acme.com",
		Amount: 900, Date: "2024-01-20", Status: domain.StatusPending,
	})

	s.SetFilterStatus(domain.FilterPaid)
	s.SetSearchQuery("acme")

	visible := s.Snapshot().VisibleInvoices(DefaultSort())
	require.Len(t, visible, 1)
	assert.Equal(t, "INV-001", visible[0].ID)
	assert.Equal(t, domain.StatusPaid, visible[0].Status)
}

func TestVisibleInvoices_SortByAmount(t *testing.T) {
	s := seedDashboard(t)

	asc := s.Snapshot().VisibleInvoices(SortOption{Key: SortByAmount, Direction: SortAsc})
	assert.Equal(t, []string{"INV-003", "INV-001", "INV-002"}, ids(asc))

	desc := s.Snapshot().VisibleInvoices(SortOption{Key: SortByAmount, Direction: SortDesc})
	assert.Equal(t, []string{"INV-002", "INV-001", "INV-003"}, ids(desc))
}

func TestVisibleInvoices_SortByDateAsc(t *testing.T) {
	s := seedDashboard(t)
	visible := s.Snapshot().VisibleInvoices(SortOption{Key: SortByDate, Direction: SortAsc})
	assert.Equal(t, []string{"INV-003", "INV-001", "INV-002"}, ids(visible))
}

func TestStatusCounts(t *testing.T) {
	s := seedDashboard(t)
	counts := s.Snapshot().StatusCounts()
	assert.Equal(t, 1, counts[domain.StatusPaid])
	assert.Equal(t, 1, counts[domain.StatusPending])
	assert.Equal(t, 1, counts[domain.StatusOverdue])
}

func TestTotalAmount(t *testing.T) {
	s := seedDashboard(t)
	visible := s.Snapshot().VisibleInvoices(DefaultSort())
	assert.InDelta(t, 7550, TotalAmount(visible), 0.001)
}
