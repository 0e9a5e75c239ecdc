// Package store holds the dashboard's invoice list and UI-selection state.
// It is the single source of truth every view reads and mutates: views call
// the mutator methods and observe the resulting snapshots through Subscribe.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/foliohq/folio/internal/clock"
	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/internal/invoice/domain"
	"github.com/foliohq/folio/internal/observability/metrics"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Snapshot is a read-only copy of store state. It never aliases the store's
// own slices, so holders can keep it across later mutations.
type Snapshot struct {
	Invoices           []domain.Invoice
	SelectedInvoice    *domain.Invoice
	IsDrawerOpen       bool
	IsPaymentModalOpen bool
	SearchQuery        string
	FilterStatus       domain.FilterStatus
}

// Observer receives the new snapshot after every mutation.
type Observer func(Snapshot)

// StoreParam bundles the store's dependencies.
type StoreParam struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Config  config.Config
	Metrics *metrics.Metrics `optional:"true"`
}

// Store mediates all invoice and UI-selection mutations. Every mutation is
// synchronous: state is replaced (never edited in place) and observers are
// notified with the new snapshot before the mutating call returns.
type Store struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	met   *metrics.Metrics

	recomputeOverdue bool

	mu           sync.Mutex
	invoices     []domain.Invoice
	selected     *domain.Invoice
	drawerOpen   bool
	modalOpen    bool
	searchQuery  string
	filterStatus domain.FilterStatus

	observers map[uuid.UUID]Observer
}

// NewStore builds an empty store. The list starts empty; seeding is the
// caller's concern.
func NewStore(p StoreParam) *Store {
	return &Store{
		log:              p.Log.Named("invoice.store"),
		genID:            p.GenID,
		clock:            p.Clock,
		met:              p.Metrics,
		recomputeOverdue: p.Config.RecomputeOverdue,
		filterStatus:     domain.FilterAll,
		observers:        make(map[uuid.UUID]Observer),
	}
}

// Seed prepends a fully formed invoice as-is, keeping its id, date and
// status. Used by session bootstrap and tests; regular creation goes
// through AddInvoice.
func (s *Store) Seed(inv domain.Invoice) {
	inv = inv.Clone()
	s.mu.Lock()
	next := make([]domain.Invoice, 0, len(s.invoices)+1)
	next = append(next, inv)
	next = append(next, s.invoices...)
	s.invoices = next
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers an observer called synchronously with the new snapshot
// after each mutation. The returned cancel func is idempotent.
func (s *Store) Subscribe(fn Observer) (uuid.UUID, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.observers[id] = fn
	return id, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// AddInvoice assigns a fresh id, stamps today's date, derives the status
// from the due date, prepends the invoice and closes the drawer. The created
// invoice is returned so callers can reference its id.
func (s *Store) AddInvoice(input domain.InvoiceInput) domain.Invoice {
	now := s.clock.Now()
	inv := domain.Invoice{
		ID:       fmt.Sprintf("INV-%s", s.genID.Generate()),
		Customer: input.Customer,
		Email:    input.Email,
		Amount:   input.Amount,
		Date:     domain.FormatDate(now),
		DueDate:  input.DueDate,
		Status:   domain.DeriveStatus(input.DueDate, now),
		Items:    domain.CloneItems(input.Items),
		Notes:    input.Notes,
	}

	s.mu.Lock()
	next := make([]domain.Invoice, 0, len(s.invoices)+1)
	next = append(next, inv)
	next = append(next, s.invoices...)
	s.invoices = next
	s.drawerOpen = false
	s.mu.Unlock()

	s.met.RecordInvoiceCreated(context.Background(), string(inv.Status))
	s.log.Debug("invoice added",
		zap.String("id", inv.ID),
		zap.String("status", string(inv.Status)),
	)
	s.notify()
	return inv.Clone()
}

// UpdateInvoice merges the patch into the invoice with the given id, and
// into the selection when it refers to the same id. An unknown id leaves the
// list untouched; there is no error to report.
func (s *Store) UpdateInvoice(id string, patch domain.InvoicePatch) {
	s.mu.Lock()
	matched := false
	for i, inv := range s.invoices {
		if inv.ID == id {
			s.invoices[i] = patch.Apply(inv)
			matched = true
			break
		}
	}
	if s.selected != nil && s.selected.ID == id {
		merged := patch.Apply(*s.selected)
		s.selected = &merged
	}
	s.mu.Unlock()

	if matched {
		s.met.RecordInvoiceUpdated(context.Background())
	}
	s.log.Debug("invoice updated", zap.String("id", id), zap.Bool("matched", matched))
	s.notify()
}

// DeleteInvoice removes the invoice with the given id. The payment modal is
// closed and the selection cleared even when the id matches nothing.
func (s *Store) DeleteInvoice(id string) {
	s.mu.Lock()
	kept := s.invoices[:0:0]
	for _, inv := range s.invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	removed := len(kept) != len(s.invoices)
	s.invoices = kept
	s.modalOpen = false
	s.selected = nil
	s.mu.Unlock()

	if removed {
		s.met.RecordInvoiceDeleted(context.Background())
	}
	s.log.Debug("invoice deleted", zap.String("id", id), zap.Bool("matched", removed))
	s.notify()
}

// OpenDrawer shows the invoice-creation drawer.
func (s *Store) OpenDrawer() {
	s.mu.Lock()
	s.drawerOpen = true
	s.mu.Unlock()
	s.notify()
}

// CloseDrawer hides the drawer. In-progress form state lives in the view,
// so closing discards nothing here.
func (s *Store) CloseDrawer() {
	s.mu.Lock()
	s.drawerOpen = false
	s.mu.Unlock()
	s.notify()
}

// OpenPaymentModal selects the given invoice and opens the detail modal.
// The value is taken as-is; membership in the list is not verified.
func (s *Store) OpenPaymentModal(inv domain.Invoice) {
	sel := inv.Clone()
	s.mu.Lock()
	s.modalOpen = true
	s.selected = &sel
	s.mu.Unlock()
	s.notify()
}

// ClosePaymentModal clears the selection and closes the modal.
func (s *Store) ClosePaymentModal() {
	s.mu.Lock()
	s.modalOpen = false
	s.selected = nil
	s.mu.Unlock()
	s.notify()
}

// SetSearchQuery replaces the free-text filter. The filtered list itself is
// a derived read; nothing is recomputed here.
func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	s.searchQuery = q
	s.mu.Unlock()
	s.notify()
}

// SetFilterStatus replaces the status filter.
func (s *Store) SetFilterStatus(f domain.FilterStatus) {
	s.mu.Lock()
	s.filterStatus = f
	s.mu.Unlock()
	s.notify()
}

// notify hands the new snapshot to every observer. Callbacks run outside
// the lock so an observer may call back into the store.
func (s *Store) notify() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	fns := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
	s.met.RecordNotifications(context.Background(), len(fns))
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Invoices:           make([]domain.Invoice, len(s.invoices)),
		IsDrawerOpen:       s.drawerOpen,
		IsPaymentModalOpen: s.modalOpen,
		SearchQuery:        s.searchQuery,
		FilterStatus:       s.filterStatus,
	}
	for i, inv := range s.invoices {
		snap.Invoices[i] = inv.Clone()
	}
	if s.selected != nil {
		sel := s.selected.Clone()
		snap.SelectedInvoice = &sel
	}
	if s.recomputeOverdue {
		s.recomputeLocked(&snap)
	}
	return snap
}

// recomputeLocked re-derives Pending entries against the clock on the copy
// only; stored state keeps its creation-time status and explicit Paid marks
// are never touched.
func (s *Store) recomputeLocked(snap *Snapshot) {
	now := s.clock.Now()
	for i, inv := range snap.Invoices {
		if inv.Status == domain.StatusPending {
			snap.Invoices[i].Status = domain.DeriveStatus(inv.DueDate, now)
		}
	}
	if snap.SelectedInvoice != nil && snap.SelectedInvoice.Status == domain.StatusPending {
		snap.SelectedInvoice.Status = domain.DeriveStatus(snap.SelectedInvoice.DueDate, now)
	}
}
