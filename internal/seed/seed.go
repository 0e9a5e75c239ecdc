// Package seed installs the sample invoices a fresh session starts with.
// Nothing persists between runs, so every process boots from this data.
package seed

import (
	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/internal/invoice/domain"
	"github.com/foliohq/folio/internal/invoice/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Invoices returns the bundled sample data, newest insertion first.
func Invoices() []domain.Invoice {
	return []domain.Invoice{
		{
			ID:       "INV-2024-001",
			Customer: "Acme Corporation",
			Email:    "billing@acme.com",
			Amount:   5420.00,
			Date:     "2024-01-15",
			DueDate:  "2024-02-15",
			Status:   domain.StatusPaid,
			Items: []domain.LineItem{
				{Description: "Web Development Services", Quantity: 40, Price: 125.00},
				{Description: "UI/UX Design", Quantity: 12, Price: 85.00},
			},
			Notes: "Thank you for your business",
		},
		{
			ID:       "INV-2024-002",
			Customer: "TechStart Inc",
			Email:    "finance@techstart.io",
			Amount:   3250.00,
			Date:     "2024-01-18",
			DueDate:  "2024-02-18",
			Status:   domain.StatusPending,
			Items: []domain.LineItem{
				{Description: "Monthly Retainer - January", Quantity: 1, Price: 3250.00},
			},
			Notes: "Net 30 payment terms for the month of January",
		},
		{
			ID:       "INV-2024-003",
			Customer: "Global Solutions Ltd",
			Email:    "safaricom@globalsolutions.com",
			Amount:   1850.00,
			Date:     "2024-01-10",
			DueDate:  "2024-01-25",
			Status:   domain.StatusOverdue,
			Items: []domain.LineItem{
				{Description: "Consulting Services", Quantity: 10, Price: 150.00},
				{Description: "Documentation", Quantity: 7, Price: 50.00},
			},
			Notes: "Please remit payment as soon as possible",
		},
	}
}

// Apply installs the sample invoices into a fresh store, preserving their
// listed order (001 first). The store prepends, so they are inserted in
// reverse.
func Apply(s *store.Store) {
	invoices := Invoices()
	for i := len(invoices) - 1; i >= 0; i-- {
		s.Seed(invoices[i])
	}
}

// EnsureSampleData seeds the store at startup when configured to.
func EnsureSampleData(cfg config.Config, s *store.Store, log *zap.Logger) {
	if !cfg.SeedSampleData {
		return
	}
	Apply(s)
	log.Info("sample invoices seeded", zap.Int("count", len(Invoices())))
}

// Module runs the bootstrap as part of application startup.
var Module = fx.Module("seed",
	fx.Invoke(EnsureSampleData),
)
