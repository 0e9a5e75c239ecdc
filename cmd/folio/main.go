package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/foliohq/folio/internal/clock"
	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/internal/invoice"
	"github.com/foliohq/folio/internal/invoice/domain"
	invoicestore "github.com/foliohq/folio/internal/invoice/store"
	"github.com/foliohq/folio/internal/observability"
	"github.com/foliohq/folio/internal/seed"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		clock.Module,

		// Domain
		invoice.Module,
		seed.Module,

		fx.Invoke(run),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

// run logs the seeded dashboard state and exits. There is no server to keep
// alive: the store lives for the session of whichever frontend embeds it,
// and this binary is that session's smoke check.
func run(s *invoicestore.Store, log *zap.Logger, shutdowner fx.Shutdowner) {
	snap := s.Snapshot()
	counts := snap.StatusCounts()
	visible := snap.VisibleInvoices(invoicestore.DefaultSort())

	log.Info("invoice dashboard ready",
		zap.Int("invoices", len(snap.Invoices)),
		zap.Int("paid", counts[domain.StatusPaid]),
		zap.Int("pending", counts[domain.StatusPending]),
		zap.Int("overdue", counts[domain.StatusOverdue]),
		zap.Float64("total_amount", invoicestore.TotalAmount(visible)),
	)

	_ = shutdowner.Shutdown()
}
