// Package invoice wires the invoice domain into the fx graph.
package invoice

import (
	"github.com/foliohq/folio/internal/invoice/store"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice",
	fx.Provide(store.NewStore),
)
