// Package transform implements the transformation engine: the pure,
// deterministic mapping from a raw staged snapshot to the canonical entity
// record sets. Rules are total: malformed input is coerced to a sentinel or
// null, never rejected.
package transform

import (
	"time"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// Engine applies the per-entity canonicalization rules. The mapping tables
// are injected configuration, not hard-coded branches.
type Engine struct {
	maps types.Mappings

	// now supplies the current time for rules that reference it (future
	// birth dates). Overridable in tests.
	now func() time.Time
}

// NewEngine creates an Engine with the given mapping tables.
func NewEngine(maps types.Mappings) *Engine {
	return &Engine{
		maps: maps,
		now:  time.Now,
	}
}

// Transform maps a full raw snapshot to its canonical counterpart. The six
// per-entity transformations are independent of each other; output ordering
// is deterministic for a given input set.
func (e *Engine) Transform(raw types.RawSnapshot) types.CanonicalSnapshot {
	return types.CanonicalSnapshot{
		Customers:     e.Customers(raw.Customers),
		Products:      e.Products(raw.Products),
		Sales:         e.Sales(raw.Sales),
		ErpCustomers:  e.ErpCustomers(raw.ErpCustomers),
		ErpLocations:  e.ErpLocations(raw.ErpLocations),
		ErpCategories: e.ErpCategories(raw.ErpCategories),
	}
}
